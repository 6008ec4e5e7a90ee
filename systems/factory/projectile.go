package factory

import (
	"github.com/automoto/chain/archetypes"
	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/shared/gamemath"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFireball launches a player fireball centered on (cx, cy).
func CreateFireball(ecs *ecs.ECS, cx, cy float64, facingRight bool) *donburi.Entry {
	size := cfg.Spell.FireballSize
	return createProjectile(ecs, cx, cy, size,
		cfg.Spell.FireballSpeed*gamemath.Facing(facingRight), 0,
		cfg.Spell.FireballDamage, cfg.Spell.FireballLifetime, false)
}

// CreateCannonBall fires a boss projectile from (cx, cy) toward (targetX, targetY).
func CreateCannonBall(ecs *ecs.ECS, cx, cy, targetX, targetY float64) *donburi.Entry {
	bc := cfg.Enemy.Boss
	velX, velY := gamemath.CalculateAimVelocity(cx, cy, targetX, targetY, bc.BallSpeed)
	return createProjectile(ecs, cx, cy, bc.BallSize, velX, velY, bc.BallDamage, bc.BallLifetime, true)
}

func createProjectile(ecs *ecs.ECS, cx, cy, size, velX, velY float64, damage, lifetime int, hostile bool) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	newObject(ecs, p, cx-size/2, cy-size/2, size, size, tags.ResolvProjectile)
	components.Projectile.SetValue(p, components.ProjectileData{
		Damage:  damage,
		Hostile: hostile,
	})
	components.Physics.SetValue(p, components.PhysicsData{
		SpeedX:    velX,
		SpeedY:    velY,
		NoGravity: true,
	})
	components.AutoDestroy.SetValue(p, components.AutoDestroyData{FramesRemaining: lifetime})

	return p
}
