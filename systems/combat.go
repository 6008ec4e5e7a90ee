package systems

import (
	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/shared/gamemath"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves every hit of the frame: melee, player shots, area
// spells, enemy contact and boss shots, in that order.
func UpdateCombat(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	// Damage marks entries dead, so collect them before mutating. A boss
	// still descending is out of play and cannot use up a hit.
	var enemies []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if isLive(e) && !inBossIntro(e) {
			enemies = append(enemies, e)
		}
	})
	var projectiles []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if isLive(e) {
			projectiles = append(projectiles, e)
		}
	})
	var effects []*donburi.Entry
	tags.Effect.Each(ecs.World, func(e *donburi.Entry) {
		if isLive(e) {
			effects = append(effects, e)
		}
	})

	resolveMelee(playerEntry, enemies)
	resolvePlayerProjectiles(playerEntry, projectiles, enemies)
	resolveEffects(playerEntry, effects, enemies)
	resolveContact(playerEntry, enemies)
	resolveHostileProjectiles(playerEntry, projectiles)
}

// AttackHitbox returns the area covered by the player's active swing.
func AttackHitbox(body gamemath.Rect, variant components.AttackVariant, facingRight bool) gamemath.Rect {
	var hb cfg.HitboxConfig
	var anchorX, anchorY float64
	switch variant {
	case components.AttackUp:
		hb = cfg.Combat.UpHitbox
		anchorX, anchorY = body.CenterX(), body.Y
	case components.AttackDown:
		hb = cfg.Combat.DownHitbox
		anchorX, anchorY = body.CenterX(), body.Bottom()
	default:
		hb = cfg.Combat.ForwardHitbox
		anchorY = body.CenterY()
		if !facingRight {
			// Mirrored: the box extends left from the leading edge
			return gamemath.NewRect(body.X-hb.OffsetX-hb.Width, anchorY+hb.OffsetY, hb.Width, hb.Height)
		}
		anchorX = body.Right()
	}
	return gamemath.NewRect(anchorX+hb.OffsetX, anchorY+hb.OffsetY, hb.Width, hb.Height)
}

func resolveMelee(playerEntry *donburi.Entry, enemies []*donburi.Entry) {
	melee := components.MeleeAttack.Get(playerEntry)
	if !melee.IsAttacking {
		return
	}
	player := components.Player.Get(playerEntry)
	hitbox := AttackHitbox(components.Object.Get(playerEntry).Rect(), melee.Variant, player.FacingRight())

	for _, e := range enemies {
		if !isLive(e) || melee.HitEntities[e.Entity()] {
			continue
		}
		if !hitbox.Intersects(components.Object.Get(e).Rect()) {
			continue
		}
		melee.HitEntities[e.Entity()] = true
		if DamageEnemy(e, cfg.Combat.MeleeDamage) {
			awardScore(playerEntry, e)
		}
	}
}

// resolvePlayerProjectiles spends each player shot on the first enemy it
// touches.
func resolvePlayerProjectiles(playerEntry *donburi.Entry, projectiles, enemies []*donburi.Entry) {
	for _, p := range projectiles {
		shot := components.Projectile.Get(p)
		if shot.Hostile || !isLive(p) {
			continue
		}
		bounds := components.Object.Get(p).Rect()
		for _, e := range enemies {
			if !isLive(e) || !bounds.Intersects(components.Object.Get(e).Rect()) {
				continue
			}
			if DamageEnemy(e, shot.Damage) {
				awardScore(playerEntry, e)
			}
			markDead(p, false)
			break
		}
	}
}

// resolveEffects lets each area spell damage every enemy it reaches, once.
func resolveEffects(playerEntry *donburi.Entry, effects, enemies []*donburi.Entry) {
	for _, fx := range effects {
		effect := components.Effect.Get(fx)
		for _, e := range enemies {
			if !isLive(e) {
				continue
			}
			if !effectCanHit(effect, e.Entity(), components.Object.Get(e).Rect()) {
				continue
			}
			effect.HitEntities[e.Entity()] = true
			if DamageEnemy(e, effect.Damage) {
				awardScore(playerEntry, e)
			}
		}
	}
}

// resolveContact hurts the player for every enemy touching it, or destroys
// the enemy outright while invincible mode is on.
func resolveContact(playerEntry *donburi.Entry, enemies []*donburi.Entry) {
	player := components.Player.Get(playerEntry)
	body := components.Object.Get(playerEntry).Rect()

	for _, e := range enemies {
		if !isLive(e) {
			continue
		}
		if !body.Intersects(components.Object.Get(e).Rect()) {
			continue
		}
		if player.InvincibleMode {
			markDead(e, true)
			awardScore(playerEntry, e)
			continue
		}
		DamagePlayer(playerEntry, components.Enemy.Get(e).Damage)
	}
}

// resolveHostileProjectiles destroys boss shots that reach the player,
// whether or not they hurt.
func resolveHostileProjectiles(playerEntry *donburi.Entry, projectiles []*donburi.Entry) {
	body := components.Object.Get(playerEntry).Rect()
	for _, p := range projectiles {
		shot := components.Projectile.Get(p)
		if !shot.Hostile || !isLive(p) {
			continue
		}
		if !body.Intersects(components.Object.Get(p).Rect()) {
			continue
		}
		markDead(p, false)
		DamagePlayer(playerEntry, shot.Damage)
	}
}

// DamageEnemy applies amount to a live enemy and reports whether it died.
// Dead or removed enemies, and a boss still descending, are left untouched.
func DamageEnemy(e *donburi.Entry, amount int) bool {
	if !isLive(e) || !e.HasComponent(components.Enemy) || inBossIntro(e) {
		return false
	}

	// Charger shields absorb part of every hit
	if e.HasComponent(components.Charger) {
		amount = max(1, amount-cfg.Enemy.Charger.ShieldReduction)
	}

	health := components.Health.Get(e)
	health.Current = max(0, health.Current-amount)
	TriggerDamageFlash(e, cfg.Enemy.HurtFlashFrames)

	if health.Current <= 0 {
		markDead(e, true)
		return true
	}
	return false
}

// DamagePlayer hurts the player unless it is invulnerable or in invincible
// mode, and reports whether the hit was fatal.
func DamagePlayer(e *donburi.Entry, amount int) bool {
	player := components.Player.Get(e)
	if player.InvincibleMode || player.InvulnFrames > 0 {
		return false
	}

	book := components.Spellbook.Get(e)
	damage := max(1, int(float64(amount)*book.DamageMultiplier()))

	health := components.Health.Get(e)
	health.Current = max(0, health.Current-damage)
	player.InvulnFrames = cfg.Player.InvulnFrames
	TriggerDamageFlash(e, cfg.Enemy.HurtFlashFrames)

	return health.Current <= 0
}

func awardScore(playerEntry, enemyEntry *donburi.Entry) {
	components.Player.Get(playerEntry).Score += components.Enemy.Get(enemyEntry).Score
}
