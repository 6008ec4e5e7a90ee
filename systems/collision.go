package systems

import (
	"math"

	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/shared/gamemath"
	"github.com/automoto/chain/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves players and enemies by their velocity and resolves
// them against the level's tiles. Projectiles and effects move themselves.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		if player.Mode == components.ModeOverworld {
			moveOverworld(physics, obj)
			return
		}

		resolveHorizontalCollision(physics, obj)
		if resolveVerticalCollision(physics, obj) {
			player.LastSafeX = obj.X
			player.LastSafeY = obj.Y
		}
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) || inBossIntro(e) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		if e.HasComponent(components.Flyer) {
			moveFlyer(components.Enemy.Get(e), physics, obj)
			return
		}

		resolveHorizontalCollision(physics, obj)
		resolveVerticalCollision(physics, obj)
	})
}

// resolveHorizontalCollision moves obj by SpeedX and pushes its leading edge
// flush against any solid it overlaps.
func resolveHorizontalCollision(physics *components.PhysicsData, obj *components.ObjectData) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	moved := obj.Rect().Translate(dx, 0)
	x := moved.X
	hit := false
	for _, solid := range solidsNear(obj.Object, dx, 0) {
		tile := objectRect(solid)
		if !moved.Intersects(tile) {
			continue
		}
		hit = true
		if dx > 0 {
			x = min(x, tile.X-moved.W)
		} else {
			x = max(x, tile.Right())
		}
	}
	if hit {
		physics.SpeedX = 0
	}
	obj.MoveTo(x, obj.Y)
}

// resolveVerticalCollision moves obj by SpeedY and snaps it to the surface it
// lands on or bumps into. It reports whether obj landed.
func resolveVerticalCollision(physics *components.PhysicsData, obj *components.ObjectData) bool {
	physics.OnGround = false
	dy := physics.SpeedY
	if dy == 0 {
		return false
	}

	moved := obj.Rect().Translate(0, dy)
	y := moved.Y
	hit := false
	for _, solid := range solidsNear(obj.Object, 0, dy) {
		tile := objectRect(solid)
		if !moved.Intersects(tile) {
			continue
		}
		hit = true
		if dy > 0 {
			y = min(y, tile.Y-moved.H)
		} else {
			y = max(y, tile.Bottom())
		}
	}
	obj.MoveTo(obj.X, y)

	if !hit {
		return false
	}
	physics.SpeedY = 0
	if dy > 0 {
		physics.OnGround = true
		return true
	}
	return false
}

// moveOverworld applies free 4-way movement, undoing it when the new bounds
// overlap a tile that cannot be walked on.
func moveOverworld(physics *components.PhysicsData, obj *components.ObjectData) {
	dx, dy := physics.SpeedX, physics.SpeedY
	if dx == 0 && dy == 0 {
		return
	}

	moved := obj.Rect().Translate(dx, dy)
	for _, solid := range solidsNear(obj.Object, dx, dy) {
		if solid.HasTags(tags.ResolvWalkable) {
			continue
		}
		if moved.Intersects(objectRect(solid)) {
			return
		}
	}
	obj.MoveTo(moved.X, moved.Y)
}

// moveFlyer advances a flyer without touching tiles, keeping it inside the
// band around its spawn height.
func moveFlyer(enemy *components.EnemyData, physics *components.PhysicsData, obj *components.ObjectData) {
	band := cfg.Enemy.Flyer.Band
	y := gamemath.ClampFloat(obj.Y+physics.SpeedY, enemy.AnchorY-band, enemy.AnchorY+band)
	obj.MoveTo(obj.X+physics.SpeedX, y)
}

// solidsNear returns the solid objects in the cells obj's bounds touch
// while moving by (dx, dy). The bounds are padded by a pixel on both axes so
// a sub-pixel overlap still yields its tile; callers test exact overlap.
func solidsNear(obj *resolv.Object, dx, dy float64) []*resolv.Object {
	space := obj.Space
	if space == nil {
		return nil
	}

	left := math.Min(obj.X, obj.X+dx) - 1
	top := math.Min(obj.Y, obj.Y+dy) - 1
	right := math.Max(obj.X, obj.X+dx) + obj.W + 1
	bottom := math.Max(obj.Y, obj.Y+dy) + obj.H + 1
	cx, cy := space.WorldToSpace(left, top)
	ex, ey := space.WorldToSpace(right, bottom)

	var solids []*resolv.Object
	seen := map[*resolv.Object]bool{}
	for y := cy; y <= ey; y++ {
		for x := cx; x <= ex; x++ {
			cell := space.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, o := range cell.Objects {
				if o == obj || seen[o] || !o.HasTags(tags.ResolvSolid) {
					continue
				}
				seen[o] = true
				solids = append(solids, o)
			}
		}
	}
	return solids
}

func objectRect(obj *resolv.Object) gamemath.Rect {
	return gamemath.NewRect(obj.X, obj.Y, obj.W, obj.H)
}
