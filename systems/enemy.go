package systems

import (
	"math"

	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/shared/gamemath"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(ecs *ecs.ECS) {
	// Every enemy decides against the same player bounds this frame
	var player *gamemath.Rect
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		r := components.Object.Get(playerEntry).Rect()
		player = &r
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}

		enemy := components.Enemy.Get(e)
		if flash := components.Flash.Get(e); flash.Duration > 0 {
			flash.Duration--
		}
		if enemy.AttackCooldown > 0 {
			enemy.AttackCooldown--
		}

		components.State.Get(e).StateTimer++
		advanceAI(ecs, e, player)
	})
}

// advanceAI runs one frame of the enemy's behavior. player is nil when there
// is no one to chase.
func advanceAI(ecs *ecs.ECS, e *donburi.Entry, player *gamemath.Rect) {
	switch components.Enemy.Get(e).Kind {
	case components.KindHopper:
		advanceHopper(e, player)
	case components.KindFlyer:
		advanceFlyer(e, player)
	case components.KindCharger:
		advanceCharger(e, player)
	case components.KindBoss:
		advanceBoss(ecs, e, player)
	}
}

// advanceHopper stands still between hops. Each hop lunges at a nearby player
// or continues the patrol.
func advanceHopper(e *donburi.Entry, player *gamemath.Rect) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	hopper := components.Hopper.Get(e)
	state := components.State.Get(e)
	obj := components.Object.Get(e)
	hc := cfg.Enemy.Hopper

	physics.SpeedX = 0

	dx := 0.0
	chasing := false
	if player != nil {
		dx = player.CenterX() - obj.Rect().CenterX()
		chasing = math.Abs(dx) < hc.ChaseRange
	}
	if chasing {
		state.Transition(cfg.StatePursue)
	} else {
		state.Transition(cfg.StatePatrol)
	}

	hopper.HopTimer++
	if hopper.HopTimer < hc.HopInterval {
		return
	}
	hopper.HopTimer = 0
	physics.SpeedY = -hc.HopImpulse

	if chasing {
		physics.SpeedX = gamemath.Sign(dx) * enemy.Speed * hc.ChaseMultiplier
		if physics.SpeedX == 0 {
			physics.SpeedX = enemy.Speed * hc.ChaseMultiplier
		}
	} else {
		patrol(enemy, obj.X)
		physics.SpeedX = enemy.Speed * enemy.Direction
	}
	enemy.FacingRight = physics.SpeedX > 0
}

// advanceFlyer weaves along a looping path and swoops straight at a nearby
// player.
func advanceFlyer(e *donburi.Entry, player *gamemath.Rect) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	flyer := components.Flyer.Get(e)
	state := components.State.Get(e)
	r := components.Object.Get(e).Rect()
	fc := cfg.Enemy.Flyer

	flyer.Angle += fc.PhaseStep

	if player != nil && math.Abs(player.CenterX()-r.CenterX()) < fc.ChaseRange {
		state.Transition(cfg.StatePursue)
		physics.SpeedX, physics.SpeedY = gamemath.CalculateAimVelocity(
			r.CenterX(), r.CenterY(), player.CenterX(), player.CenterY(),
			enemy.Speed*fc.ChaseMultiplier)
	} else {
		state.Transition(cfg.StatePatrol)
		physics.SpeedX = math.Sin(flyer.Angle) * enemy.Speed
		physics.SpeedY = math.Cos(flyer.Angle*2) * enemy.Speed * fc.VerticalScale
	}

	enemy.FacingRight = physics.SpeedX > 0
}

// advanceCharger closes in on a nearby player and periodically charges.
func advanceCharger(e *donburi.Entry, player *gamemath.Rect) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	charger := components.Charger.Get(e)
	state := components.State.Get(e)
	obj := components.Object.Get(e)
	cc := cfg.Enemy.Charger

	physics.SpeedX = 0

	dx := math.Inf(1)
	if player != nil {
		dx = player.CenterX() - obj.Rect().CenterX()
		enemy.FacingRight = dx > 0
	}
	dist := math.Abs(dx)

	if dist >= cc.PursueRange {
		charger.ChargeTimer = 0
		state.Transition(cfg.StatePatrol)
		patrol(enemy, obj.X)
		enemy.FacingRight = enemy.Direction > 0
		physics.SpeedX = enemy.Speed * enemy.Direction
		return
	}

	if state.CurrentState == cfg.StatePatrol {
		state.Transition(cfg.StatePursue)
	}

	charger.ChargeTimer++
	if charger.ChargeTimer >= cc.ChargeTrigger {
		charger.ChargeTimer = 0
		state.Transition(cfg.StateCharge)
	}

	if state.CurrentState == cfg.StateCharge {
		physics.SpeedX = enemy.Speed * cc.ChargeMultiplier * gamemath.Facing(enemy.FacingRight)
		if dist < cc.ChargeMinDistance || dist > cc.ChargeMaxDistance {
			state.Transition(cfg.StatePursue)
		}
		return
	}

	if dist > cc.ApproachDistance {
		physics.SpeedX = enemy.Speed * gamemath.Sign(dx)
	}
}

// patrol turns the enemy around once it strays too far from its anchor.
func patrol(enemy *components.EnemyData, x float64) {
	switch {
	case x > enemy.AnchorX+cfg.Enemy.PatrolDistance:
		enemy.Direction = -1
	case x < enemy.AnchorX-cfg.Enemy.PatrolDistance:
		enemy.Direction = 1
	}
}
