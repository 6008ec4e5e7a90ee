package systems

import (
	"math"

	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/shared/gamemath"
	"github.com/automoto/chain/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BossPhase returns the boss's current phase, derived from its health.
func BossPhase(e *donburi.Entry) int {
	health := components.Health.Get(e)
	bc := cfg.Enemy.Boss
	return gamemath.BossPhase(health.Current, health.Max, bc.Phase2Threshold, bc.Phase3Threshold)
}

func advanceBoss(ecs *ecs.ECS, e *donburi.Entry, player *gamemath.Rect) {
	physics := components.Physics.Get(e)
	state := components.State.Get(e)
	physics.SpeedX = 0

	switch state.CurrentState {
	case cfg.StateIntro:
		advanceBossIntro(e)
		return
	case cfg.StateTransition:
		boss := components.Boss.Get(e)
		boss.TransitionTimer++
		if boss.TransitionTimer >= cfg.Enemy.Boss.TransitionDuration {
			boss.TransitionTimer = 0
			state.Transition(cfg.StateActive)
		}
		return
	}

	if player == nil {
		return
	}

	boss := components.Boss.Get(e)
	phase := BossPhase(e)
	if phase != boss.LastPhase {
		boss.LastPhase = phase
		boss.TransitionTimer = 0
		state.Transition(cfg.StateTransition)
		return
	}

	enemy := components.Enemy.Get(e)
	r := components.Object.Get(e).Rect()
	dx := player.CenterX() - r.CenterX()
	enemy.FacingRight = dx > 0

	boss.PatternTimer++
	switch phase {
	case 1:
		bossPatrolAndShoot(ecs, e, r, player)
	case 2:
		bossJumpAndSpread(ecs, e, r, player, dx)
	default:
		bossEnraged(ecs, e, r, player, dx)
	}
}

// advanceBossIntro plays the eased descent into the arena.
func advanceBossIntro(e *donburi.Entry) {
	boss := components.Boss.Get(e)
	obj := components.Object.Get(e)
	bc := cfg.Enemy.Boss

	boss.IntroTimer++
	offset, _ := boss.Intro.Update(1)
	obj.MoveTo(obj.X, boss.BaseY+float64(offset))

	if boss.IntroTimer >= bc.IntroDuration {
		obj.MoveTo(obj.X, boss.BaseY)
		components.State.Get(e).Transition(cfg.StateActive)
	}
}

// bossPatrolAndShoot paces the arena and fires single aimed shots.
func bossPatrolAndShoot(ecs *ecs.ECS, e *donburi.Entry, r gamemath.Rect, player *gamemath.Rect) {
	enemy := components.Enemy.Get(e)
	boss := components.Boss.Get(e)

	switch {
	case r.X > boss.ArenaRight:
		enemy.Direction = -1
	case r.X < boss.ArenaLeft:
		enemy.Direction = 1
	}
	components.Physics.Get(e).SpeedX = enemy.Speed * enemy.Direction

	if boss.PatternTimer >= cfg.Enemy.Boss.Phase1FireInterval {
		fireCannonBall(ecs, r, player.CenterX(), player.CenterY())
		boss.PatternTimer = 0
	}
}

// bossJumpAndSpread chases from a distance, jumps on its own cadence and
// fires three-ball spreads.
func bossJumpAndSpread(ecs *ecs.ECS, e *donburi.Entry, r gamemath.Rect, player *gamemath.Rect, dx float64) {
	enemy := components.Enemy.Get(e)
	boss := components.Boss.Get(e)
	physics := components.Physics.Get(e)
	bc := cfg.Enemy.Boss

	if math.Abs(dx) > bc.ChaseDeadzone {
		physics.SpeedX = enemy.Speed * bc.ChaseMultiplier * gamemath.Sign(dx)
	}

	boss.JumpTimer++
	if boss.JumpTimer >= bc.Phase2JumpInterval {
		boss.JumpTimer = 0
		physics.SpeedY = -bc.JumpImpulse
	}

	if boss.PatternTimer >= bc.Phase2FireInterval {
		cx, cy := player.CenterX(), player.CenterY()
		fireCannonBall(ecs, r, cx, cy)
		fireCannonBall(ecs, r, cx, cy-bc.SpreadOffset)
		fireCannonBall(ecs, r, cx, cy+bc.SpreadOffset)
		boss.PatternTimer = 0
	}
}

// bossEnraged chases relentlessly with rapid fire.
func bossEnraged(ecs *ecs.ECS, e *donburi.Entry, r gamemath.Rect, player *gamemath.Rect, dx float64) {
	enemy := components.Enemy.Get(e)
	boss := components.Boss.Get(e)
	bc := cfg.Enemy.Boss

	components.Physics.Get(e).SpeedX = enemy.Speed * bc.ChaseMultiplier * gamemath.Facing(dx > 0)

	if boss.PatternTimer >= bc.Phase3FireInterval {
		fireCannonBall(ecs, r, player.CenterX(), player.CenterY())
		boss.PatternTimer = 0
	}
}

func fireCannonBall(ecs *ecs.ECS, from gamemath.Rect, targetX, targetY float64) {
	factory.CreateCannonBall(ecs, from.CenterX(), from.CenterY(), targetX, targetY)
}
