package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/chain/archetypes"
	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnknownArchetype = errors.New("unknown enemy archetype")

// ResolveEnemyType looks up an enemy type by type name ("slime") or by
// archetype name ("hopper").
func ResolveEnemyType(name string) (cfg.EnemyTypeConfig, components.EnemyKind, error) {
	enemyType, exists := cfg.Enemy.Types[name]
	if !exists {
		if alias, ok := cfg.Enemy.Aliases[name]; ok {
			enemyType, exists = cfg.Enemy.Types[alias]
		}
	}
	if !exists {
		return cfg.EnemyTypeConfig{}, 0, fmt.Errorf("%w: %q", ErrUnknownArchetype, name)
	}
	kind, ok := components.ParseEnemyKind(enemyType.Kind)
	if !ok {
		return cfg.EnemyTypeConfig{}, 0, fmt.Errorf("%w: type %q has kind %q", ErrUnknownArchetype, name, enemyType.Kind)
	}
	return enemyType, kind, nil
}

// CreateEnemy spawns a fully initialized enemy of the named type with its
// top-left corner at (x, y).
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyTypeName string) (*donburi.Entry, error) {
	enemyType, kind, err := ResolveEnemyType(enemyTypeName)
	if err != nil {
		return nil, err
	}

	var enemy *donburi.Entry
	switch kind {
	case components.KindHopper:
		enemy = archetypes.Enemy.Spawn(ecs, components.Hopper)
	case components.KindFlyer:
		enemy = archetypes.Enemy.Spawn(ecs, components.Flyer)
	case components.KindCharger:
		enemy = archetypes.Enemy.Spawn(ecs, components.Charger)
	case components.KindBoss:
		return createBoss(ecs, x, y, enemyType), nil
	}

	initEnemy(ecs, enemy, x, y, kind, enemyType)
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StatePatrol,
		PreviousState: cfg.StateNone,
	})
	if kind == components.KindFlyer {
		components.Physics.Get(enemy).NoGravity = true
	}
	return enemy, nil
}

func initEnemy(ecs *ecs.ECS, enemy *donburi.Entry, x, y float64, kind components.EnemyKind, enemyType cfg.EnemyTypeConfig) {
	w, h := float64(enemyType.CollisionWidth), float64(enemyType.CollisionHeight)
	newObject(ecs, enemy, x, y, w, h, tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:        kind,
		TypeName:    enemyType.Name,
		Damage:      enemyType.Damage,
		Speed:       enemyType.Speed,
		Score:       enemyType.Score,
		AnchorX:     x,
		AnchorY:     y,
		Direction:   1,
		FacingRight: true,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
}

// createBoss builds the boss in its intro state, positioned at the top of its
// descent. Nothing about it needs initializing once the level starts.
func createBoss(ecs *ecs.ECS, x, y float64, enemyType cfg.EnemyTypeConfig) *donburi.Entry {
	boss := archetypes.Enemy.Spawn(ecs, components.Boss)
	initEnemy(ecs, boss, x, y, components.KindBoss, enemyType)

	bc := cfg.Enemy.Boss
	descent := float32(float64(bc.IntroDuration) * bc.IntroDescentFraction)
	components.Boss.SetValue(boss, components.BossData{
		ArenaLeft:  x - bc.ArenaHalfWidth,
		ArenaRight: x + bc.ArenaHalfWidth,
		BaseY:      y,
		Intro:      gween.New(float32(-bc.IntroDropHeight), 0, descent, ease.OutCubic),
		LastPhase:  1,
	})
	components.State.SetValue(boss, components.StateData{
		CurrentState:  cfg.StateIntro,
		PreviousState: cfg.StateNone,
	})

	obj := components.Object.Get(boss)
	obj.MoveTo(x, y-bc.IntroDropHeight)

	return boss
}
