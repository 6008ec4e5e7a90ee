package scenes

import (
	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/shared/gamemath"
	"github.com/automoto/chain/systems"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi"
)

// PlayerView is a read-only snapshot of the player for renderers and HUDs.
type PlayerView struct {
	Bounds   gamemath.Rect `yaml:"bounds"`
	VX       float64       `yaml:"vx"`
	VY       float64       `yaml:"vy"`
	OnGround bool          `yaml:"on_ground"`

	Health    int `yaml:"health"`
	MaxHealth int `yaml:"max_health"`
	Magic     int `yaml:"magic"`
	MaxMagic  int `yaml:"max_magic"`
	Score     int `yaml:"score"`

	FacingRight bool                  `yaml:"facing_right"`
	Mode        components.PlayerMode `yaml:"mode"`
	State       string                `yaml:"state"`

	Attacking     bool          `yaml:"attacking"`
	AttackVariant string        `yaml:"attack_variant,omitempty"`
	AttackHitbox  gamemath.Rect `yaml:"attack_hitbox,omitempty"`

	Invulnerable   int  `yaml:"invulnerable"`
	InvincibleMode bool `yaml:"invincible_mode"`

	Spell        string `yaml:"spell"`
	ShieldActive bool   `yaml:"shield_active"`
	ShieldFrames int    `yaml:"shield_frames"`
	SwiftActive  bool   `yaml:"swift_active"`
	SwiftFrames  int    `yaml:"swift_frames"`
	Flash        int    `yaml:"flash"`
	Frame        int    `yaml:"frame"`
}

// EnemyView is a read-only snapshot of one enemy.
type EnemyView struct {
	ID          donburi.Entity       `yaml:"-"`
	Type        string               `yaml:"type"`
	Kind        components.EnemyKind `yaml:"-"`
	Bounds      gamemath.Rect        `yaml:"bounds"`
	Health      int                  `yaml:"health"`
	MaxHealth   int                  `yaml:"max_health"`
	State       cfg.StateID          `yaml:"-"`
	StateName   string               `yaml:"state"`
	Phase       int                  `yaml:"phase,omitempty"` // boss only
	Hurt        bool                 `yaml:"hurt"`
	FacingRight bool                 `yaml:"facing_right"`
	Frame       int                  `yaml:"frame"`
}

// ProjectileView is a read-only snapshot of one projectile.
type ProjectileView struct {
	Bounds  gamemath.Rect `yaml:"bounds"`
	VX      float64       `yaml:"vx"`
	VY      float64       `yaml:"vy"`
	Damage  int           `yaml:"damage"`
	Hostile bool          `yaml:"hostile"`
	Active  bool          `yaml:"active"`
	Frame   int           `yaml:"frame"`
}

// EffectView is a read-only snapshot of one area spell.
type EffectView struct {
	Kind      string        `yaml:"kind"`
	Bounds    gamemath.Rect `yaml:"bounds"`
	Damage    int           `yaml:"damage"`
	Active    bool          `yaml:"active"`
	Striking  bool          `yaml:"striking,omitempty"`
	Remaining int           `yaml:"remaining"`
	Hits      int           `yaml:"hits"`
	Frame     int           `yaml:"frame"`
}

// ItemView is a read-only snapshot of one pickup.
type ItemView struct {
	Kind   string        `yaml:"kind"`
	Bounds gamemath.Rect `yaml:"bounds"`
	Frame  int           `yaml:"frame"`
}

// Player returns a snapshot of the player.
func (s *LevelScene) Player() PlayerView {
	e := s.player
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	health := components.Health.Get(e)
	magic := components.Magic.Get(e)
	melee := components.MeleeAttack.Get(e)
	book := components.Spellbook.Get(e)
	body := components.Object.Get(e).Rect()

	view := PlayerView{
		Bounds:         body,
		VX:             physics.SpeedX,
		VY:             physics.SpeedY,
		OnGround:       physics.OnGround,
		Health:         health.Current,
		MaxHealth:      health.Max,
		Magic:          magic.Current,
		MaxMagic:       magic.Max,
		Score:          player.Score,
		FacingRight:    player.FacingRight(),
		Mode:           player.Mode,
		State:          components.State.Get(e).CurrentState.String(),
		Attacking:      melee.IsAttacking,
		Invulnerable:   player.InvulnFrames,
		InvincibleMode: player.InvincibleMode,
		Spell:          book.Selected.String(),
		ShieldActive:   book.Shield.Active,
		ShieldFrames:   book.Shield.Remaining,
		SwiftActive:    book.Swift.Active,
		SwiftFrames:    book.Swift.Remaining,
		Flash:          components.Flash.Get(e).Duration,
		Frame:          components.Animation.Get(e).Frame,
	}
	if melee.IsAttacking {
		view.AttackVariant = melee.Variant.String()
		view.AttackHitbox = systems.AttackHitbox(body, melee.Variant, player.FacingRight())
	}
	return view
}

// Enemies returns a snapshot of every enemy still in play.
func (s *LevelScene) Enemies() []EnemyView {
	var views []EnemyView
	tags.Enemy.Each(s.ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		enemy := components.Enemy.Get(e)
		health := components.Health.Get(e)
		state := components.State.Get(e)

		view := EnemyView{
			ID:          e.Entity(),
			Type:        enemy.TypeName,
			Kind:        enemy.Kind,
			Bounds:      components.Object.Get(e).Rect(),
			Health:      health.Current,
			MaxHealth:   health.Max,
			State:       state.CurrentState,
			StateName:   state.CurrentState.String(),
			Hurt:        components.Flash.Get(e).Duration > 0,
			FacingRight: enemy.FacingRight,
			Frame:       components.Animation.Get(e).Frame,
		}
		if enemy.Kind == components.KindBoss {
			view.Phase = systems.BossPhase(e)
		}
		views = append(views, view)
	})
	return views
}

// Projectiles returns a snapshot of every projectile in flight.
func (s *LevelScene) Projectiles() []ProjectileView {
	var views []ProjectileView
	tags.Projectile.Each(s.ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		shot := components.Projectile.Get(e)
		views = append(views, ProjectileView{
			Bounds:  components.Object.Get(e).Rect(),
			VX:      physics.SpeedX,
			VY:      physics.SpeedY,
			Damage:  shot.Damage,
			Hostile: shot.Hostile,
			Active:  !e.HasComponent(components.Death),
			Frame:   components.Animation.Get(e).Frame,
		})
	})
	return views
}

// Effects returns a snapshot of every area spell.
func (s *LevelScene) Effects() []EffectView {
	var views []EffectView
	tags.Effect.Each(s.ecs.World, func(e *donburi.Entry) {
		effect := components.Effect.Get(e)
		kind := "burst"
		if effect.Kind == components.EffectStrike {
			kind = "strike"
		}
		views = append(views, EffectView{
			Kind:      kind,
			Bounds:    components.Object.Get(e).Rect(),
			Damage:    effect.Damage,
			Active:    !e.HasComponent(components.Death),
			Striking:  effect.Striking,
			Remaining: components.AutoDestroy.Get(e).FramesRemaining,
			Hits:      len(effect.HitEntities),
			Frame:     components.Animation.Get(e).Frame,
		})
	})
	return views
}

// Items returns a snapshot of every uncollected pickup.
func (s *LevelScene) Items() []ItemView {
	var views []ItemView
	tags.Item.Each(s.ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		views = append(views, ItemView{
			Kind:   components.Item.Get(e).Kind,
			Bounds: components.Object.Get(e).Rect(),
			Frame:  components.Animation.Get(e).Frame,
		})
	})
	return views
}
