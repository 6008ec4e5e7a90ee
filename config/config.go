package config

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // terminal velocity, applied after gravity

	// Broadphase grid for the resolv space
	CellSize int `yaml:"cell_size"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed          float64 `yaml:"speed"`
	JumpSpeed      float64 `yaml:"jump_speed"` // upward impulse magnitude
	OverworldSpeed float64 `yaml:"overworld_speed"`

	// Combat
	Health         int `yaml:"health"`
	Magic          int `yaml:"magic"`
	InvulnFrames   int `yaml:"invuln_frames"`
	AttackDuration int `yaml:"attack_duration"` // frames the swing stays active
	AttackCooldown int `yaml:"attack_cooldown"`

	// Dimensions
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"` // hopper, flyer, charger, boss
	Health int     `yaml:"health"`
	Damage int     `yaml:"damage"`
	Speed  float64 `yaml:"speed"`
	Score  int     `yaml:"score"`

	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// HopperConfig tunes the hopping patrol enemy.
type HopperConfig struct {
	HopInterval     int     `yaml:"hop_interval"`
	HopImpulse      float64 `yaml:"hop_impulse"`
	ChaseRange      float64 `yaml:"chase_range"`
	ChaseMultiplier float64 `yaml:"chase_multiplier"`
}

// FlyerConfig tunes the erratic flying enemy.
type FlyerConfig struct {
	PhaseStep       float64 `yaml:"phase_step"`
	ChaseRange      float64 `yaml:"chase_range"`
	ChaseMultiplier float64 `yaml:"chase_multiplier"`
	VerticalScale   float64 `yaml:"vertical_scale"`
	Band            float64 `yaml:"band"` // max vertical drift from the spawn height
}

// ChargerConfig tunes the shielded melee charger.
type ChargerConfig struct {
	PursueRange       float64 `yaml:"pursue_range"`
	ChargeTrigger     int     `yaml:"charge_trigger"` // frames of pursuit before a charge
	ChargeMultiplier  float64 `yaml:"charge_multiplier"`
	ChargeMinDistance float64 `yaml:"charge_min_distance"`
	ChargeMaxDistance float64 `yaml:"charge_max_distance"`
	ApproachDistance  float64 `yaml:"approach_distance"`
	ShieldReduction   int     `yaml:"shield_reduction"`
}

// BossConfig tunes the three-phase boss.
type BossConfig struct {
	ArenaHalfWidth float64 `yaml:"arena_half_width"`

	// Intro
	IntroDuration        int     `yaml:"intro_duration"`
	IntroDescentFraction float64 `yaml:"intro_descent_fraction"` // share of the intro spent descending
	IntroDropHeight      float64 `yaml:"intro_drop_height"`

	// Phases
	TransitionDuration int     `yaml:"transition_duration"`
	Phase2Threshold    float64 `yaml:"phase2_threshold"` // health fraction at or below which phase 2 starts
	Phase3Threshold    float64 `yaml:"phase3_threshold"`

	Phase1FireInterval int     `yaml:"phase1_fire_interval"`
	Phase2FireInterval int     `yaml:"phase2_fire_interval"`
	Phase3FireInterval int     `yaml:"phase3_fire_interval"`
	Phase2JumpInterval int     `yaml:"phase2_jump_interval"`
	JumpImpulse        float64 `yaml:"jump_impulse"`
	ChaseMultiplier    float64 `yaml:"chase_multiplier"`
	ChaseDeadzone      float64 `yaml:"chase_deadzone"`
	SpreadOffset       float64 `yaml:"spread_offset"`

	// Cannon ball
	BallSpeed    float64 `yaml:"ball_speed"`
	BallDamage   int     `yaml:"ball_damage"`
	BallLifetime int     `yaml:"ball_lifetime"`
	BallSize     float64 `yaml:"ball_size"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig `yaml:"types"`

	// Aliases maps archetype names to the type spawned for them
	Aliases map[string]string `yaml:"aliases"`

	PatrolDistance  float64 `yaml:"patrol_distance"`
	HurtFlashFrames int     `yaml:"hurt_flash_frames"`

	Hopper  HopperConfig  `yaml:"hopper"`
	Flyer   FlyerConfig   `yaml:"flyer"`
	Charger ChargerConfig `yaml:"charger"`
	Boss    BossConfig    `yaml:"boss"`
}

// HitboxConfig is a melee hitbox relative to an anchor point on the attacker.
type HitboxConfig struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	MeleeDamage int `yaml:"melee_damage"`

	// Up is anchored at (centerX, top), Down at (centerX, bottom) and
	// Forward at the leading edge, (right or left, centerY).
	UpHitbox      HitboxConfig `yaml:"up_hitbox"`
	DownHitbox    HitboxConfig `yaml:"down_hitbox"`
	ForwardHitbox HitboxConfig `yaml:"forward_hitbox"`
}

// BuffSpellConfig configures a timed buff.
type BuffSpellConfig struct {
	Cost     int `yaml:"cost"`
	Duration int `yaml:"duration"`
}

// SpellConfig contains spell costs and effect parameters
type SpellConfig struct {
	Shield           BuffSpellConfig `yaml:"shield"`
	DamageMultiplier float64         `yaml:"damage_multiplier"`

	Swift           BuffSpellConfig `yaml:"swift"`
	SpeedMultiplier float64         `yaml:"speed_multiplier"`
	JumpMultiplier  float64         `yaml:"jump_multiplier"`

	FireballCost     int     `yaml:"fireball_cost"`
	FireballSpeed    float64 `yaml:"fireball_speed"`
	FireballDamage   int     `yaml:"fireball_damage"`
	FireballLifetime int     `yaml:"fireball_lifetime"`
	FireballSize     float64 `yaml:"fireball_size"`

	ThunderCost     int     `yaml:"thunder_cost"`
	ThunderDamage   int     `yaml:"thunder_damage"`
	ThunderRadius   float64 `yaml:"thunder_radius"`
	ThunderLifetime int     `yaml:"thunder_lifetime"`
	ThunderOffset   float64 `yaml:"thunder_offset"`
	ThunderSize     float64 `yaml:"thunder_size"`

	StrikeCost      int     `yaml:"strike_cost"`
	StrikeDamage    int     `yaml:"strike_damage"`
	StrikeOffset    float64 `yaml:"strike_offset"`
	StrikeWidth     float64 `yaml:"strike_width"`
	StrikeMaxHeight float64 `yaml:"strike_max_height"`
	StrikeGrowRate  float64 `yaml:"strike_grow_rate"`
	StrikeLifetime  int     `yaml:"strike_lifetime"`
	StrikeTolerance float64 `yaml:"strike_tolerance"` // horizontal reach from the bolt center
}

// ItemTypeConfig describes what collecting an item does.
type ItemTypeConfig struct {
	Heal      int `yaml:"heal"`
	Magic     int `yaml:"magic"`
	MaxHealth int `yaml:"max_health"`
	MaxMagic  int `yaml:"max_magic"`
	Score     int `yaml:"score"`
}

// ItemConfig contains pickup configuration
type ItemConfig struct {
	Types        map[string]ItemTypeConfig `yaml:"types"`
	Size         float64                   `yaml:"size"`
	BobAmplitude float64                   `yaml:"bob_amplitude"`
	BobFrequency float64                   `yaml:"bob_frequency"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothingX float64 `yaml:"follow_smoothing_x"`
	FollowSmoothingY float64 `yaml:"follow_smoothing_y"`
}

// LevelConfig contains level rule configuration
type LevelConfig struct {
	FallMargin  float64 `yaml:"fall_margin"` // distance below the level before the player counts as fallen
	FallPenalty int     `yaml:"fall_penalty"`
	TileSize    int     `yaml:"tile_size"`
}

// Config holds general game configuration
type Config struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// Global configuration instances

var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Spell SpellConfig
var Item ItemConfig
var Camera CameraConfig
var Level LevelConfig

func init() {
	setDefaults()
}

func setDefaults() {
	C = &Config{
		Width:    800,
		Height:   600,
		TickRate: 60,
	}

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:      0.5,
		MaxFallSpeed: 15.0,
		CellSize:     16,
	}

	// Player Config
	Player = PlayerConfig{
		// Movement
		Speed:          4.0,
		JumpSpeed:      12.0,
		OverworldSpeed: 3.0,

		// Combat
		Health:         4,
		Magic:          4,
		InvulnFrames:   120, // 2 seconds
		AttackDuration: 15,
		AttackCooldown: 30,

		// Dimensions
		CollisionWidth:  32,
		CollisionHeight: 32,
	}

	// Enemy Config
	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"slime": {
				Name: "slime", Kind: "hopper",
				Health: 2, Damage: 1, Speed: 1.0, Score: 10,
				CollisionWidth: 24, CollisionHeight: 24,
			},
			"bat": {
				Name: "bat", Kind: "flyer",
				Health: 1, Damage: 1, Speed: 2.5, Score: 20,
				CollisionWidth: 28, CollisionHeight: 28,
			},
			"knight": {
				Name: "knight", Kind: "charger",
				Health: 4, Damage: 2, Speed: 1.5, Score: 50,
				CollisionWidth: 32, CollisionHeight: 32,
			},
			"cannon": {
				Name: "cannon", Kind: "boss",
				Health: 20, Damage: 3, Speed: 2.0, Score: 500,
				CollisionWidth: 48, CollisionHeight: 48,
			},
		},
		Aliases: map[string]string{
			"hopper":  "slime",
			"flyer":   "bat",
			"charger": "knight",
			"boss":    "cannon",
		},
		PatrolDistance:  100.0,
		HurtFlashFrames: 10,

		Hopper: HopperConfig{
			HopInterval:     60,
			HopImpulse:      6.0,
			ChaseRange:      200.0,
			ChaseMultiplier: 2.0,
		},
		Flyer: FlyerConfig{
			PhaseStep:       0.05,
			ChaseRange:      150.0,
			ChaseMultiplier: 1.5,
			VerticalScale:   0.5,
			Band:            100.0,
		},
		Charger: ChargerConfig{
			PursueRange:       250.0,
			ChargeTrigger:     90,
			ChargeMultiplier:  3.0,
			ChargeMinDistance: 30.0,
			ChargeMaxDistance: 200.0,
			ApproachDistance:  40.0,
			ShieldReduction:   1,
		},
		Boss: BossConfig{
			ArenaHalfWidth: 200.0,

			IntroDuration:        180, // 3 seconds
			IntroDescentFraction: 0.6,
			IntroDropHeight:      200.0,

			TransitionDuration: 60,
			Phase2Threshold:    0.5,
			Phase3Threshold:    0.3,

			Phase1FireInterval: 90,
			Phase2FireInterval: 60,
			Phase3FireInterval: 30,
			Phase2JumpInterval: 120,
			JumpImpulse:        10.0,
			ChaseMultiplier:    2.0,
			ChaseDeadzone:      80.0,
			SpreadOffset:       100.0,

			BallSpeed:    5.0,
			BallDamage:   2,
			BallLifetime: 180,
			BallSize:     16.0,
		},
	}

	// Combat Config
	Combat = CombatConfig{
		MeleeDamage:   1,
		UpHitbox:      HitboxConfig{OffsetX: -15, OffsetY: -35, Width: 30, Height: 40},
		DownHitbox:    HitboxConfig{OffsetX: -12, OffsetY: 0, Width: 24, Height: 40},
		ForwardHitbox: HitboxConfig{OffsetX: 0, OffsetY: -10, Width: 30, Height: 20},
	}

	// Spell Config
	Spell = SpellConfig{
		Shield:           BuffSpellConfig{Cost: 1, Duration: 300},
		DamageMultiplier: 0.5,

		Swift:           BuffSpellConfig{Cost: 1, Duration: 240},
		SpeedMultiplier: 1.5,
		JumpMultiplier:  1.3,

		FireballCost:     2,
		FireballSpeed:    8.0,
		FireballDamage:   2,
		FireballLifetime: 120,
		FireballSize:     20.0,

		ThunderCost:     3,
		ThunderDamage:   3,
		ThunderRadius:   80.0,
		ThunderLifetime: 30,
		ThunderOffset:   50.0,
		ThunderSize:     32.0,

		StrikeCost:      2,
		StrikeDamage:    4,
		StrikeOffset:    60.0,
		StrikeWidth:     40.0,
		StrikeMaxHeight: 300.0,
		StrikeGrowRate:  25.0,
		StrikeLifetime:  45,
		StrikeTolerance: 30.0,
	}

	// Item Config
	Item = ItemConfig{
		Types: map[string]ItemTypeConfig{
			"food":            {Heal: 1},
			"feast":           {Heal: 2},
			"magic_vial":      {Magic: 1},
			"magic_potion":    {Magic: 2},
			"heart_container": {MaxHealth: 1},
			"magic_bottle":    {MaxMagic: 1},
			"coin":            {Score: 10},
			"key":             {Score: 100},
		},
		Size:         20.0,
		BobAmplitude: 3.0,
		BobFrequency: 0.1,
	}

	// Camera Config
	Camera = CameraConfig{
		FollowSmoothingX: 0.1,
		FollowSmoothingY: 0.05,
	}

	// Level Config
	Level = LevelConfig{
		FallMargin:  100.0,
		FallPenalty: 1,
		TileSize:    32,
	}
}
