package scenes

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/shared/leveldata"
	"github.com/automoto/chain/systems"
	"github.com/automoto/chain/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNotStarted       = errors.New("level scene not started")
	ErrEmptyLevel       = leveldata.ErrEmptyLevel
	ErrUnknownArchetype = factory.ErrUnknownArchetype
)

// LevelScene owns one level's world and advances it one tick at a time.
type LevelScene struct {
	ecs    *ecs.ECS
	spec   leveldata.Spec
	player *donburi.Entry
	logger *log.Logger

	once    sync.Once
	started bool
	tick    int

	// Logging state, compared after every tick
	bossPhases   map[donburi.Entity]int
	loggedFinish bool
}

// Option configures a LevelScene.
type Option func(*LevelScene)

// WithLogger routes scene events to l. Scenes are silent by default.
func WithLogger(l *log.Logger) Option {
	return func(s *LevelScene) {
		if l != nil {
			s.logger = l
		}
	}
}

func loggerFor(opts []Option) *log.Logger {
	s := &LevelScene{logger: log.NewWithOptions(io.Discard, log.Options{})}
	for _, opt := range opts {
		opt(s)
	}
	return s.logger
}

// NewLevelScene builds a level from spec. The level does not advance until
// Start is called.
func NewLevelScene(spec leveldata.Spec, opts ...Option) (*LevelScene, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}

	s := &LevelScene{
		spec:       spec,
		logger:     loggerFor(opts),
		bossPhases: make(map[donburi.Entity]int),
	}

	if err := s.configure(); err != nil {
		return nil, err
	}

	s.logger.Info("level loaded",
		"name", spec.Name,
		"boss", spec.Boss,
		"tiles", len(spec.Tiles),
		"enemies", len(spec.Enemies),
		"items", len(spec.Items),
	)
	return s, nil
}

func (s *LevelScene) configure() error {
	w := ecs.NewECS(donburi.NewWorld())
	s.ecs = w
	spec := s.spec

	// Create the level entity first so systems can read its bounds
	factory.CreateLevel(w, components.LevelData{
		Name:   spec.Name,
		Width:  spec.Width,
		Height: spec.Height,
		Boss:   spec.Boss,
		StartX: spec.PlayerStart.X,
		StartY: spec.PlayerStart.Y,
	})

	// Now create the space for collision detection using the level's dimensions
	cell := cfg.Physics.CellSize
	factory.CreateSpace(w, int(math.Ceil(spec.Width)), int(math.Ceil(spec.Height)), cell, cell)

	factory.CreateCamera(w)
	factory.CreateInput(w)

	// Create collision objects from tiles
	for _, tile := range spec.Tiles {
		factory.CreateTile(w, tile.X, tile.Y, tile.W, tile.H, tile.Walkable)
	}

	if spec.Exit != nil {
		factory.CreateFinishLine(w, spec.Exit.X, spec.Exit.Y, spec.Exit.W, spec.Exit.H)
	}

	s.player = factory.CreatePlayer(w, spec.PlayerStart.X, spec.PlayerStart.Y)

	for i, placement := range spec.Enemies {
		if _, err := factory.CreateEnemy(w, placement.X, placement.Y, placement.Type); err != nil {
			return fmt.Errorf("build level %s: enemy %d: %w", spec.Name, i, err)
		}
	}
	for i, placement := range spec.Items {
		if _, err := factory.CreateItem(w, placement.X, placement.Y, placement.Type); err != nil {
			return fmt.Errorf("build level %s: item %d: %w", spec.Name, i, err)
		}
	}

	return nil
}

// Start registers the systems. Calling it again has no effect.
func (s *LevelScene) Start() {
	s.once.Do(func() {
		gameplay := []ecs.System{
			systems.UpdatePlayer,
			systems.UpdateSpells,
			systems.UpdateEnemies,
			systems.UpdatePhysics,
			systems.UpdateCollisions,
			systems.UpdateProjectiles,
			systems.UpdateCamera,
			systems.UpdateItems,
			systems.UpdateCombat,
			systems.UpdateEffects,
		}
		for _, system := range gameplay {
			s.ecs.AddSystem(systems.WithLevelCompleteCheck(system))
		}
		s.ecs.AddSystem(systems.UpdateLevelComplete)
		s.ecs.AddSystem(systems.UpdateDeaths)
		s.started = true
	})
}

// Update runs one tick with the given held actions.
func (s *LevelScene) Update(flags cfg.Actions) error {
	if !s.started {
		return ErrNotStarted
	}

	systems.SetInput(s.ecs, flags)
	s.ecs.Update()
	s.tick++

	s.logEvents()
	return nil
}

func (s *LevelScene) logEvents() {
	for _, enemy := range s.Enemies() {
		if enemy.Kind != components.KindBoss || enemy.State == cfg.StateIntro {
			continue
		}
		if last, ok := s.bossPhases[enemy.ID]; !ok || last != enemy.Phase {
			if ok {
				s.logger.Info("boss phase change", "tick", s.tick, "phase", enemy.Phase, "health", enemy.Health)
			}
			s.bossPhases[enemy.ID] = enemy.Phase
		}
	}

	if s.Completed() && !s.loggedFinish {
		s.loggedFinish = true
		p := s.Player()
		s.logger.Info("level complete", "name", s.spec.Name, "tick", s.tick, "score", p.Score)
	}
}

// Name returns the level name.
func (s *LevelScene) Name() string {
	return s.spec.Name
}

// Boss reports whether the level is cleared by defeating its enemies.
func (s *LevelScene) Boss() bool {
	return s.spec.Boss
}

// Tick returns the number of ticks run so far.
func (s *LevelScene) Tick() int {
	return s.tick
}

// CameraOffset returns the camera's top-left corner in whole pixels.
func (s *LevelScene) CameraOffset() (int, int) {
	return systems.CameraOffset(s.ecs)
}

// Completed reports whether the level's goal has been reached.
func (s *LevelScene) Completed() bool {
	return systems.IsLevelComplete(s.ecs)
}

// Complete finishes the level immediately.
func (s *LevelScene) Complete() {
	systems.ForceLevelComplete(s.ecs)
}

// Fell reports whether the player dropped out of the bottom of the level.
func (s *LevelScene) Fell() bool {
	return components.Object.Get(s.player).Y > s.spec.Height+cfg.Level.FallMargin
}

// RespawnPlayer returns the player to where it last stood on solid ground.
func (s *LevelScene) RespawnPlayer() {
	player := components.Player.Get(s.player)
	physics := components.Physics.Get(s.player)

	components.Object.Get(s.player).MoveTo(player.LastSafeX, player.LastSafeY)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = true
}

// HurtPlayer removes health directly, bypassing invulnerability and shields.
// It reports whether the player has no health left.
func (s *LevelScene) HurtPlayer(amount int) bool {
	health := components.Health.Get(s.player)
	health.Current = max(0, health.Current-amount)
	return health.Current <= 0
}

// GrantInvulnerability makes the player immune to damage for frames ticks.
func (s *LevelScene) GrantInvulnerability(frames int) {
	components.Player.Get(s.player).InvulnFrames = frames
}

// CastSpell casts a spell for the player outside the input path.
func (s *LevelScene) CastSpell(id components.SpellID) bool {
	return systems.CastSpell(s.ecs, s.player, id)
}

// SetPlayerMode switches between level and overworld movement.
func (s *LevelScene) SetPlayerMode(mode components.PlayerMode) {
	systems.SetPlayerMode(s.player, mode)
}

// LiveEnemies returns the number of enemies still in play.
func (s *LevelScene) LiveEnemies() int {
	return systems.CountLiveEnemies(s.ecs)
}

// PlayerStats are the player values carried from one level to the next.
type PlayerStats struct {
	Health    int `yaml:"health"`
	MaxHealth int `yaml:"max_health"`
	Magic     int `yaml:"magic"`
	MaxMagic  int `yaml:"max_magic"`
	Score     int `yaml:"score"`
}

// PlayerStats returns the values the next level should inherit.
func (s *LevelScene) PlayerStats() PlayerStats {
	health := components.Health.Get(s.player)
	magic := components.Magic.Get(s.player)
	return PlayerStats{
		Health:    health.Current,
		MaxHealth: health.Max,
		Magic:     magic.Current,
		MaxMagic:  magic.Max,
		Score:     components.Player.Get(s.player).Score,
	}
}

// ApplyPlayerStats overwrites the player's carried values.
func (s *LevelScene) ApplyPlayerStats(stats PlayerStats) {
	health := components.Health.Get(s.player)
	magic := components.Magic.Get(s.player)
	health.Max = stats.MaxHealth
	health.Current = min(stats.Health, stats.MaxHealth)
	magic.Max = stats.MaxMagic
	magic.Current = min(stats.Magic, stats.MaxMagic)
	components.Player.Get(s.player).Score = stats.Score
}
