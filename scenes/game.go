package scenes

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/shared/leveldata"
	"github.com/charmbracelet/log"
)

var ErrNoLevels = errors.New("no levels to play")

// GameState is the session's overall progress.
type GameState int

const (
	GamePlaying GameState = iota
	GameLevelComplete
	GameOver
	GameWon
)

func (s GameState) String() string {
	switch s {
	case GamePlaying:
		return "playing"
	case GameLevelComplete:
		return "level_complete"
	case GameOver:
		return "game_over"
	case GameWon:
		return "won"
	}
	return "unknown"
}

// Game plays a sequence of levels with one player, applying the pit
// penalty and carrying the player's stats from level to level.
type Game struct {
	specs  []leveldata.Spec
	opts   []Option
	logger *log.Logger

	index int
	scene *LevelScene
	state GameState
	ticks int
	falls int
}

// NewGame builds and starts the first level.
func NewGame(specs []leveldata.Spec, opts ...Option) (*Game, error) {
	if len(specs) == 0 {
		return nil, ErrNoLevels
	}

	g := &Game{
		specs: specs,
		opts:  opts,
	}
	g.logger = loggerFor(opts)

	scene, err := g.load(0)
	if err != nil {
		return nil, err
	}
	g.scene = scene
	return g, nil
}

func (g *Game) load(index int) (*LevelScene, error) {
	scene, err := NewLevelScene(g.specs[index], g.opts...)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", index+1, err)
	}
	scene.Start()
	return scene, nil
}

// Update runs one tick of the current level. A completed level is replaced
// by the next one on the following call.
func (g *Game) Update(flags cfg.Actions) error {
	switch g.state {
	case GameOver, GameWon:
		return nil
	case GameLevelComplete:
		if err := g.advance(); err != nil {
			return err
		}
	}

	if err := g.scene.Update(flags); err != nil {
		return err
	}
	g.ticks++

	if g.scene.Fell() {
		g.falls++
		dead := g.scene.HurtPlayer(cfg.Level.FallPenalty)
		g.logger.Warn("fall penalty", "level", g.scene.Name(), "tick", g.scene.Tick(), "health", g.scene.Player().Health)
		if !dead {
			g.scene.RespawnPlayer()
			g.scene.GrantInvulnerability(cfg.Player.InvulnFrames)
		}
	}

	if g.scene.Player().Health <= 0 {
		g.state = GameOver
		g.logger.Error("player death", "level", g.scene.Name(), "tick", g.scene.Tick(), "score", g.Score())
		return nil
	}

	if g.scene.Completed() {
		if g.scene.Boss() || g.index == len(g.specs)-1 {
			g.state = GameWon
			g.logger.Info("game won", "score", g.Score(), "ticks", g.ticks)
			return nil
		}
		g.state = GameLevelComplete
	}
	return nil
}

func (g *Game) advance() error {
	stats := g.scene.PlayerStats()
	next, err := g.load(g.index + 1)
	if err != nil {
		return err
	}
	next.ApplyPlayerStats(stats)

	g.index++
	g.scene = next
	g.state = GamePlaying
	return nil
}

// State returns the session state.
func (g *Game) State() GameState {
	return g.state
}

// Scene returns the level being played.
func (g *Game) Scene() *LevelScene {
	return g.scene
}

// LevelIndex returns the zero-based index of the current level.
func (g *Game) LevelIndex() int {
	return g.index
}

// Ticks returns the number of ticks played across all levels.
func (g *Game) Ticks() int {
	return g.ticks
}

// Falls returns how many times the player fell into a pit.
func (g *Game) Falls() int {
	return g.falls
}

func (g *Game) Score() int {
	return g.scene.PlayerStats().Score
}

// Done reports whether the session has ended.
func (g *Game) Done() bool {
	return g.state == GameOver || g.state == GameWon
}
