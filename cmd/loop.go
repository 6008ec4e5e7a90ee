package cmd

import (
	"context"
	"time"

	"github.com/automoto/chain/config"
)

// GameLoop ticks a session at a fixed rate and applies tuning reloads
// between ticks.
type GameLoop struct {
	session  *session
	tickRate int
	watcher  *Watcher
	stopChan chan struct{}
}

func NewGameLoop(s *session, tickRate int, watcher *Watcher) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		session:  s,
		tickRate: tickRate,
		watcher:  watcher,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the session ends, ctx is cancelled or Stop is called.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	logger.Info("game loop started", "tick_rate", g.tickRate)

	var reloads <-chan string
	var watchErrs <-chan error
	if g.watcher != nil {
		reloads = g.watcher.Events
		watchErrs = g.watcher.Errors
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("game loop stopped", "reason", ctx.Err())
			return nil
		case <-g.stopChan:
			logger.Info("game loop stopped")
			return nil
		case path := <-reloads:
			reload(path)
		case err := <-watchErrs:
			logger.Warn("config watch error", "err", err)
		case <-ticker.C:
			done, err := g.session.step()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

// reload overlays a changed tuning file. A file that fails to parse leaves
// the running configuration untouched.
func reload(path string) {
	if err := config.Load(path); err != nil {
		logger.Error("config reload failed", "path", path, "err", err)
		return
	}
	logger.Info("config reloaded", "path", path)
}
