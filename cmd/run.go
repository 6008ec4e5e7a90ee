package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/chain/config"
	"github.com/automoto/chain/scenes"
	"github.com/automoto/chain/shared/leveldata"
	"github.com/spf13/cobra"
)

var (
	flagTicks    int
	flagScript   string
	flagRealtime bool
	flagWatch    bool
	flagDump     string
)

var runCmd = &cobra.Command{
	Use:   "run [level.tmx ...]",
	Short: "Run a headless session",
	Long: `Plays the given levels in order with scripted input.

Scripts are comma separated segments of held actions and a tick count.
Actions are joined with '+'; 'wait' holds nothing:

  right:120,jump+right:1,right:60,attack:1,wait:30

Actions: left right up down jump attack cast next prev spell1..spell5
invincible skip. The script repeats until the session ends or --ticks runs
out.`,
	RunE: runSession,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = until the session ends)")
	runCmd.Flags().StringVar(&flagScript, "script", "", "Scripted input, e.g. \"right:120,jump:1\"")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick at the configured tick rate instead of as fast as possible")
	runCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when it changes (needs --realtime)")
	runCmd.Flags().StringVar(&flagDump, "dump", "", "Write a YAML state report to this path when the run ends")
}

// session drives a game from a script and counts ticks.
type session struct {
	game   *scenes.Game
	script *Script
	limit  int
	ticks  int
}

// step runs one tick and reports whether the run is over.
func (s *session) step() (bool, error) {
	if err := s.game.Update(s.script.Next()); err != nil {
		return true, err
	}
	s.ticks++
	if s.game.Done() {
		return true, nil
	}
	return s.limit > 0 && s.ticks >= s.limit, nil
}

func runSession(cmd *cobra.Command, args []string) error {
	if flagWatch && (!flagRealtime || flagConfig == "") {
		return fmt.Errorf("--watch needs --realtime and --config")
	}

	specs, err := loadSpecs(args)
	if err != nil {
		return err
	}
	script, err := ParseScript(flagScript)
	if err != nil {
		return err
	}
	game, err := scenes.NewGame(specs, scenes.WithLogger(logger))
	if err != nil {
		return err
	}

	s := &session{game: game, script: script, limit: flagTicks}
	if flagRealtime {
		err = runRealtime(cmd, s)
	} else {
		err = runHeadless(s)
	}
	if err != nil {
		return err
	}

	logger.Info("session finished",
		"state", game.State(),
		"level", game.Scene().Name(),
		"ticks", s.ticks,
		"score", game.Score(),
		"falls", game.Falls(),
	)

	if flagDump == "" {
		return nil
	}
	return writeReport(flagDump, newReport(game, s.ticks))
}

func runHeadless(s *session) error {
	if s.limit <= 0 {
		// A looping script may never finish a level, so cap the run
		s.limit = 60 * config.C.TickRate
		logger.Warn("no tick limit, stopping after one minute of game time", "ticks", s.limit)
	}
	for {
		done, err := s.step()
		if err != nil || done {
			return err
		}
	}
}

func runRealtime(cmd *cobra.Command, s *session) error {
	var watcher *Watcher
	if flagWatch {
		w, err := NewWatcher(flagConfig)
		if err != nil {
			return fmt.Errorf("watch %s: %w", flagConfig, err)
		}
		defer w.Close()
		watcher = w
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewGameLoop(s, config.C.TickRate, watcher).Run(ctx)
}

// loadSpecs reads the given TMX files, or returns the built-in levels.
func loadSpecs(paths []string) ([]leveldata.Spec, error) {
	if len(paths) == 0 {
		return []leveldata.Spec{leveldata.Demo(), leveldata.DemoBoss()}, nil
	}

	specs := make([]leveldata.Spec, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		spec, err := leveldata.LoadFile(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
		if err != nil {
			return nil, err
		}
		logger.Debug("level parsed", "path", p, "name", spec.Name)
		specs = append(specs, *spec)
	}
	return specs, nil
}
