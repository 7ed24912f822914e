// arcade is a terminal host for entity-arcade games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: engine.yaml, 25)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log <file>        - Write engine logs to a file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/entity-arcade/internal/config"
	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/engine"

	// Import games to register them
	_ "github.com/vovakirdan/entity-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/entity-arcade/internal/games/space"
	_ "github.com/vovakirdan/entity-arcade/internal/games/t2048"
)

var (
	// Global flags
	flagFPS          int
	flagSeed         int64
	flagDBPath       string
	flagLogFile      string
	flagLogLevel     string
	flagEngineConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Entity Arcade - entity-driven games in your terminal",
	Long: `Entity Arcade hosts small real-time games built from entities and levels
on a fixed-rate engine, played with the keyboard or the mouse.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play space
  arcade menu --log ./arcade.log --log-level debug
  arcade serve --ssh :2222
  arcade scores flappy`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = engine config, 25 by default)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagEngineConfig, "engine-config", "", "Path to custom engine config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// hostSettings resolves the engine config and the runtime config handed to
// game factories. Flags win over engine.yaml.
func hostSettings(configPath, difficulty string) (core.RuntimeConfig, config.EngineConfig, error) {
	eng, err := config.LoadEngine(flagEngineConfig)
	if err != nil {
		return core.RuntimeConfig{}, eng, err
	}
	if flagFPS > 0 {
		eng.TickRate = flagFPS
	}

	rc := core.DefaultConfig()
	rc.TickRate = eng.TickRate
	rc.Seed = flagSeed
	rc.ConfigPath = configPath
	rc.Difficulty = difficulty
	return rc, eng, nil
}

// engineOptions builds the engine options shared by every hosted game.
func engineOptions(eng config.EngineConfig, logger *log.Logger) []engine.Option {
	return []engine.Option{
		engine.WithLogger(logger),
		engine.WithFadeTicks(eng.FadeTicks),
	}
}

// openLogger returns a logger writing to --log, or a discarding logger when
// no file is given. Stderr is never used while a TUI owns the terminal.
func openLogger(prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
