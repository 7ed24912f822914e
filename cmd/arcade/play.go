package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/entity-arcade/internal/platform/tui"
	"github.com/vovakirdan/entity-arcade/internal/registry"
	"github.com/vovakirdan/entity-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move, slide the tiles (2048)
  Space/Enter  - Fire/Flap
  Mouse        - Steer and click to fire (space), hold to flap (flappy)
  P            - Pause
  R            - Restart (new session)
  B/Esc        - Back
  Q/Ctrl+C     - Quit
  Ctrl+S       - Screenshot to ~/.arcade/screenshots

Difficulty options (flappy):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play flappy
  arcade play flappy --difficulty hard
  arcade play space --seed 42
  arcade play 2048
  arcade play space --config ./my-space.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	rc, eng, err := hostSettings(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading engine config: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID, rc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// The model reports a small terminal too, but only once the TUI is up
	w, h := game.Size()
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (tw < w || th < h+1) {
		fmt.Fprintf(os.Stderr, "Warning: %s needs a %dx%d terminal, have %dx%d\n", game.Title(), w, h+1, tw, th)
	}

	logger, closeLog, err := openLogger("arcade")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, rc, engineOptions(eng, logger)...)

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
