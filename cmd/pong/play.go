package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/emily-flambe/pong/internal/config"
	"github.com/emily-flambe/pong/internal/core"
	"github.com/emily-flambe/pong/internal/platform/tui"
	"github.com/emily-flambe/pong/internal/registry"
	"github.com/emily-flambe/pong/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  W/S, Up/Down     - Move side paddles
  A/D, Left/Right  - Move top and bottom paddles (fortress)
  P/Space          - Start, pause, resume
  Y/N              - Accept or decline the reserve team (fortress)
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - Config defaults
  hard   - Fewer lives, narrower paddle, faster ball

Examples:
  pong play classic
  pong play survival --difficulty easy
  pong play fortress --difficulty hard
  pong play classic --config ./my-classic.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := args[0]

	info, ok := registry.Info(modeID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'pong list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	match, err := registry.Create(modeID, registry.Options{
		ConfigPath: flagConfig,
		Preset:     config.ParsePreset(flagDifficulty),
		Seed:       cfg.Seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating match: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	runErr := tui.Run(match, modeID, info.Title, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}
