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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a match ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - High scores
  Q            - Quit

Examples:
  pong menu
  pong menu --fps 30
  pong menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		modeID := menuResult.ModeID
		if modeID == "" {
			break
		}

		info, ok := registry.Info(modeID)
		if !ok {
			continue
		}

		// Fresh seed for each match
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		match, err := registry.Create(modeID, registry.Options{
			ConfigPath: flagConfig,
			Preset:     config.ParsePreset(flagDifficulty),
			Seed:       seed,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating match: %v\n", err)
			continue
		}

		if err := tui.Run(match, modeID, info.Title, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running match: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
