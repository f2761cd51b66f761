package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rollcube/internal/core"
	"github.com/vovakirdan/rollcube/internal/platform/tui"
	"github.com/vovakirdan/rollcube/internal/registry"
	"github.com/vovakirdan/rollcube/internal/rollcube"
	"github.com/vovakirdan/rollcube/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: rollcube).

Controls:
  Arrows/WASD  - Roll the cube
  Space/R      - New board (keeps your best)
  +/-          - Faster/slower roll
  P            - Pause
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5x5 board
  normal - 8x8 board
  hard   - 10x10 board, one move per tile

Configuration is read from --config, ~/.rollcube/configs/rollcube.yaml or
./configs/rollcube.yaml, then ROLLCUBE_* environment variables (also from .env).

Examples:
  rollcube play
  rollcube play rollcube_rainbow
  rollcube play --difficulty hard --seed 42
  rollcube play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openResults()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// variantArg resolves the optional variant argument, defaulting to the
// classic board.
func variantArg(args []string) (string, error) {
	gameID := rollcube.Classic.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown game %q (run 'rollcube list' to see available variants)", gameID)
	}
	return gameID, nil
}

// openResults opens the results database for play. Play continues without
// it when it cannot be opened.
func openResults() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
