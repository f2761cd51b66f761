// rollcube is a terminal rolling-cube puzzle: roll the cube across the grid,
// toggling every tile it lands on, and clear the board within the move limit.
//
// Usage:
//
//	rollcube list              - List game variants
//	rollcube play [variant]    - Play a variant (default: rollcube)
//	rollcube menu              - Start menu to pick variants interactively
//	rollcube serve             - Start SSH server for remote play
//	rollcube scores [variant]  - Show fewest-move wins for a variant
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.rollcube/results.db)
//	--config <path>       - Custom rollcube YAML config
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollcube/internal/config"
	"github.com/vovakirdan/rollcube/internal/rollcube"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	defer closeLogger()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLogger()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rollcube",
	Short: "Rolling Cube - a tile-clearing puzzle in your terminal",
	Long: `Rolling Cube is a terminal puzzle. A cube rolls one quarter turn per
move across a square grid and toggles every tile it lands on. Clear the
whole board before the move limit runs out.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View fewest-move wins

Examples:
  rollcube list
  rollcube play
  rollcube play rollcube_rainbow --difficulty hard
  rollcube serve --ssh :2222
  rollcube scores rollcube`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rollcube/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rollcube config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard while playing, stderr for serve)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup runs before every command: .env, logging, then game settings.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	if _, err := openLogger(flagLogFile, flagLogLevel, cmd.Name() == serveCmd.Name()); err != nil {
		return err
	}
	rollcube.SetLogger(logger)

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	rollcube.SetConfigPath(flagConfig)
	rollcube.SetDifficultyPreset(preset)

	logger.Debug("configured", "command", cmd.Name(), "config", flagConfig, "difficulty", preset, "fps", flagFPS)
	return nil
}
