package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollcube/internal/config"
	"github.com/vovakirdan/rollcube/internal/registry"
	"github.com/vovakirdan/rollcube/internal/rollcube"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game variants",
	Long:  `Shows every registered variant with its effective board settings.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Title", "Board")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, g.ID, g.Title, boardSummary(g.ID))
	}

	fmt.Println()
	fmt.Println("Run 'rollcube play <id>' to play a variant.")
}

// boardSummary describes the board a variant would start with.
func boardSummary(id string) string {
	v, ok := rollcube.VariantByID(id)
	if !ok {
		return ""
	}
	preset, _ := config.ParsePreset(flagDifficulty)
	cfg, err := rollcube.LoadVariantConfig(v, flagConfig, preset)
	if err != nil {
		return "config error: " + err.Error()
	}
	return fmt.Sprintf("%dx%d, %d colour(s), %d moves", cfg.Grid.Size, cfg.Grid.Size, cfg.Grid.Colours, cfg.MoveLimit())
}
