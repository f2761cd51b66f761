package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollcube/internal/registry"
	"github.com/vovakirdan/rollcube/internal/storage"
)

var (
	flagClear bool
	flagRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show fewest-move wins for a variant",
	Long: `Display the 10 best (fewest-move) wins for the specified variant,
one table per board size and colour count, plus session statistics.
Wins are only ranked against wins on the same board.

Examples:
  rollcube scores
  rollcube scores rollcube_rainbow
  rollcube scores rollcube --clear
  rollcube scores --run 3f2b9c1e-...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results for the variant")
	scoresCmd.Flags().StringVar(&flagRun, "run", "", "Show a single session by run ID")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}
	title := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagRun != "" {
		return printRun(cmd, store, flagRun)
	}

	if flagClear {
		if err := store.ClearResults(gameID); err != nil {
			return err
		}
		logger.Info("results cleared", "game", gameID)
		fmt.Fprintf(out, "Cleared results for %s\n", title)
		return nil
	}

	boards, err := store.BoardStats(gameID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Fewest Moves - %s\n", title)

	if len(boards) == 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintf(out, "Play 'rollcube play %s' to set the first best!\n", gameID)
		return nil
	}

	for _, gs := range boards {
		results, err := store.TopResults(gameID, gs.Board, 10)
		if err != nil {
			return err
		}
		printBoard(cmd, gs, results)
	}

	recent, err := store.RecentResults(gameID, 5)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent sessions")
	for _, r := range recent {
		fmt.Fprintf(out, "  %-8.8s  %-8s  %-7s  %3d moves  %s\n",
			r.RunID, r.Board(), outcome(r), r.Moves, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// printRun writes one session looked up by its run ID.
func printRun(cmd *cobra.Command, store *storage.Store, runID string) error {
	r, err := store.ResultByRunID(runID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no session with run id %q", runID)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s board  %s in %d moves  %s\n",
		r.RunID, registry.Title(r.GameID), r.Board(), outcome(*r), r.Moves, r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func outcome(r storage.Result) string {
	if r.Won {
		return "cleared"
	}
	return "out of moves"
}

// printBoard writes one board's ranking and statistics.
func printBoard(cmd *cobra.Command, gs storage.GameStats, results []storage.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%dx%d board, %d colour(s)\n", gs.Board.Size, gs.Board.Size, gs.Board.Colours)

	if len(results) == 0 {
		fmt.Fprintln(out, "  No wins on this board yet.")
	} else {
		fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %s\n", "Rank", "Moves", "Run", "Date")
		fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %s\n", "----", "-----", "---", "----")
		for i, r := range results {
			fmt.Fprintf(out, "  %-4d  %-6d  %-8.8s  %s\n", i+1, r.Moves, r.RunID, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Fprintf(out, "  Sessions: %d  Won: %d (%.0f%%)  Avg moves: %.1f\n",
		gs.Sessions, gs.Wins, gs.WinRate()*100, gs.AvgMoves)
}
