package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-onet/internal/registry"
	"github.com/vovakirdan/tui-onet/internal/storage"
)

var (
	flagTop   int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores and aggregate stats for a game mode.
Without an argument, every mode is shown.

Examples:
  onet scores
  onet scores onet_endless --top 20
  onet scores onet --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	var games []registry.GameInfo
	if len(args) == 1 {
		g, ok := registry.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown game %q (run 'onet list' to see game modes)", args[0])
		}
		games = append(games, g)
	} else {
		if flagClear {
			return fmt.Errorf("--clear needs a game id")
		}
		games = registry.List()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(games[0].ID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", games[0].Title)
		return nil
	}

	for i, g := range games {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, g); err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, g registry.GameInfo) error {
	scores, err := store.TopScores(g.ID, flagTop)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", g.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %s\n", "Rank", "Score", "Pairs", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %s\n", i+1, entry.Score, entry.Pairs, entry.Level, dateStr)
	}

	stats, err := store.Stats(g.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.0f  Pairs: %d  Best level: %d\n",
		stats.Games, stats.HighScore, stats.AvgScore, stats.TotalPairs, stats.BestLevel)
	return nil
}
