package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top recorded scores.

Examples:
  twenty48 scores
  twenty48 scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'twenty48 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-4s  %s\n", "Rank", "Score", "Max Tile", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-4s  %s\n", "----", "-----", "--------", "---", "----")

	for i, entry := range scores {
		won := ""
		if entry.Won {
			won = "yes"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %-4s  %s\n", i+1, entry.Score, entry.MaxTile, won, dateStr)
	}

	stats, err := store.GetStats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Wins: %d\n", stats.GamesCount, stats.HighScore, stats.WinsCount)
	}
}
