package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear scores and saved settings",
	Long: `Delete the score history and reset the persisted best score.

Examples:
  twenty48 reset
  twenty48 reset --yes`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Skip the confirmation prompt")
}

func runReset(_ *cobra.Command, _ []string) {
	if !flagResetYes {
		fmt.Print("This deletes all recorded scores and the best score. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearScores(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		os.Exit(1)
	}
	if err := store.DeleteSetting(game.KeyBestScore); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting best score: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Scores and best score cleared.")
}
