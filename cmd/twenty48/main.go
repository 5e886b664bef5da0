// twenty48 is a terminal take on the 2048 sliding-tile puzzle.
//
// Usage:
//
//	twenty48 play            - Play in the current terminal
//	twenty48 scores          - Show the high score table
//	twenty48 serve           - Start an SSH server for remote play
//	twenty48 reset           - Clear scores and saved settings
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.tui-2048/scores.db)
//	--config <path> - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twenty48",
	Short: "2048 in your terminal",
	Long: `twenty48 is a terminal version of the 2048 sliding-tile puzzle.

Slide tiles with the arrow keys, merge equal pairs, and chase the
2048 tile. Scores and settings persist between runs.

Available commands:
  play     - Play in the current terminal
  scores   - View the high score table
  serve    - Start SSH server for remote play
  reset    - Clear scores and saved settings

Examples:
  twenty48 play
  twenty48 play --size 5
  twenty48 serve --ssh :2222
  twenty48 scores`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
}
