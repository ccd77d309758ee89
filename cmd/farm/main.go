// farm is a turn-based farming game for the terminal.
//
// Usage:
//
//	farm play                - Start a farm right away
//	farm menu                - Pick a difficulty or browse best runs
//	farm serve               - Start SSH server for remote play
//	farm scores              - Show the fastest wins
//	farm config              - Print the default rules config
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible farms
//	--db <path>      - Set database path (default: ~/.farm/farm.db)
//	--config <path>  - Use a custom rules config
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/storage"
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
	Use:   "farm",
	Short: "Farm - a turn-based farming game in your terminal",
	Long: `Farm is a small turn-based farming game played on an 8x8 grid.

Each cell collects sun and rain. Sow seeds around you, advance turns to let
them grow and win by raising enough mature plants.

Available commands:
  play     - Start a farm directly
  menu     - Interactive menu with difficulties and best runs
  serve    - Start SSH server for remote play
  scores   - View the fastest wins
  config   - Print the default rules config

Examples:
  farm play
  farm play --difficulty hard --seed 42
  farm menu
  farm serve --ssh :2222
  farm scores --limit 5`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
