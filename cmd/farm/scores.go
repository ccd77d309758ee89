package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
	flagRunID  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the fastest wins",
	Long: `Display won farms, fewest turns first.

Examples:
  farm scores
  farm scores --limit 5
  farm scores --recent
  farm scores --run <run id>
  farm scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent wins instead of the fastest")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved runs")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show one run in detail")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	}

	if flagRunID != "" {
		showRun(store, flagRunID)
		return
	}

	title := "Fastest wins"
	fetch := store.BestRuns
	if flagRecent {
		title = "Recent wins"
		fetch = store.RecentRuns
	}

	runs, err := fetch(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'farm play' and grow enough mature plants to get on the board!")
		return
	}

	fmt.Printf("  %-4s  %-5s  %-10s  %-4s  %-6s  %-12s  %-16s  %s\n", "Rank", "Turns", "Difficulty", "Sown", "Reaped", "Player", "Date", "Run")
	fmt.Printf("  %-4s  %-5s  %-10s  %-4s  %-6s  %-12s  %-16s  %s\n", "----", "-----", "----------", "----", "------", "------", "----", "---")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-5d  %-10s  %-4d  %-6d  %-12s  %-16s  %s\n",
			i+1, r.Turns, r.Difficulty, r.Sown, r.Reaped, r.Player, r.CreatedAt.Format("2006-01-02 15:04"), r.RunID)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Wins: %d  Best: %d turns  Average: %.1f turns\n", stats.Runs, stats.BestTurns, stats.AvgTurns)
	}
}

// showRun prints a single run, including the seed needed to replay it.
func showRun(store *storage.Store, runID string) {
	r, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if r == nil {
		fmt.Fprintf(os.Stderr, "No run with id %q\n", runID)
		os.Exit(1)
	}

	fmt.Printf("Run        %s\n", r.RunID)
	fmt.Printf("Player     %s\n", r.Player)
	fmt.Printf("Difficulty %s\n", r.Difficulty)
	fmt.Printf("Won on     turn %d\n", r.Turns)
	fmt.Printf("Mature     %d\n", r.Mature)
	fmt.Printf("Sown       %d\n", r.Sown)
	fmt.Printf("Reaped     %d\n", r.Reaped)
	fmt.Printf("Date       %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Printf("Replay with: farm play --difficulty %s --seed %d\n", r.Difficulty, r.Seed)
}
