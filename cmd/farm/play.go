package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/farm"
	"github.com/vovakirdan/tui-farm/internal/platform/tui"
)

var (
	flagDifficulty string
	flagLogPath    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a farm",
	Long: `Start playing a farm right away.

Controls:
  Arrows/hjkl  - Move
  Enter        - Advance turn
  S            - Sow around you
  R            - Reap around you
  N            - New farm
  ?            - Toggle help
  Ctrl+S       - Save a screenshot to ~/.farm/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Wetter, sunnier weather and fewer mature plants to win
  normal - Rules as configured
  hard   - Drier, cloudier weather and more mature plants to win

Game notifications are written to the log file (default ~/.farm/farm.log).

Examples:
  farm play
  farm play --difficulty easy
  farm play --seed 42
  farm play --config ./my-farm.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLogPath, "log", defaultLogPath, "Path to the log file (empty disables logging)")
}

func runPlay(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := farm.NewGameFromConfig(loadFarmConfig(), preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid rules: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := openLogger(flagLogPath)
	store := openStore()

	_, runErr := tui.Run(game, terminalConfig(), tui.GameOptions{
		Store:  store,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}
	logFile.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
