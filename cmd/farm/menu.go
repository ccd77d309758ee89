package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/farm"
	"github.com/vovakirdan/tui-farm/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the farm with a menu",
	Long: `Start the farm in interactive menu mode.

Pick a difficulty to start a new farm, or open the best runs.
Press Esc or B in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Best runs
  Q            - Quit

Examples:
  farm menu
  farm menu --db ./farm.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagLogPath, "log", defaultLogPath, "Path to the log file (empty disables logging)")
}

func runMenu(_ *cobra.Command, _ []string) {
	base := loadFarmConfig()
	logger, logFile := openLogger(flagLogPath)
	defer logFile.Close()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				return
			}
			if goBack {
				continue
			}
			return
		}

		game, err := farm.NewGameFromConfig(base, menuResult.Difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid rules: %v\n", err)
			return
		}

		backToMenu, err := tui.Run(game, cfg, tui.GameOptions{
			Store:     store,
			Logger:    logger,
			AllowBack: true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !backToMenu {
			return
		}
	}
}
