package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse scores in an interactive table",
	Long: `Open a scrollable scoreboard with run history and statistics.

Controls:
  Up/Down/j/k  - Scroll
  g/G          - Top / bottom
  R            - Reload from the database
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	snakeCfg, err := loadConfig("", "")
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := terminalSize()
	return tui.RunScoreboard(store, snake.GameID, snakeCfg.Storage.HighScoreKey, width, height)
}
