package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded scores",
	Long: `Display the top 10 recorded runs and the best score.

Examples:
  snake scores
  snake scores --db ./scores.db
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the score history and the best score")
}

func runScores(cmd *cobra.Command, _ []string) error {
	snakeCfg, err := loadConfig("", "")
	if err != nil {
		return err
	}
	key := snakeCfg.Storage.HighScoreKey

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClearScores {
		if err := store.ClearScores(snake.GameID); err != nil {
			return err
		}
		if err := store.ClearHighScore(key); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(snake.GameID, 10)
	if err != nil {
		return err
	}
	best, err := store.LoadHighScore(key)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Snake")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", best)
	return nil
}
