package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagColor        string
	flagSpeed        string
	flagSkipSettings bool
	flagMute         bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Pick the snake color and speed, then play.

Controls:
  Arrows/WASD/hjkl  - Steer
  Mouse             - Click the on-screen buttons or drag to swipe
  Enter/Space       - Dismiss the game-over message
  C                 - Next snake color
  +/-               - Faster / slower
  P                 - Pause
  R                 - Restart
  Esc/B             - Back to settings (while paused or after game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Speed presets:
  slow   - 200ms per move
  normal - 100ms per move
  fast   - 50ms per move

Examples:
  snake play
  snake play --color cyan --speed fast
  snake play --skip-settings --seed 42
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagColor, "color", "", "Snake color (must be in the config palette)")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
	playCmd.Flags().BoolVar(&flagSkipSettings, "skip-settings", false, "Start playing without the settings screen")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, _ []string) error {
	snakeCfg, err := loadConfig(flagColor, flagSpeed)
	if err != nil {
		return err
	}
	if flagMute {
		snakeCfg.Audio.Enabled = false
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "error", err)
	}
	if store != nil {
		defer store.Close()
	}

	player := audio.New(snakeCfg.Audio, logger)
	if sp, ok := player.(*audio.Speaker); ok {
		defer sp.Close()
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	deps := tui.Deps{
		Scores: storage.NewHighScoreStore(store, snakeCfg.Storage.HighScoreKey, logger),
		Audio:  player,
		Logger: logger,
	}

	// Settings -> game loop; Esc in the game returns to the settings
	showSettings := !flagSkipSettings
	for {
		if showSettings {
			chosen, ok, err := tui.RunSettings(snakeCfg, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("settings: %w", err)
			}
			if !ok {
				return nil
			}
			snakeCfg = chosen
		}
		showSettings = true

		snake.SetDefaultConfig(snakeCfg)
		game, err := registry.Create(snake.GameID)
		if err != nil {
			return err
		}

		back, err := tui.Run(game, deps, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
		cfg.ScreenW, cfg.ScreenH = terminalSize()
	}
}
