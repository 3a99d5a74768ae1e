// snake is a terminal snake game with persistent high scores and SSH play.
//
// Usage:
//
//	snake play               - Pick color and speed, then play
//	snake scores             - Show recorded scores
//	snake board              - Interactive scoreboard
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--config <path>     - Use a custom snake.yaml
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer, eat, grow, in your terminal",
	Long: `Snake is a terminal version of the classic grid game.

Steer with the arrow keys, WASD, hjkl, the on-screen buttons or a mouse
drag. Every piece of food adds a point and a segment; leaving the board
ends the run and starts a new one. Your best score is kept between runs.

Available commands:
  play     - Choose color and speed, then play
  scores   - Print recorded scores
  board    - Interactive scoreboard
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --color blue --speed fast --skip-settings
  snake scores
  snake serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the snake config and applies the play flags on top.
func loadConfig(color, speed string) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseSpeedPreset(speed)
	if err != nil {
		return cfg, err
	}
	config.ApplySpeedPreset(&cfg, preset)

	if color != "" {
		cfg.Appearance.SnakeColor = strings.ToLower(color)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the local logger. Logging to the terminal would tear the
// game screen, so without --log-file everything is discarded.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}

// terminalSize returns the current terminal size or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
