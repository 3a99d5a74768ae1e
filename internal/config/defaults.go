package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot
// be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Size:     400,
			CellSize: 20,
		},
		Speed: SpeedConfig{
			Slider:        200, // 100ms per tick
			MinSlider:     0,
			MaxSlider:     250,
			MaxIntervalMS: 300,
			Step:          10,
		},
		Appearance: AppearanceConfig{
			SnakeColor: "green",
			FoodColor:  "red",
			Palette:    []string{"green", "blue", "red", "yellow", "cyan", "magenta", "orange", "white"},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Storage: StorageConfig{
			HighScoreKey: "highScore",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
