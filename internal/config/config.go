// Package config provides YAML-based game configuration loading and
// speed presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is returned (wrapped) by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Speed      SpeedConfig      `yaml:"speed"`
	Appearance AppearanceConfig `yaml:"appearance"`
	Audio      AudioConfig      `yaml:"audio"`
	Storage    StorageConfig    `yaml:"storage"`
}

// BoardConfig defines the square play area.
// The grid dimension is derived from board size / cell size.
type BoardConfig struct {
	Size     int `yaml:"size"`
	CellSize int `yaml:"cell_size"`
}

// GridDimension returns the number of cells per row and column.
func (b BoardConfig) GridDimension() int {
	if b.CellSize <= 0 {
		return 0
	}
	return b.Size / b.CellSize
}

// SpeedConfig models the speed slider. Larger slider values mean a shorter
// tick interval: interval = MaxIntervalMS - Slider.
type SpeedConfig struct {
	Slider        int `yaml:"slider"`
	MinSlider     int `yaml:"min_slider"`
	MaxSlider     int `yaml:"max_slider"`
	MaxIntervalMS int `yaml:"max_interval_ms"`
	Step          int `yaml:"step"`
}

// TickInterval returns the time between two simulation ticks.
func (s SpeedConfig) TickInterval() time.Duration {
	return time.Duration(s.MaxIntervalMS-s.Slider) * time.Millisecond
}

// WithSlider returns a copy with the slider moved to v, clamped to its bounds.
func (s SpeedConfig) WithSlider(v int) SpeedConfig {
	s.Slider = core.Clamp(v, s.MinSlider, s.MaxSlider)
	return s
}

// Fraction returns the slider position in [0, 1] for display.
func (s SpeedConfig) Fraction() float64 {
	span := s.MaxSlider - s.MinSlider
	if span <= 0 {
		return 0
	}
	return float64(s.Slider-s.MinSlider) / float64(span)
}

// AppearanceConfig defines colors. Colors are palette names understood by
// core.ColorByName.
type AppearanceConfig struct {
	SnakeColor string   `yaml:"snake_color"`
	FoodColor  string   `yaml:"food_color"`
	Palette    []string `yaml:"palette"`
}

// NextColor returns the palette entry after current, wrapping around.
// An unknown current color yields the first palette entry.
func (a AppearanceConfig) NextColor(current string) string {
	if len(a.Palette) == 0 {
		return current
	}
	i := slices.IndexFunc(a.Palette, func(c string) bool {
		return strings.EqualFold(c, current)
	})
	return a.Palette[(i+1)%len(a.Palette)]
}

// PrevColor returns the palette entry before current, wrapping around.
// An unknown current color yields the first palette entry.
func (a AppearanceConfig) PrevColor(current string) string {
	if len(a.Palette) == 0 {
		return current
	}
	i := slices.IndexFunc(a.Palette, func(c string) bool {
		return strings.EqualFold(c, current)
	})
	if i < 0 {
		return a.Palette[0]
	}
	return a.Palette[(i-1+len(a.Palette))%len(a.Palette)]
}

// AudioConfig controls sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// StorageConfig controls high-score persistence.
type StorageConfig struct {
	HighScoreKey string `yaml:"high_score_key"`
}

// Validate reports the first unusable setting.
func (c SnakeConfig) Validate() error {
	if c.Board.Size <= 0 || c.Board.CellSize <= 0 {
		return fmt.Errorf("%w: board size %d and cell size %d must be positive", ErrInvalid, c.Board.Size, c.Board.CellSize)
	}
	if c.Board.GridDimension() < 2 {
		return fmt.Errorf("%w: grid dimension %d is too small", ErrInvalid, c.Board.GridDimension())
	}

	s := c.Speed
	if s.MinSlider > s.MaxSlider {
		return fmt.Errorf("%w: speed min_slider %d exceeds max_slider %d", ErrInvalid, s.MinSlider, s.MaxSlider)
	}
	if s.Slider < s.MinSlider || s.Slider > s.MaxSlider {
		return fmt.Errorf("%w: speed slider %d outside [%d, %d]", ErrInvalid, s.Slider, s.MinSlider, s.MaxSlider)
	}
	if s.MaxIntervalMS-s.MaxSlider <= 0 {
		return fmt.Errorf("%w: max_slider %d leaves no tick interval below %dms", ErrInvalid, s.MaxSlider, s.MaxIntervalMS)
	}

	a := c.Appearance
	if len(a.Palette) == 0 {
		return fmt.Errorf("%w: palette is empty", ErrInvalid)
	}
	for _, name := range a.Palette {
		if _, ok := core.ColorByName(name); !ok {
			return fmt.Errorf("%w: unknown palette color %q", ErrInvalid, name)
		}
	}
	if !slices.ContainsFunc(a.Palette, func(p string) bool { return strings.EqualFold(p, a.SnakeColor) }) {
		return fmt.Errorf("%w: snake color %q is not in the palette", ErrInvalid, a.SnakeColor)
	}
	if _, ok := core.ColorByName(a.FoodColor); !ok {
		return fmt.Errorf("%w: unknown food color %q", ErrInvalid, a.FoodColor)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %.2f outside [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	if c.Storage.HighScoreKey == "" {
		return fmt.Errorf("%w: high_score_key is empty", ErrInvalid)
	}
	return nil
}

// SpeedPreset represents a named speed slider position.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// ParseSpeedPreset converts a CLI value to a preset. Empty means none.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch p := SpeedPreset(strings.ToLower(s)); p {
	case "", SpeedSlow, SpeedNormal, SpeedFast:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown speed preset %q (want slow, normal or fast)", ErrInvalid, s)
	}
}

// ApplySpeedPreset moves the slider to the preset position.
func ApplySpeedPreset(cfg *SnakeConfig, preset SpeedPreset) {
	switch preset {
	case SpeedSlow:
		cfg.Speed = cfg.Speed.WithSlider(100)
	case SpeedNormal:
		cfg.Speed = cfg.Speed.WithSlider(200)
	case SpeedFast:
		cfg.Speed = cfg.Speed.WithSlider(250)
	}
}
