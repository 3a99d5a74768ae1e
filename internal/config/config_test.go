package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsMatchEmbeddedYAML(t *testing.T) {
	embedded, err := parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	def := DefaultSnakeConfig()
	if embedded.Board != def.Board {
		t.Errorf("board: embedded %+v, hard-coded %+v", embedded.Board, def.Board)
	}
	if embedded.Speed != def.Speed {
		t.Errorf("speed: embedded %+v, hard-coded %+v", embedded.Speed, def.Speed)
	}
	if embedded.Appearance.SnakeColor != def.Appearance.SnakeColor {
		t.Errorf("snake color: embedded %q, hard-coded %q", embedded.Appearance.SnakeColor, def.Appearance.SnakeColor)
	}
	if len(embedded.Appearance.Palette) != len(def.Appearance.Palette) {
		t.Errorf("palette: embedded %v, hard-coded %v", embedded.Appearance.Palette, def.Appearance.Palette)
	}
	if embedded.Storage.HighScoreKey != "highScore" {
		t.Errorf("high score key = %q", embedded.Storage.HighScoreKey)
	}
}

func TestDefaultDerivedValues(t *testing.T) {
	cfg := DefaultSnakeConfig()

	if got := cfg.Board.GridDimension(); got != 20 {
		t.Errorf("GridDimension() = %d, expected 20", got)
	}
	if got := cfg.Speed.TickInterval(); got != 100*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 100ms", got)
	}
}

func TestSpeedSlider(t *testing.T) {
	s := DefaultSnakeConfig().Speed

	tests := []struct {
		slider   int
		expected time.Duration
	}{
		{0, 300 * time.Millisecond},
		{150, 150 * time.Millisecond},
		{250, 50 * time.Millisecond},
		{400, 50 * time.Millisecond}, // clamped to max_slider
		{-20, 300 * time.Millisecond},
	}

	for _, tc := range tests {
		got := s.WithSlider(tc.slider).TickInterval()
		if got != tc.expected {
			t.Errorf("WithSlider(%d).TickInterval() = %v, expected %v", tc.slider, got, tc.expected)
		}
	}

	if f := s.WithSlider(125).Fraction(); f != 0.5 {
		t.Errorf("Fraction() = %v, expected 0.5", f)
	}
}

func TestNextColor(t *testing.T) {
	a := AppearanceConfig{Palette: []string{"green", "blue", "red"}}

	tests := []struct {
		current, expected string
	}{
		{"green", "blue"},
		{"blue", "red"},
		{"red", "green"},
		{"RED", "green"},
		{"purple", "green"},
	}

	for _, tc := range tests {
		if got := a.NextColor(tc.current); got != tc.expected {
			t.Errorf("NextColor(%q) = %q, expected %q", tc.current, got, tc.expected)
		}
	}

	if got := a.PrevColor("green"); got != "red" {
		t.Errorf("PrevColor(green) = %q, expected red", got)
	}
	if got := a.PrevColor("purple"); got != "green" {
		t.Errorf("PrevColor(purple) = %q, expected green", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"zero cell size", func(c *SnakeConfig) { c.Board.CellSize = 0 }},
		{"tiny grid", func(c *SnakeConfig) { c.Board.Size = 20 }},
		{"slider above max", func(c *SnakeConfig) { c.Speed.Slider = 260 }},
		{"slider bounds inverted", func(c *SnakeConfig) { c.Speed.MinSlider = 300 }},
		{"no interval left", func(c *SnakeConfig) { c.Speed.MaxSlider = 300 }},
		{"empty palette", func(c *SnakeConfig) { c.Appearance.Palette = nil }},
		{"unknown palette color", func(c *SnakeConfig) { c.Appearance.Palette = append(c.Appearance.Palette, "mauve") }},
		{"snake color not in palette", func(c *SnakeConfig) { c.Appearance.SnakeColor = "gray" }},
		{"bad food color", func(c *SnakeConfig) { c.Appearance.FoodColor = "ruby" }},
		{"volume too loud", func(c *SnakeConfig) { c.Audio.Volume = 1.5 }},
		{"missing key", func(c *SnakeConfig) { c.Storage.HighScoreKey = "" }},
	}

	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	data := []byte("board:\n  size: 300\nappearance:\n  snake_color: blue\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.Board.GridDimension() != 15 {
		t.Errorf("GridDimension() = %d, expected 15", cfg.Board.GridDimension())
	}
	if cfg.Appearance.SnakeColor != "blue" {
		t.Errorf("SnakeColor = %q, expected blue", cfg.Appearance.SnakeColor)
	}
	// Keys absent from the file keep their defaults
	if cfg.Speed.TickInterval() != 100*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected default 100ms", cfg.Speed.TickInterval())
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("speed:\n  slider: 999\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnake(bad)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadSnake(bad) = %v, expected ErrInvalid", err)
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(garbage); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadSnakeSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Appearance.SnakeColor != "green" {
		t.Errorf("expected embedded default color, got %q", cfg.Appearance.SnakeColor)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "snake.yaml"), []byte("appearance:\n  snake_color: red\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadSnake("")
	if cfg.Appearance.SnakeColor != "red" {
		t.Errorf("expected local config color red, got %q", cfg.Appearance.SnakeColor)
	}

	// User directory wins over the local one
	userDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "snake.yaml"), []byte("appearance:\n  snake_color: cyan\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadSnake("")
	if cfg.Appearance.SnakeColor != "cyan" {
		t.Errorf("expected user config color cyan, got %q", cfg.Appearance.SnakeColor)
	}
}

func TestSpeedPresets(t *testing.T) {
	tests := []struct {
		in       string
		expected time.Duration
	}{
		{"slow", 200 * time.Millisecond},
		{"NORMAL", 100 * time.Millisecond},
		{"fast", 50 * time.Millisecond},
	}

	for _, tc := range tests {
		preset, err := ParseSpeedPreset(tc.in)
		if err != nil {
			t.Fatalf("ParseSpeedPreset(%q) failed: %v", tc.in, err)
		}
		cfg := DefaultSnakeConfig()
		cfg.Speed.Slider = 0
		ApplySpeedPreset(&cfg, preset)
		if got := cfg.Speed.TickInterval(); got != tc.expected {
			t.Errorf("preset %q: TickInterval() = %v, expected %v", tc.in, got, tc.expected)
		}
	}

	if _, err := ParseSpeedPreset("ludicrous"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown preset should fail with ErrInvalid, got %v", err)
	}
}
