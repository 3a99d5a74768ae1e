package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Settings rows.
const (
	settingColor = iota
	settingSpeed
	settingStart
	settingCount
)

const sliderWidth = 30

// SettingsModel lets the player pick the snake color and speed before a game.
type SettingsModel struct {
	cfg       config.SnakeConfig
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	slider    progress.Model
	choosing  bool
	quitting  bool
}

// NewSettingsModel creates a settings screen starting from cfg.
func NewSettingsModel(cfg config.SnakeConfig, width, height int) SettingsModel {
	return SettingsModel{
		cfg:       cfg,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		slider: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(sliderWidth),
			progress.WithoutPercentage(),
		),
		choosing: true,
	}
}

// Init initializes the model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = (m.cursor - 1 + settingCount) % settingCount
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % settingCount
	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(1)
	case MenuActionSelect:
		if m.cursor == settingStart {
			m.choosing = false
			return m, tea.Quit
		}
		m.cursor = settingStart
	}
	return m, nil
}

// adjust moves the selected setting one step in dir.
func (m *SettingsModel) adjust(dir int) {
	switch m.cursor {
	case settingColor:
		if dir > 0 {
			m.cfg.Appearance.SnakeColor = m.cfg.Appearance.NextColor(m.cfg.Appearance.SnakeColor)
		} else {
			m.cfg.Appearance.SnakeColor = m.cfg.Appearance.PrevColor(m.cfg.Appearance.SnakeColor)
		}
	case settingSpeed:
		step := max(m.cfg.Speed.Step, 1)
		m.cfg.Speed = m.cfg.Speed.WithSlider(m.cfg.Speed.Slider + dir*step)
	}
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")

	rows := []string{
		m.colorRow(),
		m.speedRow(),
		"Start game",
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(dim.Render("Up/Down: Select  |  Left/Right: Change  |  Enter: Play  |  Q: Quit"), m.width))

	return b.String()
}

func (m SettingsModel) colorRow() string {
	name := m.cfg.Appearance.SnakeColor
	c, ok := core.ColorByName(name)
	if !ok {
		c = core.ColorGreen
	}
	swatch := styleFor(c).Render("██████")
	return fmt.Sprintf("Snake color   < %-8s > %s", name, swatch)
}

func (m SettingsModel) speedRow() string {
	return fmt.Sprintf("Speed   %s  %3dms per move",
		m.slider.ViewAs(m.cfg.Speed.Fraction()), m.cfg.Speed.TickInterval().Milliseconds())
}

// Config returns the configuration with the player's choices applied.
func (m SettingsModel) Config() config.SnakeConfig {
	return m.cfg
}

// IsChoosing returns true while the player is still on the settings screen.
func (m SettingsModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if the player wants to quit.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// RunSettings runs the settings screen. ok is false when the player quit
// instead of starting a game.
func RunSettings(cfg config.SnakeConfig, width, height int) (result config.SnakeConfig, ok bool, err error) {
	model := NewSettingsModel(cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return cfg, false, err
	}

	m, isSettings := finalModel.(SettingsModel)
	if !isSettings || m.IsQuitting() || m.IsChoosing() {
		return cfg, false, nil
	}

	return m.Config(), true, nil
}
