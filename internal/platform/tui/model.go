package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// HighScores persists the best score and the history of finished runs.
// Implementations swallow their own failures.
type HighScores interface {
	LoadHighScore() int
	SaveHighScore(score int)
	RecordScore(gameID string, score int)
}

// Resizer is implemented by games that can relayout without a reset.
type Resizer interface {
	Resize(w, h int)
}

// ButtonPad is implemented by games with clickable on-screen controls.
type ButtonPad interface {
	ButtonAt(x, y int) (core.Action, bool)
}

// Deps are the collaborators a game session reports to. Zero values are
// safe: no persistence, no sound, no logging.
type Deps struct {
	Scores HighScores
	Audio  audio.Player
	Logger *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Audio == nil {
		d.Audio = audio.Nop{}
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	return d
}

// drag tracks a mouse press that may turn into a swipe.
type drag struct {
	active bool
	x, y   int
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	drag       drag
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps.withDefaults(),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Start resets the game and seeds it with the persisted high score.
func (m Model) Start() {
	m.game.Reset(m.config)
	if m.deps.Scores != nil {
		m.game.SetHighScore(m.deps.Scores.LoadHighScore())
	}
}

// Init initializes the model and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.Start()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when nothing is in motion
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.Paused || m.gameState.GameOver) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse turns clicks on the direction buttons and drag gestures into
// steering actions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if pad, ok := m.game.(ButtonPad); ok {
			if action, hit := pad.ButtonAt(msg.X, msg.Y); hit {
				m.inputFrame.Set(action)
				return m, nil
			}
		}
		m.drag = drag{active: true, x: msg.X, y: msg.Y}

	case tea.MouseActionRelease:
		if !m.drag.active {
			return m, nil
		}
		start := m.drag
		m.drag = drag{}
		if action, ok := snake.SwipeAction(msg.X-start.x, msg.Y-start.y); ok {
			m.inputFrame.Set(action)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleTick runs one game frame with the input gathered since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.dispatch(result.Events)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// dispatch forwards game events to storage and audio.
func (m Model) dispatch(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventFoodEaten:
			m.deps.Audio.PlayEat()
		case core.EventHighScore:
			if m.deps.Scores != nil {
				m.deps.Scores.SaveHighScore(ev.Score)
			}
		case core.EventGameOver:
			m.deps.Logger.Debug("game over", "game", m.game.ID(), "score", ev.Score)
			m.deps.Audio.PlayGameOver()
			if m.deps.Scores != nil {
				m.deps.Scores.RecordScore(m.game.ID(), ev.Score)
			}
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.deps.Logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.deps.Logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.Logger.Warn("screenshot not saved", "path", path, "err", err)
		return
	}
	m.deps.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the settings screen.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game. It reports whether
// the player left for the settings screen rather than quitting.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, deps, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Button clicks and drag swipes
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
