package snake

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "snake"

// Layout constants (in screen characters).
const (
	hudHeight = 1 // Top HUD line
	cellWidth = 2 // Each grid cell is drawn two columns wide to look square
)

var (
	defaultMu  sync.RWMutex
	defaultCfg = config.DefaultSnakeConfig()
)

// SetDefaultConfig sets the configuration used by New (and therefore by the
// registry factory). Call it before creating games.
func SetDefaultConfig(cfg config.SnakeConfig) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCfg = cfg
}

// DefaultConfig returns the configuration New will use.
func DefaultConfig() config.SnakeConfig {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultCfg
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game implements the Snake game on top of the tick engine.
// It owns the engine State exclusively; the platform drives it through Step
// once per frame.
type Game struct {
	cfg     config.SnakeConfig
	rng     *rand.Rand
	spawner FoodSpawner
	state   State
	pacer   *Pacer

	frameDur time.Duration // virtual time per Step
	clock    time.Duration // virtual time since Reset
	frame    uint64
	tick     uint64

	snakeColor core.Color
	foodColor  core.Color

	paused   bool
	notice   string // pending game-over notification, blocks ticking
	tooSmall bool

	screenW int
	screenH int
	board   core.Rect
	buttons []button
}

// button is an on-screen direction control.
type button struct {
	label  string
	action core.Action
	rect   core.Rect
}

// New creates a Snake game using the default configuration.
func New() *Game {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Snake game with an explicit configuration.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	g := &Game{cfg: cfg}
	g.applyAppearance()
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game. The high score survives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.spawner = NewRandomSpawner(g.rng)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frameDur = time.Second / time.Duration(tickRate)
	g.clock = 0
	g.frame = 0
	g.tick = 0

	g.state = NewState(g.cfg.Board.GridDimension(), g.state.HighScore)
	g.pacer = NewPacer(g.cfg.Speed.TickInterval())
	g.paused = false
	g.notice = ""

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout for a new terminal size without touching the
// simulation.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	dim := g.state.Dim
	boardW := dim*cellWidth + 2
	boardH := dim + 2
	g.board = core.NewRect((w-boardW)/2, hudHeight, boardW, boardH)

	// HUD + board + button row
	g.tooSmall = w < boardW || h < g.board.Bottom()+1

	labels := []struct {
		label  string
		action core.Action
	}{
		{"[▲]", core.ActionUp},
		{"[▼]", core.ActionDown},
		{"[◀]", core.ActionLeft},
		{"[▶]", core.ActionRight},
	}
	const btnW, gap = 3, 1
	total := len(labels)*btnW + (len(labels)-1)*gap
	x := (w - total) / 2
	g.buttons = g.buttons[:0]
	for _, l := range labels {
		g.buttons = append(g.buttons, button{
			label:  l.label,
			action: l.action,
			rect:   core.NewRect(x, g.board.Bottom(), btnW, 1),
		})
		x += btnW + gap
	}
}

// SetHighScore seeds the persisted best score. It never lowers the current one.
func (g *Game) SetHighScore(score int) {
	g.state.HighScore = max(g.state.HighScore, score)
}

// Step advances the game by one frame. A simulation tick runs only when the
// tick interval has elapsed since the previous tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frame++
	g.clock += g.frameDur

	// A game-over notice holds the loop until the player acknowledges it.
	if g.notice != "" {
		if input.Has(core.ActionConfirm) || input.Has(core.ActionRestart) || len(input.Directions) > 0 {
			g.notice = ""
			g.pacer.Rewind(g.clock)
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) {
		g.state = Reset(g.state)
		g.paused = false
		g.pacer.Rewind(g.clock)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	g.applySettings(input)

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range input.Directions {
		if d, ok := FromAction(a); ok {
			g.state.RequestDirection(d)
		}
	}

	if !g.pacer.Due(g.clock) {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	var events []core.Event
	g.state, events = Advance(g.state, g.spawner)
	for _, ev := range events {
		if ev.Kind == core.EventGameOver {
			g.notice = fmt.Sprintf("Game over! Your score: %d", ev.Score)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// applySettings handles the live color and speed controls.
func (g *Game) applySettings(input core.InputFrame) {
	if input.Has(core.ActionColorNext) {
		g.cfg.Appearance.SnakeColor = g.cfg.Appearance.NextColor(g.cfg.Appearance.SnakeColor)
		g.applyAppearance()
	}

	step := max(g.cfg.Speed.Step, 1)
	switch {
	case input.Has(core.ActionSpeedUp):
		g.cfg.Speed = g.cfg.Speed.WithSlider(g.cfg.Speed.Slider + step)
	case input.Has(core.ActionSpeedDown):
		g.cfg.Speed = g.cfg.Speed.WithSlider(g.cfg.Speed.Slider - step)
	default:
		return
	}
	g.pacer.SetInterval(g.cfg.Speed.TickInterval())
}

func (g *Game) applyAppearance() {
	g.snakeColor = core.ColorGreen
	if c, ok := core.ColorByName(g.cfg.Appearance.SnakeColor); ok {
		g.snakeColor = c
	}
	g.foodColor = core.ColorRed
	if c, ok := core.ColorByName(g.cfg.Appearance.FoodColor); ok {
		g.foodColor = c
	}
}

// ButtonAt returns the direction action of the on-screen button at (x, y).
func (g *Game) ButtonAt(x, y int) (core.Action, bool) {
	if g.tooSmall {
		return core.ActionNone, false
	}
	for _, b := range g.buttons {
		if b.rect.Contains(x, y) {
			return b.action, true
		}
	}
	return core.ActionNone, false
}

// ScoreText is the formatted current score for display.
func (g *Game) ScoreText() string {
	return fmt.Sprintf("Score: %d", g.state.Score)
}

// HighScoreText is the formatted high score for display.
func (g *Game) HighScoreText() string {
	return fmt.Sprintf("High Score: %d", g.state.HighScore)
}

// Config returns the live configuration, including color and speed changes
// made during play.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.state.Score,
		HighScore: g.state.HighScore,
		GameOver:  g.notice != "",
		Paused:    g.paused,
	}
}
