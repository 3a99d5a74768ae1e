// Package snake implements the classic grid snake: a deterministic tick
// engine, the direction input buffer and the Game controller that the
// platform drives once per frame.
package snake

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// InBounds reports whether the cell lies on a dim x dim grid.
func (c Cell) InBounds(dim int) bool {
	return c.X >= 0 && c.X < dim && c.Y >= 0 && c.Y < dim
}

// Phase is the engine's state-machine tag.
type Phase int

const (
	PhaseRunning  Phase = iota
	PhaseGameOver       // momentary: Advance resets before returning
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "running"
}

// State is the complete simulation state. It is a value: Advance and Reset
// return new states and never modify the slices of the one passed in.
type State struct {
	Dim       int    // grid dimension
	Snake     []Cell // head first, never empty
	Direction Direction
	Pending   Direction // input buffer, committed at the end of a tick
	Food      Cell
	Score     int
	HighScore int
	Phase     Phase
}

// NewState returns a fresh game on a dim x dim grid carrying the given high
// score.
func NewState(dim, highScore int) State {
	return State{
		Dim:       dim,
		Snake:     []Cell{StartCell(dim)},
		Direction: DirNone,
		Pending:   DirNone,
		Food:      DefaultFood(dim),
		Score:     0,
		HighScore: highScore,
		Phase:     PhaseRunning,
	}
}

// Reset starts over on the same grid. Only the high score survives.
func Reset(st State) State {
	return NewState(st.Dim, st.HighScore)
}

// StartCell is the single-cell snake position after a reset: the grid centre.
func StartCell(dim int) Cell {
	return Cell{X: dim / 2, Y: dim / 2}
}

// DefaultFood is the food position after a reset.
func DefaultFood(dim int) Cell {
	return Cell{X: dim / 4, Y: dim / 4}
}

// Head returns the first snake segment.
func (s State) Head() Cell {
	return s.Snake[0]
}

// Tail returns the last snake segment.
func (s State) Tail() Cell {
	return s.Snake[len(s.Snake)-1]
}

// Occupies reports whether any snake segment is on c.
func (s State) Occupies(c Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

// RequestDirection offers d to the input buffer. A request is accepted when
// the snake is at rest or when d is on the other axis than the committed
// direction; otherwise it is dropped. Accepted requests replace any earlier
// pending one. Reports whether d was accepted.
func (s *State) RequestDirection(d Direction) bool {
	if d.IsNone() || !d.Valid() {
		return false
	}
	if d.Vertical() && s.Direction.DY != 0 {
		return false
	}
	if d.Horizontal() && s.Direction.DX != 0 {
		return false
	}
	s.Pending = d
	return true
}
