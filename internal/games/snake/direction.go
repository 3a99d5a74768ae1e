package snake

import (
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction is a unit step on the grid. The zero value is DirNone, the
// resting state before the first move.
type Direction struct {
	DX, DY int
}

// The five legal directions.
var (
	DirNone  = Direction{}
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// IsNone reports whether the direction is the zero velocity.
func (d Direction) IsNone() bool {
	return d == DirNone
}

// Valid reports whether d is one of the five legal directions.
func (d Direction) Valid() bool {
	switch d {
	case DirNone, DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}

// Horizontal reports whether the direction moves along the x axis.
func (d Direction) Horizontal() bool {
	return d.DX != 0
}

// Vertical reports whether the direction moves along the y axis.
func (d Direction) Vertical() bool {
	return d.DY != 0
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a direction or key name ("up", "ArrowLeft", ...) to a
// Direction. Unrecognized names report false.
func ParseDirection(name string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up", "arrowup":
		return DirUp, true
	case "down", "arrowdown":
		return DirDown, true
	case "left", "arrowleft":
		return DirLeft, true
	case "right", "arrowright":
		return DirRight, true
	}
	return DirNone, false
}

// FromAction maps a steering action to its direction.
func FromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirNone, false
}

// SwipeAction infers a steering action from the start and end of a drag
// gesture. The dominant axis wins; ties count as vertical and a drag with no
// movement is not a swipe.
func SwipeAction(dx, dy int) (core.Action, bool) {
	if core.Abs(dx) > core.Abs(dy) {
		if dx > 0 {
			return core.ActionRight, true
		}
		return core.ActionLeft, true
	}
	switch {
	case dy > 0:
		return core.ActionDown, true
	case dy < 0:
		return core.ActionUp, true
	}
	return core.ActionNone, false
}
