package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodSpawner picks the next food cell on a dim x dim grid.
type FoodSpawner interface {
	SpawnFood(dim int) Cell
}

// SpawnerFunc adapts a function to FoodSpawner.
type SpawnerFunc func(dim int) Cell

// SpawnFood calls f.
func (f SpawnerFunc) SpawnFood(dim int) Cell {
	return f(dim)
}

// RandomSpawner places food uniformly over the whole grid. It ignores the
// snake, so food may land on the body or repeat the previous cell.
type RandomSpawner struct {
	rng *rand.Rand
}

// NewRandomSpawner creates a spawner drawing from rng.
func NewRandomSpawner(rng *rand.Rand) *RandomSpawner {
	return &RandomSpawner{rng: rng}
}

// SpawnFood returns a uniformly random cell.
func (r *RandomSpawner) SpawnFood(dim int) Cell {
	return Cell{X: r.rng.Intn(dim), Y: r.rng.Intn(dim)}
}

// Advance runs one tick and returns the next state together with the events
// the tick produced. Leaving the grid ends the game: the returned state is
// already reset and the events carry the final score.
func Advance(st State, spawn FoodSpawner) (State, []core.Event) {
	next, events := move(st, spawn)
	if next.Phase == PhaseGameOver {
		next = Reset(next)
	}
	return next, events
}

// move is the raw transition. On a boundary hit it returns the unchanged
// position tagged PhaseGameOver.
func move(st State, spawn FoodSpawner) (State, []core.Event) {
	head := st.Head().Step(st.Direction)

	if !head.InBounds(st.Dim) {
		over := st
		over.Phase = PhaseGameOver
		return over, []core.Event{{Kind: core.EventGameOver, Score: st.Score}}
	}

	var events []core.Event
	next := st
	body := make([]Cell, 0, len(st.Snake)+1)
	body = append(body, head)

	if head == st.Food {
		events = append(events, core.Event{Kind: core.EventFoodEaten})
		next.Food = spawn.SpawnFood(st.Dim)
		next.Score++
		if next.Score > next.HighScore {
			next.HighScore = next.Score
			events = append(events, core.Event{Kind: core.EventHighScore, Score: next.Score})
		}
		body = append(body, st.Snake...)
	} else {
		body = append(body, st.Snake[:len(st.Snake)-1]...)
	}

	next.Snake = body
	next.Direction = st.Pending
	next.Phase = PhaseRunning
	return next, events
}
