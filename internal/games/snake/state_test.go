package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// fixedFood always spawns food at c.
func fixedFood(c Cell) FoodSpawner {
	return SpawnerFunc(func(int) Cell { return c })
}

func TestResetState(t *testing.T) {
	st := NewState(20, 0)
	st.Snake = []Cell{{3, 3}, {3, 4}, {3, 5}}
	st.Direction = DirUp
	st.Pending = DirLeft
	st.Food = Cell{7, 7}
	st.Score = 9
	st.HighScore = 12

	r := Reset(st)

	if len(r.Snake) != 1 || r.Head() != (Cell{10, 10}) {
		t.Errorf("snake = %v, expected [(10,10)]", r.Snake)
	}
	if !r.Direction.IsNone() || !r.Pending.IsNone() {
		t.Errorf("direction = %v pending = %v, expected none", r.Direction, r.Pending)
	}
	if r.Food != (Cell{5, 5}) {
		t.Errorf("food = %v, expected (5,5)", r.Food)
	}
	if r.Score != 0 {
		t.Errorf("score = %d, expected 0", r.Score)
	}
	if r.HighScore != 12 {
		t.Errorf("high score = %d, expected 12 to survive reset", r.HighScore)
	}
	if r.Phase != PhaseRunning {
		t.Errorf("phase = %v, expected running", r.Phase)
	}
	// The old snake slice is left alone
	if len(st.Snake) != 3 {
		t.Error("Reset modified its input")
	}
}

func TestRequestDirection(t *testing.T) {
	tests := []struct {
		name      string
		committed Direction
		request   Direction
		accepted  bool
	}{
		{"at rest accepts up", DirNone, DirUp, true},
		{"at rest accepts left", DirNone, DirLeft, true},
		{"right rejects left", DirRight, DirLeft, false},
		{"right rejects right", DirRight, DirRight, false},
		{"right accepts up", DirRight, DirUp, true},
		{"right accepts down", DirRight, DirDown, true},
		{"up rejects down", DirUp, DirDown, false},
		{"up accepts left", DirUp, DirLeft, true},
		{"none request ignored", DirRight, DirNone, false},
		{"diagonal ignored", DirNone, Direction{DX: 1, DY: 1}, false},
		{"long step ignored", DirNone, Direction{DX: 2}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := NewState(20, 0)
			st.Direction = tc.committed
			st.Pending = tc.committed

			got := st.RequestDirection(tc.request)
			if got != tc.accepted {
				t.Errorf("RequestDirection(%v) = %v, expected %v", tc.request, got, tc.accepted)
			}
			if tc.accepted && st.Pending != tc.request {
				t.Errorf("pending = %v, expected %v", st.Pending, tc.request)
			}
			if !tc.accepted && st.Pending != tc.committed {
				t.Errorf("rejected request changed pending to %v", st.Pending)
			}
		})
	}
}

func TestRequestDirectionLastAcceptedWins(t *testing.T) {
	st := NewState(20, 0)
	st.Direction = DirRight
	st.Pending = DirRight

	st.RequestDirection(DirUp)
	st.RequestDirection(DirLeft) // still checked against committed Right
	st.RequestDirection(DirDown)

	if st.Pending != DirDown {
		t.Errorf("pending = %v, expected down", st.Pending)
	}
}

func TestEatFoodScenario(t *testing.T) {
	st := NewState(20, 0)
	st.Snake = []Cell{{10, 10}}
	st.Direction = DirRight
	st.Pending = DirRight
	st.Food = Cell{11, 10}

	next, events := Advance(st, fixedFood(Cell{2, 3}))

	want := []Cell{{11, 10}, {10, 10}}
	if len(next.Snake) != 2 || next.Snake[0] != want[0] || next.Snake[1] != want[1] {
		t.Errorf("snake = %v, expected %v", next.Snake, want)
	}
	if next.Score != 1 {
		t.Errorf("score = %d, expected 1", next.Score)
	}
	if next.Food != (Cell{2, 3}) {
		t.Errorf("food = %v, expected relocated to (2,3)", next.Food)
	}
	if next.HighScore != 1 {
		t.Errorf("high score = %d, expected 1", next.HighScore)
	}
	if len(events) != 2 || events[0].Kind != core.EventFoodEaten || events[1] != (core.Event{Kind: core.EventHighScore, Score: 1}) {
		t.Errorf("events = %v, expected food eaten then high score 1", events)
	}
}

func TestEatFoodBelowHighScore(t *testing.T) {
	st := NewState(20, 10)
	st.Snake = []Cell{{10, 10}}
	st.Direction = DirRight
	st.Pending = DirRight
	st.Food = Cell{11, 10}
	st.Score = 4

	next, events := Advance(st, fixedFood(Cell{0, 0}))

	if next.Score != 5 || next.HighScore != 10 {
		t.Errorf("score/high = %d/%d, expected 5/10", next.Score, next.HighScore)
	}
	if len(events) != 1 || events[0].Kind != core.EventFoodEaten {
		t.Errorf("events = %v, expected only food eaten", events)
	}
}

func TestBoundaryScenario(t *testing.T) {
	st := NewState(20, 7)
	st.Snake = []Cell{{0, 10}, {1, 10}, {2, 10}}
	st.Direction = DirLeft
	st.Pending = DirLeft
	st.Score = 3

	over, events := move(st, fixedFood(Cell{}))
	if over.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, expected game over", over.Phase)
	}
	if over.Score != 3 {
		t.Errorf("game-over state score = %d, expected 3", over.Score)
	}

	next, events := Advance(st, fixedFood(Cell{}))
	if len(events) != 1 || events[0] != (core.Event{Kind: core.EventGameOver, Score: 3}) {
		t.Fatalf("events = %v, expected game over with score 3", events)
	}

	fresh := NewState(20, 7)
	if len(next.Snake) != 1 || next.Head() != fresh.Head() || next.Food != fresh.Food ||
		next.Score != 0 || !next.Direction.IsNone() || next.Phase != PhaseRunning {
		t.Errorf("state after game over = %+v, expected fresh game", next)
	}
	if next.HighScore != 7 {
		t.Errorf("high score = %d, expected 7", next.HighScore)
	}
}

func TestBoundaryAllEdges(t *testing.T) {
	tests := []struct {
		name string
		head Cell
		dir  Direction
	}{
		{"left", Cell{0, 5}, DirLeft},
		{"right", Cell{19, 5}, DirRight},
		{"top", Cell{5, 0}, DirUp},
		{"bottom", Cell{5, 19}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := NewState(20, 0)
			st.Snake = []Cell{tc.head}
			st.Direction = tc.dir
			st.Pending = tc.dir

			_, events := Advance(st, fixedFood(Cell{}))
			if len(events) != 1 || events[0].Kind != core.EventGameOver {
				t.Errorf("events = %v, expected game over", events)
			}
		})
	}
}

func TestPlainMovePopsTail(t *testing.T) {
	st := NewState(20, 0)
	st.Snake = []Cell{{5, 5}, {4, 5}, {3, 5}}
	st.Direction = DirRight
	st.Pending = DirUp

	next, events := Advance(st, fixedFood(Cell{}))

	if len(events) != 0 {
		t.Errorf("events = %v, expected none", events)
	}
	want := []Cell{{6, 5}, {5, 5}, {4, 5}}
	for i, c := range want {
		if next.Snake[i] != c {
			t.Fatalf("snake = %v, expected %v", next.Snake, want)
		}
	}
	if next.Direction != DirUp {
		t.Errorf("direction = %v, expected pending up to be committed", next.Direction)
	}
	if st.Snake[0] != (Cell{5, 5}) || len(st.Snake) != 3 {
		t.Error("Advance modified its input")
	}
}

func TestReversalNeverCommitted(t *testing.T) {
	st := NewState(20, 0)
	st.Direction = DirRight
	st.Pending = DirRight

	st.RequestDirection(DirLeft)
	next, _ := Advance(st, fixedFood(Cell{}))

	if next.Direction != DirRight {
		t.Errorf("direction = %v, expected right", next.Direction)
	}
}

func TestRestingSnake(t *testing.T) {
	st := NewState(20, 0)

	next, events := Advance(st, fixedFood(Cell{1, 1}))
	if len(events) != 0 || next.Head() != st.Head() || len(next.Snake) != 1 {
		t.Errorf("resting snake moved: %v events %v", next.Snake, events)
	}

	// Food under the resting head is eaten on every tick
	st.Food = st.Head()
	next, events = Advance(st, fixedFood(st.Head()))
	if next.Score != 1 || len(next.Snake) != 2 || len(events) == 0 {
		t.Errorf("food at head: score %d len %d events %v", next.Score, len(next.Snake), events)
	}
	if next.Snake[0] != next.Snake[1] {
		t.Errorf("grown resting snake should stack on one cell: %v", next.Snake)
	}
}

func TestSelfOverlapIsHarmless(t *testing.T) {
	st := NewState(20, 0)
	// Head at (5,5) moving left into its own body at (4,5)
	st.Snake = []Cell{{5, 5}, {5, 6}, {4, 6}, {4, 5}, {3, 5}}
	st.Direction = DirLeft
	st.Pending = DirLeft

	next, events := Advance(st, fixedFood(Cell{}))

	for _, ev := range events {
		if ev.Kind == core.EventGameOver {
			t.Fatal("running into the body must not end the game")
		}
	}
	if next.Head() != (Cell{4, 5}) {
		t.Errorf("head = %v, expected (4,5)", next.Head())
	}
}

func TestFoodMaySpawnOnBody(t *testing.T) {
	st := NewState(20, 0)
	st.Snake = []Cell{{5, 5}, {4, 5}}
	st.Direction = DirRight
	st.Pending = DirRight
	st.Food = Cell{6, 5}

	next, _ := Advance(st, fixedFood(Cell{5, 5}))
	if !next.Occupies(next.Food) {
		t.Errorf("food %v should be allowed on the body %v", next.Food, next.Snake)
	}
}

func TestRandomSpawnerCoversGrid(t *testing.T) {
	sp := NewRandomSpawner(rand.New(rand.NewSource(1)))
	seen := make(map[Cell]bool)

	for i := 0; i < 4000; i++ {
		c := sp.SpawnFood(5)
		if !c.InBounds(5) {
			t.Fatalf("spawned out of bounds: %v", c)
		}
		seen[c] = true
	}
	if len(seen) != 25 {
		t.Errorf("covered %d of 25 cells", len(seen))
	}
}

func TestLengthAndScoreProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	st := NewState(12, 0)
	spawner := NewRandomSpawner(rand.New(rand.NewSource(7)))
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	bestSeen := 0

	for i := 0; i < 5000; i++ {
		st.RequestDirection(dirs[rng.Intn(len(dirs))])
		before := st
		next, events := Advance(st, spawner)

		ate, over := false, false
		for _, ev := range events {
			switch ev.Kind {
			case core.EventFoodEaten:
				ate = true
			case core.EventGameOver:
				over = true
				if ev.Score != before.Score {
					t.Fatalf("tick %d: game over score %d, expected %d", i, ev.Score, before.Score)
				}
			}
		}

		switch {
		case over:
			if len(next.Snake) != 1 || next.Score != 0 {
				t.Fatalf("tick %d: game over should reset, got %+v", i, next)
			}
		case ate:
			if len(next.Snake) != len(before.Snake)+1 || next.Score != before.Score+1 {
				t.Fatalf("tick %d: eating should grow by one and score one", i)
			}
		default:
			if len(next.Snake) != len(before.Snake) || next.Score != before.Score {
				t.Fatalf("tick %d: plain move changed length or score", i)
			}
		}

		if next.HighScore < before.HighScore || next.HighScore < bestSeen {
			t.Fatalf("tick %d: high score decreased %d -> %d", i, before.HighScore, next.HighScore)
		}
		bestSeen = next.HighScore
		for _, c := range next.Snake {
			if !c.InBounds(12) {
				t.Fatalf("tick %d: segment %v out of bounds", i, c)
			}
		}
		st = next
	}
}
