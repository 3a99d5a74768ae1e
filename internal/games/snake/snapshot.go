package snake

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frame     uint64
	Tick      uint64
	Score     int
	HighScore int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	Pending   Direction
	FoodX     int
	FoodY     int
	Interval  int64 // tick interval in milliseconds
	Phase     Phase
	Paused    bool
	Notice    bool
	Body      []Cell
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	head := g.state.Head()
	return Snapshot{
		Frame:     g.frame,
		Tick:      g.tick,
		Score:     g.state.Score,
		HighScore: g.state.HighScore,
		SnakeLen:  len(g.state.Snake),
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       g.state.Direction,
		Pending:   g.state.Pending,
		FoodX:     g.state.Food.X,
		FoodY:     g.state.Food.Y,
		Interval:  g.pacer.Interval().Milliseconds(),
		Phase:     g.state.Phase,
		Paused:    g.paused,
		Notice:    g.notice != "",
		Body:      append([]Cell(nil), g.state.Snake...),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FoodX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FoodY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Dir.DX+1)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Dir.DY+1)  //#nosec G115 -- hash computation
	for _, c := range snap.Body {
		h = h*31 + uint64(c.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(c.Y) //#nosec G115 -- hash computation
	}
	return h
}
