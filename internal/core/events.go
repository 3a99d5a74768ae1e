package core

// EventKind identifies a side-effect signal emitted by a simulation step.
// The platform turns events into sounds, persistence writes and notices.
type EventKind int

const (
	EventFoodEaten EventKind = iota + 1 // play the eat sound
	EventGameOver                       // play the game-over sound, record Score
	EventHighScore                      // persist Score as the new high score
)

// Event is a single signal. Score carries the final score for EventGameOver
// and the new best for EventHighScore.
type Event struct {
	Kind  EventKind
	Score int
}

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventFoodEaten:
		return "food_eaten"
	case EventGameOver:
		return "game_over"
	case EventHighScore:
		return "high_score"
	default:
		return "unknown"
	}
}
