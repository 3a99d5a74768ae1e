// Package audio plays the snake sound effects through the gopxl/beep speaker.
// Playback is fire-and-forget: a missing audio device or a playback error
// never reaches the game loop.
package audio

// Player receives the game's sound cues.
type Player interface {
	PlayEat()
	PlayGameOver()
}

// Nop is a Player that stays silent. Used for SSH sessions and when audio
// is disabled in the config.
type Nop struct{}

func (Nop) PlayEat()      {}
func (Nop) PlayGameOver() {}
