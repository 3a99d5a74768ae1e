package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound timings.
const (
	eatNoteDuration      = 60 * time.Millisecond
	eatAttack            = 5 * time.Millisecond
	eatRelease           = 40 * time.Millisecond
	gameOverNoteDuration = 180 * time.Millisecond
	gameOverAttack       = 10 * time.Millisecond
	gameOverRelease      = 120 * time.Millisecond
)

// WaveType selects the oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator produces a fixed-length periodic wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave generator that ends after duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release; it cuts the
// stream after duration.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack/release envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if rem := e.total - e.position; len(samples) > rem {
		samples = samples[:rem]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. Zero volume is silent since
// log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// EatSound is a short rising two-note chirp.
func EatSound(rate beep.SampleRate, vol float64) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		var src beep.Streamer
		if tone, err := generators.SineTone(rate, freq); err == nil {
			src = tone
		} else {
			src = NewOscillator(freq, eatNoteDuration, WaveSine, rate)
		}
		return NewEnvelope(src, eatNoteDuration, eatAttack, eatRelease, rate)
	}
	return newVolume(beep.Seq(note(660), note(990)), vol)
}

// GameOverSound is a falling three-note square-wave phrase with a quiet
// octave-down saw underneath.
func GameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := []float64{392, 311.13, 196}
	phrase := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		lead := NewEnvelope(NewOscillator(f, gameOverNoteDuration, WaveSquare, rate),
			gameOverNoteDuration, gameOverAttack, gameOverRelease, rate)
		sub := NewEnvelope(NewOscillator(f/2, gameOverNoteDuration, WaveSaw, rate),
			gameOverNoteDuration, gameOverAttack, gameOverRelease, rate)
		phrase = append(phrase, beep.Mix(newVolume(lead, 0.6), newVolume(sub, 0.3)))
	}
	return newVolume(beep.Seq(phrase...), vol)
}
