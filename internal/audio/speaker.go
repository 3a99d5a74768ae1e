package audio

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// ErrUnavailable is reported by Init after the audio device failed once.
var ErrUnavailable = errors.New("audio: device unavailable")

// initSpeaker opens the output device. Replaced in tests.
var initSpeaker = func(sr beep.SampleRate) error {
	return speaker.Init(sr, sr.N(time.Second/10))
}

// playStreamer hands a sound to the device mixer. Replaced in tests.
var playStreamer = func(s beep.Streamer) {
	speaker.Play(s)
}

// Speaker plays sound effects on the local audio device. The device is opened
// lazily on the first sound; if that fails the speaker goes silent for the
// rest of the process.
type Speaker struct {
	mu          sync.Mutex
	volume      float64
	initialized bool
	failed      bool
	logger      *log.Logger
}

// NewSpeaker creates a speaker with the configured volume. logger may be nil.
func NewSpeaker(cfg config.AudioConfig, logger *log.Logger) *Speaker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Speaker{volume: cfg.Volume, logger: logger}
}

// New returns a Speaker when audio is enabled and Nop otherwise.
func New(cfg config.AudioConfig, logger *log.Logger) Player {
	if !cfg.Enabled {
		return Nop{}
	}
	return NewSpeaker(cfg, logger)
}

// Init opens the audio device if it is not open yet.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initLocked()
}

func (s *Speaker) initLocked() error {
	if s.initialized {
		return nil
	}
	if s.failed {
		return ErrUnavailable
	}
	if err := initSpeaker(sampleRate); err != nil {
		s.failed = true
		s.logger.Warn("audio disabled", "err", err)
		return err
	}
	s.initialized = true
	return nil
}

// PlayEat plays the food pickup chirp.
func (s *Speaker) PlayEat() {
	s.play(EatSound(sampleRate, s.volume))
}

// PlayGameOver plays the game-over phrase.
func (s *Speaker) PlayGameOver() {
	s.play(GameOverSound(sampleRate, s.volume))
}

func (s *Speaker) play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initLocked() != nil {
		return
	}
	playStreamer(st)
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}
