package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// LoadHighScore returns the best score stored under key, or 0 when the key
// has never been written.
func (s *Store) LoadHighScore(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_scores WHERE key = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load high score %q: %w", key, err)
	}
	return score, nil
}

// SaveHighScore stores score under key. The stored value never decreases:
// writing a lower score than the current one is a no-op.
func (s *Store) SaveHighScore(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (key, score) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		     score = MAX(score, excluded.score),
		     updated_at = CURRENT_TIMESTAMP`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score %q: %w", key, err)
	}
	return nil
}

// ClearHighScore removes the value stored under key.
func (s *Store) ClearHighScore(key string) error {
	if _, err := s.db.Exec("DELETE FROM high_scores WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot clear high score %q: %w", key, err)
	}
	return nil
}

// HighScoreStore binds a Store to one key and swallows failures the way the
// game expects: reads fall back to 0, writes are logged and dropped.
// A nil Store behaves as an empty, write-discarding store.
type HighScoreStore struct {
	store  *Store
	key    string
	logger *log.Logger
}

// NewHighScoreStore creates a keyed high-score accessor. logger may be nil.
func NewHighScoreStore(store *Store, key string, logger *log.Logger) *HighScoreStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScoreStore{store: store, key: key, logger: logger}
}

// LoadHighScore returns the persisted best score or 0.
func (h *HighScoreStore) LoadHighScore() int {
	if h == nil || h.store == nil {
		return 0
	}
	score, err := h.store.LoadHighScore(h.key)
	if err != nil {
		h.logger.Warn("high score unavailable", "key", h.key, "err", err)
		return 0
	}
	return score
}

// SaveHighScore persists score if it beats the stored value.
func (h *HighScoreStore) SaveHighScore(score int) {
	if h == nil || h.store == nil {
		return
	}
	if err := h.store.SaveHighScore(h.key, score); err != nil {
		h.logger.Error("high score not saved", "key", h.key, "score", score, "err", err)
	}
}

// RecordScore appends a finished run to the score history. Zero scores are
// not worth a row.
func (h *HighScoreStore) RecordScore(gameID string, score int) {
	if h == nil || h.store == nil || score <= 0 {
		return
	}
	if _, err := h.store.SaveScore(gameID, score); err != nil {
		h.logger.Error("score not recorded", "game", gameID, "score", score, "err", err)
	}
}
