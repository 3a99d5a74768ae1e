package storage

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestHighScoreMonotonic(t *testing.T) {
	store := openTestStore(t)

	got, err := store.LoadHighScore("highScore")
	if err != nil || got != 0 {
		t.Fatalf("LoadHighScore() on missing key = (%d, %v), expected 0", got, err)
	}

	steps := []struct {
		save int
		want int
	}{
		{3, 3},
		{8, 8},
		{5, 8}, // lower value never replaces a higher one
		{8, 8},
		{11, 11},
	}
	for _, s := range steps {
		if err := store.SaveHighScore("highScore", s.save); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", s.save, err)
		}
		got, err := store.LoadHighScore("highScore")
		if err != nil || got != s.want {
			t.Errorf("after saving %d: LoadHighScore() = (%d, %v), expected %d", s.save, got, err, s.want)
		}
	}
}

func TestHighScoreKeysIndependent(t *testing.T) {
	store := openTestStore(t)

	store.SaveHighScore("a", 5)
	store.SaveHighScore("b", 9)

	if got, _ := store.LoadHighScore("a"); got != 5 {
		t.Errorf("key a = %d, expected 5", got)
	}

	if err := store.ClearHighScore("b"); err != nil {
		t.Fatalf("ClearHighScore() failed: %v", err)
	}
	if got, _ := store.LoadHighScore("b"); got != 0 {
		t.Errorf("cleared key = %d, expected 0", got)
	}
	if got, _ := store.LoadHighScore("a"); got != 5 {
		t.Error("clearing one key affected another")
	}
}

func TestHighScoreStore(t *testing.T) {
	store := openTestStore(t)
	hs := NewHighScoreStore(store, "highScore", nil)

	if hs.LoadHighScore() != 0 {
		t.Error("fresh store should load 0")
	}
	hs.SaveHighScore(6)
	hs.SaveHighScore(2)
	if got := hs.LoadHighScore(); got != 6 {
		t.Errorf("LoadHighScore() = %d, expected 6", got)
	}

	hs.RecordScore("snake", 0)
	hs.RecordScore("snake", 6)
	if scores, _ := store.AllScores("snake"); len(scores) != 1 {
		t.Errorf("expected only the non-zero run to be recorded, got %d", len(scores))
	}
}

func TestHighScoreStoreWithoutDatabase(t *testing.T) {
	hs := NewHighScoreStore(nil, "highScore", nil)
	hs.SaveHighScore(10)
	hs.RecordScore("snake", 10)
	if hs.LoadHighScore() != 0 {
		t.Error("store without database should load 0")
	}

	var nilStore *HighScoreStore
	if nilStore.LoadHighScore() != 0 {
		t.Error("nil HighScoreStore should load 0")
	}
}

func TestHighScoreStoreLogsFailures(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "closed.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	var buf bytes.Buffer
	hs := NewHighScoreStore(store, "highScore", log.New(&buf))

	if got := hs.LoadHighScore(); got != 0 {
		t.Errorf("LoadHighScore() on closed db = %d, expected 0", got)
	}
	hs.SaveHighScore(4)

	out := buf.String()
	if !strings.Contains(out, "high score unavailable") || !strings.Contains(out, "high score not saved") {
		t.Errorf("expected both failures to be logged, got %q", out)
	}
}
