package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatal("database file should not exist before creating store")
	}

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file should exist after creating store")
	}
}

func TestNewStore_RunsMigrations(t *testing.T) {
	s := newTestStore(t)

	for _, table := range []string{"settings", "action_events"} {
		var name string
		err := s.DB().QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q should exist after migrations: %v", table, err)
		}
	}
}

func TestSettingsRepository(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	t.Run("get missing key", func(t *testing.T) {
		if _, err := settings.Get("pinch_threshold"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("set and get", func(t *testing.T) {
		if err := settings.Set("pinch_threshold", "0.05"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		value, err := settings.Get("pinch_threshold")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if value != "0.05" {
			t.Errorf("value = %q, want %q", value, "0.05")
		}
	})

	t.Run("set replaces existing value", func(t *testing.T) {
		if err := settings.Set("pinch_threshold", "0.06"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		value, _ := settings.Get("pinch_threshold")
		if value != "0.06" {
			t.Errorf("value = %q, want %q", value, "0.06")
		}
	})

	t.Run("all", func(t *testing.T) {
		if err := settings.Set("scroll_speed", "15"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		all, err := settings.All()
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		if len(all) != 2 {
			t.Errorf("len(all) = %d, want 2", len(all))
		}
		if all["scroll_speed"] != "15" {
			t.Errorf("scroll_speed = %q, want %q", all["scroll_speed"], "15")
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := settings.Delete("scroll_speed"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := settings.Get("scroll_speed"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
		}
		// Deleting again is fine
		if err := settings.Delete("scroll_speed"); err != nil {
			t.Errorf("Delete() of missing key error = %v", err)
		}
	})
}

func TestEventRepository_RecordAndRecent(t *testing.T) {
	s := newTestStore(t)
	events := s.Events()

	now := time.Now()
	for i := 0; i < 3; i++ {
		err := events.Record(&ActionEvent{
			ID:        uuid.NewString(),
			Type:      "scroll",
			Amount:    -10,
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	err := events.Record(&ActionEvent{
		ID:        uuid.NewString(),
		Type:      "click",
		CreatedAt: now.Add(10 * time.Second),
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	recent, err := events.Recent(2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len(recent) = %d, want 2", len(recent))
	}
	if recent[0].Type != "click" {
		t.Errorf("newest event type = %q, want %q", recent[0].Type, "click")
	}

	count, err := events.CountByType("scroll")
	if err != nil {
		t.Fatalf("CountByType() error = %v", err)
	}
	if count != 3 {
		t.Errorf("scroll count = %d, want 3", count)
	}
}

func TestEventRepository_Prune(t *testing.T) {
	s := newTestStore(t)
	events := s.Events()

	now := time.Now()
	for i := 0; i < 10; i++ {
		err := events.Record(&ActionEvent{
			ID:        uuid.NewString(),
			Type:      "move",
			X:         i,
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	if err := events.Prune(4); err != nil {
		t.Fatalf("Prune() error = %v", err)
	}

	recent, err := events.Recent(100)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("len(recent) after prune = %d, want 4", len(recent))
	}
	// The newest events survive
	if recent[0].X != 9 {
		t.Errorf("newest surviving event X = %d, want 9", recent[0].X)
	}
}

func TestEventRepository_RejectsUnknownType(t *testing.T) {
	s := newTestStore(t)

	err := s.Events().Record(&ActionEvent{
		ID:   uuid.NewString(),
		Type: "teleport",
	})
	if err == nil {
		t.Error("expected CHECK constraint to reject unknown action type")
	}
}
