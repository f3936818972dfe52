package store

import (
	"database/sql"
	"time"
)

// ActionEvent represents one emitted control action stored in the history.
type ActionEvent struct {
	ID        string
	Type      string // "move", "click", "scroll", "swipe_back"
	X         int
	Y         int
	Amount    int
	CreatedAt time.Time
}

// EventRepository provides access to the emitted-action history.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Record inserts an action event into the history.
func (r *EventRepository) Record(e *ActionEvent) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO action_events (id, action_type, x, y, amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Type, e.X, e.Y, e.Amount, e.CreatedAt,
	)
	return err
}

// Recent retrieves the most recent events, newest first.
func (r *EventRepository) Recent(limit int) ([]*ActionEvent, error) {
	rows, err := r.db.Query(
		`SELECT id, action_type, x, y, amount, created_at
		 FROM action_events ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*ActionEvent
	for rows.Next() {
		e := &ActionEvent{}
		if err := rows.Scan(&e.ID, &e.Type, &e.X, &e.Y, &e.Amount, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// CountByType returns the number of stored events for one action type.
func (r *EventRepository) CountByType(actionType string) (int, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM action_events WHERE action_type = ?`,
		actionType,
	).Scan(&count)
	return count, err
}

// Prune deletes all but the newest keep events. The history is a debugging
// aid, not an audit log; it is trimmed on startup.
func (r *EventRepository) Prune(keep int) error {
	_, err := r.db.Exec(
		`DELETE FROM action_events WHERE id NOT IN (
			SELECT id FROM action_events ORDER BY created_at DESC, id LIMIT ?
		)`,
		keep,
	)
	return err
}
