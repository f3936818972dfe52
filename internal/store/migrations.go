package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Settings table - persisted tunable overrides as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Action events table - history of emitted control actions
		`CREATE TABLE IF NOT EXISTS action_events (
			id TEXT PRIMARY KEY,
			action_type TEXT NOT NULL CHECK(action_type IN ('move', 'click', 'scroll', 'swipe_back')),
			x INTEGER NOT NULL DEFAULT 0,
			y INTEGER NOT NULL DEFAULT 0,
			amount INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Index for history queries, newest first
		`CREATE INDEX IF NOT EXISTS idx_action_events_created_at ON action_events(created_at DESC)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
