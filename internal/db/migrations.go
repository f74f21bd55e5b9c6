package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS tasks (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			title       TEXT NOT NULL CHECK(length(trim(title)) > 0),
			category    TEXT NOT NULL CHECK(category IN ('work', 'personal', 'family', 'health', 'other')),
			start_date  DATE NOT NULL,
			end_date    DATE NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			CHECK(start_date <= end_date)
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_start ON tasks(start_date);
		CREATE INDEX IF NOT EXISTS idx_tasks_end ON tasks(end_date);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tasks table: %w", err)
	}

	return nil
}
