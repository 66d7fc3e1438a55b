package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id             TEXT PRIMARY KEY,
		owner_id       TEXT NOT NULL,
		full_name      TEXT NOT NULL,
		birth_date     TEXT,
		phone          TEXT,
		email          TEXT,
		contact_method TEXT,
		comment        TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_clients_owner ON clients(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_clients_created ON clients(created_at)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id           TEXT PRIMARY KEY,
		owner_id     TEXT NOT NULL,
		client_id    TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		session_date TEXT NOT NULL,
		start_time   TEXT NOT NULL,
		duration_min INTEGER NOT NULL DEFAULT 50,
		status       TEXT NOT NULL DEFAULT 'scheduled'
		             CHECK(status IN ('scheduled','completed','canceled')),
		session_type TEXT NOT NULL DEFAULT '',
		comment      TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_owner ON sessions(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_client ON sessions(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(session_date)`,

	`CREATE TABLE IF NOT EXISTS payments (
		id           TEXT PRIMARY KEY,
		owner_id     TEXT NOT NULL,
		client_id    TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		session_id   TEXT REFERENCES sessions(id) ON DELETE SET NULL,
		amount_cents INTEGER NOT NULL CHECK(amount_cents >= 0),
		currency     TEXT NOT NULL,
		payment_date TEXT NOT NULL,
		comment      TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_payments_owner ON payments(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_client ON payments(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_session ON payments(session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_date ON payments(payment_date)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id         TEXT PRIMARY KEY,
		owner_id   TEXT NOT NULL,
		client_id  TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notes_owner ON notes(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_client ON notes(client_id)`,
}
