package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dsorokina/kabinet/internal/db"
	"github.com/dsorokina/kabinet/internal/domain"
)

const sessionColumns = `id, owner_id, client_id, session_date, start_time, duration_min, status, session_type, comment, created_at, updated_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.OwnerID,
		s.ClientID,
		s.Date.Format(dateLayout),
		s.StartTime,
		s.DurationMin,
		string(s.Status),
		s.Type,
		s.Comment,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE owner_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListByDay(ctx context.Context, ownerID string, day time.Time) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE owner_id = ? AND session_date = ? ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, ownerID, day.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing sessions by day: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListByClient(ctx context.Context, clientID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE client_id = ? ORDER BY session_date DESC, start_time DESC`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by client: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE sessions SET client_id = ?, session_date = ?, start_time = ?, duration_min = ?,
		status = ?, session_type = ?, comment = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.ClientID,
		s.Date.Format(dateLayout),
		s.StartTime,
		s.DurationMin,
		string(s.Status),
		s.Type,
		s.Comment,
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var status, dateStr, createdAtStr, updatedAtStr string

	err := row.Scan(
		&s.ID, &s.OwnerID, &s.ClientID, &dateStr, &s.StartTime, &s.DurationMin,
		&status, &s.Type, &s.Comment, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	return r.populateSession(&s, status, dateStr, createdAtStr, updatedAtStr)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var status, dateStr, createdAtStr, updatedAtStr string

		err := rows.Scan(
			&s.ID, &s.OwnerID, &s.ClientID, &dateStr, &s.StartTime, &s.DurationMin,
			&status, &s.Type, &s.Comment, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, status, dateStr, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a Session after scanning raw strings.
func (r *SQLiteSessionRepo) populateSession(s *domain.Session, status, dateStr, createdAtStr, updatedAtStr string) (*domain.Session, error) {
	s.Status = domain.SessionStatus(status)

	var parseErr error
	s.Date, parseErr = time.Parse(dateLayout, dateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing session_date: %w", parseErr)
	}
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return s, nil
}
