package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dsorokina/kabinet/internal/db"
	"github.com/dsorokina/kabinet/internal/domain"
)

const noteColumns = `id, owner_id, client_id, content, created_at, updated_at`

// SQLiteNoteRepo implements NoteRepo using a SQLite database.
type SQLiteNoteRepo struct {
	db db.DBTX
}

// NewSQLiteNoteRepo creates a new SQLiteNoteRepo.
func NewSQLiteNoteRepo(db db.DBTX) *SQLiteNoteRepo {
	return &SQLiteNoteRepo{db: db}
}

func (r *SQLiteNoteRepo) Create(ctx context.Context, n *domain.Note) error {
	query := `INSERT INTO notes (` + noteColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.OwnerID,
		n.ClientID,
		n.Content,
		n.CreatedAt.Format(time.RFC3339),
		n.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanNote(row)
}

func (r *SQLiteNoteRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE owner_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()
	return r.scanNotes(rows)
}

func (r *SQLiteNoteRepo) ListByClient(ctx context.Context, clientID string) ([]*domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE client_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing notes by client: %w", err)
	}
	defer rows.Close()
	return r.scanNotes(rows)
}

func (r *SQLiteNoteRepo) Update(ctx context.Context, n *domain.Note) error {
	query := `UPDATE notes SET content = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		n.Content,
		n.UpdatedAt.Format(time.RFC3339),
		n.ID,
	)
	if err != nil {
		return fmt.Errorf("updating note: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("note %s: %w", n.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteNoteRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM notes WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}

// scanNote scans a single note from a *sql.Row.
func (r *SQLiteNoteRepo) scanNote(row *sql.Row) (*domain.Note, error) {
	var n domain.Note
	var createdAtStr, updatedAtStr string

	err := row.Scan(&n.ID, &n.OwnerID, &n.ClientID, &n.Content, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("note: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning note: %w", err)
	}

	return r.populateNote(&n, createdAtStr, updatedAtStr)
}

// scanNotes scans multiple notes from *sql.Rows.
func (r *SQLiteNoteRepo) scanNotes(rows *sql.Rows) ([]*domain.Note, error) {
	var notes []*domain.Note
	for rows.Next() {
		var n domain.Note
		var createdAtStr, updatedAtStr string

		if err := rows.Scan(&n.ID, &n.OwnerID, &n.ClientID, &n.Content, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}

		note, parseErr := r.populateNote(&n, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}

// populateNote fills in parsed fields on a Note after scanning raw strings.
func (r *SQLiteNoteRepo) populateNote(n *domain.Note, createdAtStr, updatedAtStr string) (*domain.Note, error) {
	var parseErr error
	n.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	n.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return n, nil
}
