package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dsorokina/kabinet/internal/db"
	"github.com/dsorokina/kabinet/internal/domain"
)

const clientColumns = `id, owner_id, full_name, birth_date, phone, email, contact_method, comment, created_at, updated_at`

// SQLiteClientRepo implements ClientRepo using a SQLite database.
type SQLiteClientRepo struct {
	db db.DBTX
}

// NewSQLiteClientRepo creates a new SQLiteClientRepo.
func NewSQLiteClientRepo(db db.DBTX) *SQLiteClientRepo {
	return &SQLiteClientRepo{db: db}
}

func (r *SQLiteClientRepo) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (` + clientColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.OwnerID,
		c.FullName,
		nullableTimeToString(c.BirthDate, dateLayout),
		nullableStringToValue(c.Phone),
		nullableStringToValue(c.Email),
		nullableStringToValue(c.ContactMethod),
		c.Comment,
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}
	return nil
}

func (r *SQLiteClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanClient(row)
}

func (r *SQLiteClientRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE owner_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()
	return r.scanClients(rows)
}

func (r *SQLiteClientRepo) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET full_name = ?, birth_date = ?, phone = ?, email = ?,
		contact_method = ?, comment = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.FullName,
		nullableTimeToString(c.BirthDate, dateLayout),
		nullableStringToValue(c.Phone),
		nullableStringToValue(c.Email),
		nullableStringToValue(c.ContactMethod),
		c.Comment,
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("client %s: %w", c.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteClientRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM clients WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}

// scanClient scans a single client from a *sql.Row.
func (r *SQLiteClientRepo) scanClient(row *sql.Row) (*domain.Client, error) {
	var c domain.Client
	var birthDate, phone, email, contactMethod sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&c.ID, &c.OwnerID, &c.FullName, &birthDate, &phone, &email, &contactMethod,
		&c.Comment, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("client: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning client: %w", err)
	}

	return r.populateClient(&c, birthDate, phone, email, contactMethod, createdAtStr, updatedAtStr)
}

// scanClients scans multiple clients from *sql.Rows.
func (r *SQLiteClientRepo) scanClients(rows *sql.Rows) ([]*domain.Client, error) {
	var clients []*domain.Client
	for rows.Next() {
		var c domain.Client
		var birthDate, phone, email, contactMethod sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&c.ID, &c.OwnerID, &c.FullName, &birthDate, &phone, &email, &contactMethod,
			&c.Comment, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning client row: %w", err)
		}

		client, parseErr := r.populateClient(&c, birthDate, phone, email, contactMethod, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}
	return clients, nil
}

// populateClient fills in parsed fields on a Client after scanning raw values.
func (r *SQLiteClientRepo) populateClient(c *domain.Client, birthDate, phone, email, contactMethod sql.NullString, createdAtStr, updatedAtStr string) (*domain.Client, error) {
	c.BirthDate = parseNullableTime(birthDate, dateLayout)
	c.Phone = parseNullableString(phone)
	c.Email = parseNullableString(email)
	c.ContactMethod = parseNullableString(contactMethod)

	var parseErr error
	c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return c, nil
}
