package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dsorokina/kabinet/internal/db"
	"github.com/dsorokina/kabinet/internal/domain"
)

const paymentColumns = `id, owner_id, client_id, session_id, amount_cents, currency, payment_date, comment, created_at`

// SQLitePaymentRepo implements PaymentRepo using a SQLite database.
type SQLitePaymentRepo struct {
	db db.DBTX
}

// NewSQLitePaymentRepo creates a new SQLitePaymentRepo.
func NewSQLitePaymentRepo(db db.DBTX) *SQLitePaymentRepo {
	return &SQLitePaymentRepo{db: db}
}

func (r *SQLitePaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (` + paymentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.OwnerID,
		p.ClientID,
		nullableStringToValue(p.SessionID),
		p.AmountCents,
		p.Currency,
		p.Date.Format(dateLayout),
		p.Comment,
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting payment: %w", err)
	}
	return nil
}

func (r *SQLitePaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanPayment(row)
}

func (r *SQLitePaymentRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE owner_id = ? ORDER BY payment_date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()
	return r.scanPayments(rows)
}

func (r *SQLitePaymentRepo) ListByClient(ctx context.Context, clientID string) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE client_id = ? ORDER BY payment_date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing payments by client: %w", err)
	}
	defer rows.Close()
	return r.scanPayments(rows)
}

func (r *SQLitePaymentRepo) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET amount_cents = ?, currency = ?, payment_date = ?, comment = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.AmountCents,
		p.Currency,
		p.Date.Format(dateLayout),
		p.Comment,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("payment %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLitePaymentRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM payments WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting payment: %w", err)
	}
	return nil
}

// scanPayment scans a single payment from a *sql.Row.
func (r *SQLitePaymentRepo) scanPayment(row *sql.Row) (*domain.Payment, error) {
	var p domain.Payment
	var sessionID sql.NullString
	var dateStr, createdAtStr string

	err := row.Scan(
		&p.ID, &p.OwnerID, &p.ClientID, &sessionID, &p.AmountCents, &p.Currency,
		&dateStr, &p.Comment, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("payment: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning payment: %w", err)
	}

	return r.populatePayment(&p, sessionID, dateStr, createdAtStr)
}

// scanPayments scans multiple payments from *sql.Rows.
func (r *SQLitePaymentRepo) scanPayments(rows *sql.Rows) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	for rows.Next() {
		var p domain.Payment
		var sessionID sql.NullString
		var dateStr, createdAtStr string

		err := rows.Scan(
			&p.ID, &p.OwnerID, &p.ClientID, &sessionID, &p.AmountCents, &p.Currency,
			&dateStr, &p.Comment, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning payment row: %w", err)
		}

		payment, parseErr := r.populatePayment(&p, sessionID, dateStr, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payments: %w", err)
	}
	return payments, nil
}

// populatePayment fills in parsed fields on a Payment after scanning raw values.
func (r *SQLitePaymentRepo) populatePayment(p *domain.Payment, sessionID sql.NullString, dateStr, createdAtStr string) (*domain.Payment, error) {
	p.SessionID = parseNullableString(sessionID)

	var parseErr error
	p.Date, parseErr = time.Parse(dateLayout, dateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing payment_date: %w", parseErr)
	}
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	return p, nil
}
