package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

var _ ports.PaymentRepository = (*PaymentRepository)(nil)

type PaymentRepository struct {
	db *Connection
}

func NewPaymentRepository(db *Connection) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, payer_id, application_id, amount_cents, currency, status, created_at, updated_at`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.PayerID, &p.ApplicationID, &p.AmountCents, &p.Currency, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return &p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	query := `INSERT INTO payments (id, payer_id, application_id, amount_cents, currency, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + paymentColumns

	created, err := scanPayment(r.db.QueryRow(ctx, query,
		uuid.NewString(), p.PayerID, p.ApplicationID, p.AmountCents, p.Currency,
		p.Status, p.CreatedAt, p.UpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return created, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return scanPayment(r.db.QueryRow(ctx, query, id))
}

func (r *PaymentRepository) ListByPayer(ctx context.Context, payerID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payer_id = $1 ORDER BY created_at DESC`
	return r.collect(ctx, query, payerID)
}

func (r *PaymentRepository) ListAll(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at DESC`
	return r.collect(ctx, query)
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error) {
	query := `UPDATE payments SET status = $2, updated_at = now()
			  WHERE id = $1 RETURNING ` + paymentColumns
	return scanPayment(r.db.QueryRow(ctx, query, id, status))
}

func (r *PaymentRepository) collect(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}
