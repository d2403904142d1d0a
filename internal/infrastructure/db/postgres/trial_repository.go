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

var _ ports.TrialRepository = (*TrialRepository)(nil)

type TrialRepository struct {
	db *Connection
}

func NewTrialRepository(db *Connection) *TrialRepository {
	return &TrialRepository{db: db}
}

const trialColumns = `id, kind, title, location, date, fee_cents, owner_id, open, created_at`

func scanTrial(row pgx.Row) (*domain.Trial, error) {
	var t domain.Trial
	err := row.Scan(&t.ID, &t.Kind, &t.Title, &t.Location, &t.Date, &t.FeeCents, &t.OwnerID, &t.Open, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTrialNotFound
		}
		return nil, fmt.Errorf("scan trial: %w", err)
	}
	return &t, nil
}

func (r *TrialRepository) Create(ctx context.Context, trial *domain.Trial) (*domain.Trial, error) {
	query := `INSERT INTO trials (id, kind, title, location, date, fee_cents, owner_id, open, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + trialColumns

	created, err := scanTrial(r.db.QueryRow(ctx, query,
		uuid.NewString(), trial.Kind, trial.Title, trial.Location, trial.Date,
		trial.FeeCents, trial.OwnerID, trial.Open, trial.CreatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("insert trial: %w", err)
	}
	return created, nil
}

func (r *TrialRepository) FindByID(ctx context.Context, id string) (*domain.Trial, error) {
	query := `SELECT ` + trialColumns + ` FROM trials WHERE id = $1`
	return scanTrial(r.db.QueryRow(ctx, query, id))
}

func (r *TrialRepository) List(ctx context.Context, kind domain.TrialKind) ([]domain.Trial, error) {
	query := `SELECT ` + trialColumns + ` FROM trials WHERE ($1 = '' OR kind = $1) ORDER BY date`
	rows, err := r.db.Query(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list trials: %w", err)
	}
	defer rows.Close()

	var trials []domain.Trial
	for rows.Next() {
		t, err := scanTrial(rows)
		if err != nil {
			return nil, err
		}
		trials = append(trials, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trials: %w", err)
	}
	return trials, nil
}

func (r *TrialRepository) SetOpen(ctx context.Context, id string, open bool) (*domain.Trial, error) {
	query := `UPDATE trials SET open = $2 WHERE id = $1 RETURNING ` + trialColumns
	return scanTrial(r.db.QueryRow(ctx, query, id, open))
}
