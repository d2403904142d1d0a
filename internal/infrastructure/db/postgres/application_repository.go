package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

var _ ports.ApplicationRepository = (*ApplicationRepository)(nil)

type ApplicationRepository struct {
	db *Connection
}

func NewApplicationRepository(db *Connection) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, trial_id, player_id, status, created_at, updated_at`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(&a.ID, &a.TrialID, &a.PlayerID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("scan application: %w", err)
	}
	return &a, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	query := `INSERT INTO applications (id, trial_id, player_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + applicationColumns

	created, err := scanApplication(r.db.QueryRow(ctx, query,
		uuid.NewString(), app.TrialID, app.PlayerID, app.Status, app.CreatedAt, app.UpdatedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrApplicationExists
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return created, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return scanApplication(r.db.QueryRow(ctx, query, id))
}

func (r *ApplicationRepository) ListByPlayer(ctx context.Context, playerID string) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE player_id = $1 ORDER BY created_at DESC`
	return r.collect(ctx, query, playerID)
}

func (r *ApplicationRepository) ListByTrialOwner(ctx context.Context, ownerID string) ([]domain.Application, error) {
	query := `SELECT a.id, a.trial_id, a.player_id, a.status, a.created_at, a.updated_at
			  FROM applications a JOIN trials t ON t.id = a.trial_id
			  WHERE t.owner_id = $1 ORDER BY a.created_at DESC`
	return r.collect(ctx, query, ownerID)
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications ORDER BY created_at DESC`
	return r.collect(ctx, query)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	query := `UPDATE applications SET status = $2, updated_at = now()
			  WHERE id = $1 RETURNING ` + applicationColumns
	return scanApplication(r.db.QueryRow(ctx, query, id, status))
}

func (r *ApplicationRepository) collect(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	return apps, nil
}
