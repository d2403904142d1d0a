// Package postgrest implements the credential-store port against a
// REST-over-Postgres endpoint (PostgREST wire conventions). It is selected at
// startup when POSTGREST_URL and POSTGREST_KEY are configured and must
// produce the same projection as the direct-Postgres backend.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

var _ ports.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	baseURL string
	key     string
	client  *http.Client
}

func NewUserRepository(baseURL, key string) *UserRepository {
	return &UserRepository{
		baseURL: baseURL,
		key:     key,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// userRecord mirrors the users table row shape on the wire.
type userRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name"`
	PasswordHash *string   `json:"password_hash"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (rec userRecord) toDomain() domain.User {
	u := domain.User{
		ID:        rec.ID,
		Email:     rec.Email,
		Role:      domain.Role(rec.Role),
		Active:    rec.Active,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.Name != nil {
		u.Name = *rec.Name
	}
	if rec.PasswordHash != nil {
		u.PasswordHash = *rec.PasswordHash
	}
	return u
}

func fromDomain(user *domain.User) userRecord {
	rec := userRecord{
		ID:        user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.Name != "" {
		rec.Name = &user.Name
	}
	if user.PasswordHash != "" {
		rec.PasswordHash = &user.PasswordHash
	}
	return rec
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email=eq."+url.QueryEscape(email))
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, "id=eq."+url.QueryEscape(id))
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	list := ""
	for i, id := range ids {
		if i > 0 {
			list += ","
		}
		list += url.QueryEscape(id)
	}
	return r.findMany(ctx, "id=in.("+list+")")
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	rec := fromDomain(user)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/users", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	r.setHeaders(req)
	req.Header.Set("Prefer", "return=representation")

	records, status, err := r.do(req)
	if err != nil {
		return nil, err
	}
	if status == http.StatusConflict {
		return nil, domain.ErrUserExists
	}
	if status != http.StatusCreated || len(records) == 0 {
		return nil, fmt.Errorf("create user: unexpected status %d", status)
	}

	created := records[0].toDomain()
	return &created, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.findMany(ctx, "order=created_at")
}

func (r *UserRepository) UpdateName(ctx context.Context, id, name string) (*domain.User, error) {
	return r.patch(ctx, id, map[string]any{"name": name})
}

func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	return r.patch(ctx, id, map[string]any{"active": active})
}

func (r *UserRepository) findOne(ctx context.Context, filter string) (*domain.User, error) {
	users, err := r.findMany(ctx, filter+"&limit=1")
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return &users[0], nil
}

func (r *UserRepository) findMany(ctx context.Context, query string) ([]domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/users?"+query, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	r.setHeaders(req)

	records, status, err := r.do(req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("query users: unexpected status %d", status)
	}

	users := make([]domain.User, 0, len(records))
	for _, rec := range records {
		users = append(users, rec.toDomain())
	}
	return users, nil
}

func (r *UserRepository) patch(ctx context.Context, id string, fields map[string]any) (*domain.User, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode patch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		r.baseURL+"/users?id=eq."+url.QueryEscape(id), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	r.setHeaders(req)
	req.Header.Set("Prefer", "return=representation")

	records, status, err := r.do(req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK || len(records) == 0 {
		return nil, domain.ErrUserNotFound
	}

	updated := records[0].toDomain()
	return &updated, nil
}

func (r *UserRepository) setHeaders(req *http.Request) {
	req.Header.Set("apikey", r.key)
	req.Header.Set("Authorization", "Bearer "+r.key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

func (r *UserRepository) do(req *http.Request) ([]userRecord, int, error) {
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("credential store request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	var records []userRecord
	if len(data) > 0 && resp.StatusCode < http.StatusBadRequest {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return records, resp.StatusCode, nil
}
