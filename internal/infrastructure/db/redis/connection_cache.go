package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/scoutlink/player-platform/internal/core/domain"
)

const connectionTTL = 5 * time.Minute

// ConnectionCache stores derived connection lists keyed by user id.
// Key format: connections:<user_id>
type ConnectionCache struct {
	client *redis.Client
}

// NewConnectionCache creates a ConnectionCache wrapping the given Redis client.
func NewConnectionCache(client *redis.Client) *ConnectionCache {
	return &ConnectionCache{client: client}
}

// Get returns the cached list and whether a cache entry was present.
func (c *ConnectionCache) Get(ctx context.Context, userID string) ([]domain.Connection, bool, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("connection cache get: %w", err)
	}

	var conns []domain.Connection
	if err := json.Unmarshal(data, &conns); err != nil {
		return nil, false, fmt.Errorf("connection cache decode: %w", err)
	}
	return conns, true, nil
}

// Set stores the list with a TTL so role/name changes eventually surface.
func (c *ConnectionCache) Set(ctx context.Context, userID string, conns []domain.Connection) error {
	data, err := json.Marshal(conns)
	if err != nil {
		return fmt.Errorf("connection cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(userID), data, connectionTTL).Err()
}

// Invalidate drops the cached list after a new message.
func (c *ConnectionCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *ConnectionCache) key(userID string) string {
	return "connections:" + userID
}
