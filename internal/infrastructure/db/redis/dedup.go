package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker suppresses duplicate notifications backed by Redis.
// Key format: notify:<recipient_id>:<kind>:<reference>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact notification has already been delivered.
func (d *DedupChecker) IsDuplicate(ctx context.Context, recipientID, kind, reference string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(recipientID, kind, reference)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this notification has been delivered (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, recipientID, kind, reference string) error {
	return d.client.Set(ctx, d.key(recipientID, kind, reference), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(recipientID, kind, reference string) string {
	return fmt.Sprintf("notify:%s:%s:%s", recipientID, kind, reference)
}
