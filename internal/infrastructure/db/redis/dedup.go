package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for audit events backed by Redis.
// Key format: audit:<entity>:<subject_id>:<status>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact audit event has already been stored.
func (d *DedupChecker) IsDuplicate(ctx context.Context, entity, subjectID, status string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(entity, subjectID, status, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("audit dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been stored (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, entity, subjectID, status string, ts time.Time) error {
	return d.client.Set(ctx, d.key(entity, subjectID, status, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(entity, subjectID, status string, ts time.Time) string {
	return fmt.Sprintf("audit:%s:%s:%s:%d", entity, subjectID, status, ts.Unix())
}
