package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker suppresses replayed tracking updates, backed by Redis.
// Key format: acomp:<requisicao_id>:<status>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact tracking update was already applied
// within the TTL window.
func (d *DedupChecker) IsDuplicate(ctx context.Context, requisitionID uint, status string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(requisitionID, status)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this tracking update has been applied (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, requisitionID uint, status string) error {
	return d.client.Set(ctx, d.key(requisitionID, status), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(requisitionID uint, status string) string {
	return fmt.Sprintf("acomp:%d:%s", requisitionID, status)
}
