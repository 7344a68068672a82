// Package cache provides the optional Redis collaborators.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// submitKeyPrefix is the prefix for all submit-guard keys.
// Format: submit_guard:{fingerprint}
const submitKeyPrefix = "submit_guard:"

// SubmitGuard provides a Redis-based duplicate pre-check in front of the
// transactional dedup. It is advisory only: when Redis is down or disabled
// the coordinator proceeds straight to the transaction.
type SubmitGuard struct {
	client *redis.Client
}

// NewSubmitGuard creates a new SubmitGuard instance
func NewSubmitGuard(client *redis.Client) *SubmitGuard {
	return &SubmitGuard{client: client}
}

func (g *SubmitGuard) buildKey(fingerprint string) string {
	return submitKeyPrefix + fingerprint
}

// SeenRecently reports whether the fingerprint was marked within its TTL.
func (g *SubmitGuard) SeenRecently(ctx context.Context, fingerprint string) (bool, error) {
	exists, err := g.client.Exists(ctx, g.buildKey(fingerprint)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check submit guard key: %w", err)
	}
	return exists > 0, nil
}

// MarkSubmitted records the fingerprint after a successful commit. The TTL
// matches the transactional dedup window so both checks expire together.
func (g *SubmitGuard) MarkSubmitted(ctx context.Context, fingerprint string, ttl time.Duration) error {
	if err := g.client.Set(ctx, g.buildKey(fingerprint), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark submit guard key: %w", err)
	}
	return nil
}
