package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DeliveryDedup provides notification idempotency backed by Redis.
// Key format: notified:<comment_id>
type DeliveryDedup struct {
	client *redis.Client
}

// NewDeliveryDedup creates a DeliveryDedup wrapping the given Redis client.
func NewDeliveryDedup(client *redis.Client) *DeliveryDedup {
	return &DeliveryDedup{client: client}
}

// IsDelivered reports whether notifications for this comment already went out.
func (d *DeliveryDedup) IsDelivered(ctx context.Context, commentID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(commentID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// MarkDelivered records that this comment has been notified (expires after dedupTTL).
func (d *DeliveryDedup) MarkDelivered(ctx context.Context, commentID string) error {
	return d.client.Set(ctx, d.key(commentID), "1", dedupTTL).Err()
}

func (d *DeliveryDedup) key(commentID string) string {
	return "notified:" + commentID
}
