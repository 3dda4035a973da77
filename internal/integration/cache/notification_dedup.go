// Package cache provides Redis-backed helpers.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

const keyPrefix = "ledger:"

// notificationDedup implements adapter.NotificationDeduplicator with SETNX.
type notificationDedup struct {
	client *redis.Client
}

// NewNotificationDeduplicator creates a deduplicator on top of a Redis client.
func NewNotificationDeduplicator(client *redis.Client) adapter.NotificationDeduplicator {
	return &notificationDedup{client: client}
}

// MarkSent stores key for ttl and reports whether it was absent before.
func (d *notificationDedup) MarkSent(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	created, err := d.client.SetNX(ctx, keyPrefix+key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record notification %s: %w", key, err)
	}
	return created, nil
}

// Release deletes key. Deleting a missing key is not an error.
func (d *notificationDedup) Release(ctx context.Context, key string) error {
	if err := d.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release notification %s: %w", key, err)
	}
	return nil
}

// Ping reports whether Redis answers.
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}
