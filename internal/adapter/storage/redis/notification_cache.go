package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const notificationPrefix = "mp:notification:"

// NotificationCache implements ports.NotificationCache. Keys are the
// notification dedup keys ("payment:999"); values carry no meaning.
type NotificationCache struct {
	client goredis.Cmdable
}

// NewNotificationCache creates a Redis-backed notification cache.
func NewNotificationCache(client goredis.Cmdable) *NotificationCache {
	return &NotificationCache{client: client}
}

// Seen reports whether key was remembered and has not expired.
func (c *NotificationCache) Seen(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, notificationPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis notification exists: %w", err)
	}
	return n > 0, nil
}

// Remember stores key for ttl.
func (c *NotificationCache) Remember(ctx context.Context, key string, ttl time.Duration) error {
	if err := c.client.Set(ctx, notificationPrefix+key, time.Now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		return fmt.Errorf("redis notification set: %w", err)
	}
	return nil
}
