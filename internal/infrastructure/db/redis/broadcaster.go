package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	broadcastChannel = "notifications"
	recentKey        = "notifications:recent"
	recentCap        = 100
)

// Broadcaster publishes notifications over a Redis pub/sub channel and keeps
// a capped list of recent messages for inspection.
type Broadcaster struct {
	client *redis.Client
}

// NewBroadcaster creates a Broadcaster wrapping the given Redis client.
func NewBroadcaster(client *redis.Client) *Broadcaster {
	return &Broadcaster{client: client}
}

// Publish sends the message and records it; returns the subscriber count.
func (b *Broadcaster) Publish(ctx context.Context, message string) (int64, error) {
	receivers, err := b.client.Publish(ctx, broadcastChannel, message).Result()
	if err != nil {
		return 0, fmt.Errorf("publish notification: %w", err)
	}

	pipe := b.client.Pipeline()
	pipe.LPush(ctx, recentKey, message)
	pipe.LTrim(ctx, recentKey, 0, recentCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return receivers, fmt.Errorf("record notification: %w", err)
	}
	return receivers, nil
}

// Recent returns up to limit recently broadcast messages, newest first.
func (b *Broadcaster) Recent(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 || limit > recentCap {
		limit = recentCap
	}
	msgs, err := b.client.LRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("recent notifications: %w", err)
	}
	return msgs, nil
}
