package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter counts calls per key in fixed windows.
type FixedWindowLimiter struct {
	client *redis.Client
	window time.Duration
	max    int64
	prefix string
}

func NewFixedWindowLimiter(client *redis.Client, prefix string, window time.Duration, max int64) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: client, window: window, max: max, prefix: prefix}
}

// Allow reports whether one more call fits the current window. The window
// starts with the first call of a key. Without a redis client every call is
// allowed.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l == nil || l.client == nil {
		return true, nil
	}
	windowKey := fmt.Sprintf("%s:%s", l.prefix, key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, windowKey)
	ttl := pipe.TTL(ctx, windowKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, err
	}
	// -1: 计数键没有过期时间, 新窗口或上次设置失败
	if ttl.Val() < 0 {
		if err := l.client.Expire(ctx, windowKey, l.window).Err(); err != nil {
			return incr.Val() <= l.max, err
		}
	}
	return incr.Val() <= l.max, nil
}
