package cache

import (
	"context"
	"time"

	"VideoTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

// Load connects to redis. Every cache user degrades to the database when
// the client is missing, so a failed ping only logs.
func Load() {
	cfg := config.ConfigInfo.Redis
	if cfg.Addr == "" {
		hlog.Warn("redis.addr is empty, caching and rate limiting disabled")
		return
	}
	rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		hlog.Errorf("redis ping %s failed: %v", cfg.Addr, err)
	}
}

// SetClient replaces the shared client, nil disables redis.
func SetClient(c *redis.Client) {
	rdb = c
}

func Client() *redis.Client {
	return rdb
}
