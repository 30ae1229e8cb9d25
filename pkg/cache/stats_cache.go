package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

// 缓存键名常量
const (
	ChannelStatsKey = "channel:stats:%d"
)

// StatsCacheManager caches dashboard aggregates for a short period.
type StatsCacheManager struct {
	client *redis.Client
	expire time.Duration
}

func NewStatsCacheManager(client *redis.Client, expire time.Duration) *StatsCacheManager {
	return &StatsCacheManager{client: client, expire: expire}
}

// GetChannelStats decodes the cached stats of userId into dst and reports
// whether there was a hit. Errors count as a miss.
func (m *StatsCacheManager) GetChannelStats(ctx context.Context, userId int64, dst interface{}) bool {
	if m == nil || m.client == nil {
		return false
	}
	data, err := m.client.Get(ctx, fmt.Sprintf(ChannelStatsKey, userId)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			hlog.CtxWarnf(ctx, "get channel stats cache failed: %v", err)
		}
		return false
	}
	if err = json.Unmarshal(data, dst); err != nil {
		hlog.CtxWarnf(ctx, "decode channel stats cache failed: %v", err)
		return false
	}
	return true
}

func (m *StatsCacheManager) SetChannelStats(ctx context.Context, userId int64, stats interface{}) {
	if m == nil || m.client == nil {
		return
	}
	data, err := json.Marshal(stats)
	if err != nil {
		hlog.CtxWarnf(ctx, "encode channel stats failed: %v", err)
		return
	}
	if err = m.client.Set(ctx, fmt.Sprintf(ChannelStatsKey, userId), data, m.expire).Err(); err != nil {
		hlog.CtxWarnf(ctx, "set channel stats cache failed: %v", err)
	}
}

func (m *StatsCacheManager) InvalidateChannelStats(ctx context.Context, userId int64) {
	if m == nil || m.client == nil {
		return
	}
	if err := m.client.Del(ctx, fmt.Sprintf(ChannelStatsKey, userId)).Err(); err != nil {
		hlog.CtxWarnf(ctx, "invalidate channel stats cache failed: %v", err)
	}
}
