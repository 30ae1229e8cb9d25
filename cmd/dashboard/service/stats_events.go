package service

import (
	"context"
	"time"

	"VideoTube.com/cmd/dashboard/dal/db"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// StatsInvalidator drops cached dashboard stats of the channel affected by
// a like or subscription event.
type StatsInvalidator struct {
	cache *cache.StatsCacheManager
}

func NewStatsInvalidator() *StatsInvalidator {
	return &StatsInvalidator{
		cache: cache.NewStatsCacheManager(cache.Client(), constants.StatsCacheTTL*time.Second),
	}
}

func (h *StatsInvalidator) HandleLikeEvent(ctx context.Context, event *mq.LikeEvent) error {
	if event.TargetType != constants.LikeTargetVideo {
		return nil
	}
	ownerId, err := db.GetVideoOwnerId(ctx, event.TargetID)
	if err != nil {
		return err
	}
	if ownerId == 0 {
		hlog.CtxDebugf(ctx, "like event %s points at deleted video %d", event.EventID, event.TargetID)
		return nil
	}
	h.cache.InvalidateChannelStats(ctx, ownerId)
	return nil
}

func (h *StatsInvalidator) HandleSubscriptionEvent(ctx context.Context, event *mq.SubscriptionEvent) error {
	h.cache.InvalidateChannelStats(ctx, event.ChannelID)
	return nil
}
