package service

import (
	"context"
	"time"

	"VideoTube.com/cmd/dashboard/dal/db"
	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type DashboardService struct {
	ctx   context.Context
	cache *cache.StatsCacheManager
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{
		ctx:   ctx,
		cache: cache.NewStatsCacheManager(cache.Client(), constants.StatsCacheTTL*time.Second),
	}
}

type ChannelVideosResponse struct {
	TotalVideos int64          `json:"totalVideos"`
	CurrentPage int64          `json:"currentPage"`
	TotalPages  int64          `json:"totalPages"`
	Videos      []*model.Video `json:"videos"`
}

func (s *DashboardService) GetChannelStats(userId int64) (*db.ChannelStats, error) {
	stats := &db.ChannelStats{}
	if s.cache.GetChannelStats(s.ctx, userId, stats) {
		return stats, nil
	}
	stats, err := db.GetChannelStats(s.ctx, userId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "channel stats of %d failed: %v", userId, err)
		return nil, errno.ServiceErr
	}
	s.cache.SetChannelStats(s.ctx, userId, stats)
	return stats, nil
}

func (s *DashboardService) GetChannelVideos(userId int64, page utils.Page) (*ChannelVideosResponse, error) {
	videos, total, err := db.GetChannelVideos(s.ctx, userId, page.Offset(), int(page.Limit))
	if err != nil {
		hlog.CtxErrorf(s.ctx, "channel videos of %d failed: %v", userId, err)
		return nil, errno.ServiceErr
	}
	return &ChannelVideosResponse{
		TotalVideos: total,
		CurrentPage: page.Page,
		TotalPages:  page.TotalPages(total),
		Videos:      videos,
	}, nil
}
