package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
	"github.com/pkg/errors"
)

// ChannelStats are the aggregates shown on a creator dashboard.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalSubscribers int64 `json:"totalSubscribers"`
}

// GetChannelStats runs the four aggregates independently; each is zero when
// nothing matches.
func GetChannelStats(ctx context.Context, userId int64) (*ChannelStats, error) {
	stats := &ChannelStats{}
	var videoAgg struct {
		Total int64
		Views int64
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Select("COUNT(*) AS total, COALESCE(SUM(view_count), 0) AS views").
		Where("user_id = ?", userId).Scan(&videoAgg).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.GetChannelStats videos failed")
	}
	stats.TotalVideos, stats.TotalViews = videoAgg.Total, videoAgg.Views

	// 频道收到的点赞: 指向该频道视频的点赞
	if err := DB.WithContext(ctx).Table("likes AS l").
		Joins("JOIN videos AS v ON v.video_id = l.target_id").
		Where("l.target_type = ? AND v.user_id = ?", constants.LikeTargetVideo, userId).
		Count(&stats.TotalLikes).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.GetChannelStats likes failed")
	}

	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", userId).Count(&stats.TotalSubscribers).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.GetChannelStats subscribers failed")
	}
	return stats, nil
}

// GetChannelVideos pages through every video of userId, drafts included.
func GetChannelVideos(ctx context.Context, userId int64, offset, limit int) ([]*model.Video, int64, error) {
	var (
		videos = make([]*model.Video, 0, limit)
		count  int64
	)
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "dal.GetChannelVideos count failed")
	}
	if count == 0 {
		return videos, 0, nil
	}
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).
		Order("created_at DESC, video_id DESC").Offset(offset).Limit(limit).
		Find(&videos).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "dal.GetChannelVideos failed")
	}
	return videos, count, nil
}

// GetVideoOwnerId returns 0 when the video no longer exists.
func GetVideoOwnerId(ctx context.Context, videoId int64) (int64, error) {
	var owners []int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Limit(1).Pluck("user_id", &owners).Error; err != nil {
		return 0, errors.WithMessage(err, "dal.GetVideoOwnerId failed")
	}
	if len(owners) == 0 {
		return 0, nil
	}
	return owners[0], nil
}
