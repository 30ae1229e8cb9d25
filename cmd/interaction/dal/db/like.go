package db

import (
	"context"
	"fmt"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
	"github.com/pkg/errors"
)

var targetTables = map[string]struct {
	model  interface{}
	column string
}{
	constants.LikeTargetVideo:   {&model.Video{}, "video_id"},
	constants.LikeTargetComment: {&model.Comment{}, "comment_id"},
	constants.LikeTargetTweet:   {&model.Tweet{}, "tweet_id"},
}

// IsTargetExist checks that the liked video, comment or tweet is stored.
func IsTargetExist(ctx context.Context, targetType string, targetId int64) (bool, error) {
	target, ok := targetTables[targetType]
	if !ok {
		return false, fmt.Errorf("unknown like target %q", targetType)
	}
	var count int64
	if err := DB.WithContext(ctx).Model(target.model).Where(target.column+" = ?", targetId).Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "dal.IsTargetExist failed")
	}
	return count > 0, nil
}

// CreateLike surfaces gorm.ErrDuplicatedKey when the (user, target) pair
// already exists.
func CreateLike(ctx context.Context, like *model.Like) error {
	if err := DB.WithContext(ctx).Create(like).Error; err != nil {
		return errors.WithMessage(err, "dal.CreateLike failed")
	}
	return nil
}

// DeleteLike reports whether a like row was removed.
func DeleteLike(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	res := DB.WithContext(ctx).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userId, targetType, targetId).
		Delete(&model.Like{})
	if res.Error != nil {
		return false, errors.WithMessage(res.Error, "dal.DeleteLike failed")
	}
	return res.RowsAffected > 0, nil
}

func IsLiked(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userId, targetType, targetId).
		Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "dal.IsLiked failed")
	}
	return count > 0, nil
}

// GetLikedVideos lists the videos userId liked, most recent like first,
// each with the total number of likes the video has.
func GetLikedVideos(ctx context.Context, userId int64) ([]*model.LikedVideo, error) {
	list := make([]*model.LikedVideo, 0)
	if err := DB.WithContext(ctx).Table("likes AS l").
		Select(`v.video_id AS video_id, v.title AS title, v.description AS description,
			(SELECT COUNT(*) FROM likes AS c WHERE c.target_type = l.target_type AND c.target_id = l.target_id) AS total_likes`).
		Joins("JOIN videos AS v ON v.video_id = l.target_id").
		Where("l.user_id = ? AND l.target_type = ?", userId, constants.LikeTargetVideo).
		Order("l.created_at DESC, l.like_id DESC").
		Scan(&list).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.GetLikedVideos failed")
	}
	return list, nil
}

// GetVideoOwnerId returns 0 when the video is gone.
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
