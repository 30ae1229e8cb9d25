package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.WithMessage(err, "dal.CreateComment failed")
	}
	return nil
}

// GetCommentById returns nil without error when the comment does not exist.
func GetCommentById(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comments []*model.Comment
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).Limit(1).Find(&comments).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.GetCommentById failed")
	}
	if len(comments) == 0 {
		return nil, nil
	}
	return comments[0], nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Update("content", content).Error; err != nil {
		return errors.WithMessage(err, "dal.UpdateCommentContent failed")
	}
	return nil
}

func DeleteComment(ctx context.Context, commentId int64) error {
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
		return errors.WithMessage(err, "dal.DeleteComment failed")
	}
	return nil
}

// 获取视频的评论列表, 最新的在前
func GetVideoCommentListByPart(ctx context.Context, videoId int64, offset, limit int) ([]*model.Comment, int64, error) {
	var (
		comments = make([]*model.Comment, 0, limit)
		count    int64
	)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "dal.GetVideoCommentCount failed")
	}
	if count == 0 {
		return comments, 0, nil
	}
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).
		Order("created_at DESC, comment_id DESC").Offset(offset).Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "dal.GetVideoCommentListByPart failed")
	}
	return comments, count, nil
}

func IsVideoExist(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "dal.IsVideoExist failed")
	}
	return count > 0, nil
}
