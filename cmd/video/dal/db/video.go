package db

import (
	"context"
	"strings"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sortColumns maps the public sort keys to columns; anything else sorts by
// creation time.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"views":     "view_count",
	"title":     "title",
	"duration":  "duration",
}

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

type VideoFilter struct {
	Query         string
	OwnerId       int64
	OnlyPublished bool
	SortBy        string
	SortType      string
}

func (f *VideoFilter) orderClause() string {
	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	dir := " DESC"
	if f.SortType == "asc" {
		dir = " ASC"
	}
	// video_id 作为第二排序键, 保证分页稳定
	return column + dir + ", video_id" + dir
}

func (f *VideoFilter) apply(tx *gorm.DB) *gorm.DB {
	if f.Query != "" {
		tx = tx.Where("LOWER(title) LIKE LOWER(?) ESCAPE '!'", "%"+likeEscaper.Replace(f.Query)+"%")
	}
	if f.OwnerId > 0 {
		tx = tx.Where("user_id = ?", f.OwnerId)
	}
	if f.OnlyPublished {
		tx = tx.Where("is_published = ?", true)
	}
	return tx
}

func CreateVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.WithMessage(err, "dal.CreateVideo failed")
	}
	return nil
}

// GetVideoById returns nil without error when the video does not exist.
func GetVideoById(ctx context.Context, videoId int64) (*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Limit(1).Find(&videos).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.GetVideoById failed")
	}
	if len(videos) == 0 {
		return nil, nil
	}
	return videos[0], nil
}

// ListVideos returns one page of the filtered videos and the filtered total.
func ListVideos(ctx context.Context, filter *VideoFilter, offset, limit int) ([]*model.Video, int64, error) {
	var (
		videos = make([]*model.Video, 0, limit)
		count  int64
	)
	if err := filter.apply(DB.WithContext(ctx).Model(&model.Video{})).Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "dal.ListVideos count failed")
	}
	if count == 0 {
		return videos, 0, nil
	}
	if err := filter.apply(DB.WithContext(ctx).Model(&model.Video{})).
		Order(filter.orderClause()).Offset(offset).Limit(limit).
		Find(&videos).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "dal.ListVideos failed")
	}
	return videos, count, nil
}

func UpdateVideo(ctx context.Context, videoId int64, fields map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Updates(fields).Error; err != nil {
		return errors.WithMessage(err, "dal.UpdateVideo failed")
	}
	return nil
}

func SetPublished(ctx context.Context, videoId int64, published bool) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Update("is_published", published).Error; err != nil {
		return errors.WithMessage(err, "dal.SetPublished failed")
	}
	return nil
}

func IncrViewCount(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error; err != nil {
		return errors.WithMessage(err, "dal.IncrViewCount failed")
	}
	return nil
}

func DeleteVideo(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{}).Error; err != nil {
		return errors.WithMessage(err, "dal.DeleteVideo failed")
	}
	return nil
}
