package model

import "time"

type Video struct {
	VideoId         int64     `gorm:"column:video_id;primaryKey;autoIncrement:false" json:"videoId,string"`
	UserId          int64     `gorm:"column:user_id;not null;index" json:"ownerId,string"`
	Title           string    `gorm:"column:title;size:255;not null" json:"title"`
	Description     string    `gorm:"column:description;type:text" json:"description"`
	VideoUrl        string    `gorm:"column:video_url;size:512" json:"videoFile"`
	ThumbnailUrl    string    `gorm:"column:thumbnail_url;size:512" json:"thumbnail"`
	VideoObject     string    `gorm:"column:video_object;size:255" json:"-"`
	ThumbnailObject string    `gorm:"column:thumbnail_object;size:255" json:"-"`
	Duration        float64   `gorm:"column:duration" json:"duration"`
	ViewCount       int64     `gorm:"column:view_count;not null;default:0" json:"views"`
	IsPublished     bool      `gorm:"column:is_published;not null" json:"isPublished"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Video) TableName() string {
	return "videos"
}

// VideoWithOwner is a video with its owner profile inlined.
type VideoWithOwner struct {
	*Video
	Owner *User `json:"owner"`
}
