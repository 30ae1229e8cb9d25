package model

import "time"

type Playlist struct {
	PlaylistId  int64     `gorm:"column:playlist_id;primaryKey;autoIncrement:false" json:"playlistId,string"`
	UserId      int64     `gorm:"column:user_id;not null;index" json:"ownerId,string"`
	Name        string    `gorm:"column:name;size:255;not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo is one membership entry; the same video may appear twice.
type PlaylistVideo struct {
	PlaylistVideoId int64     `gorm:"column:playlist_video_id;primaryKey;autoIncrement:false"`
	PlaylistId      int64     `gorm:"column:playlist_id;not null;index"`
	VideoId         int64     `gorm:"column:video_id;not null;index"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}

// PlaylistDetail is a playlist with its ordered video ids.
type PlaylistDetail struct {
	*Playlist
	Videos []string `json:"videos"`
}
