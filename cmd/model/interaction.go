package model

import "time"

type Comment struct {
	CommentId int64     `gorm:"column:comment_id;primaryKey;autoIncrement:false" json:"commentId,string"`
	VideoId   int64     `gorm:"column:video_id;not null;index" json:"videoId,string"`
	UserId    int64     `gorm:"column:user_id;not null;index" json:"ownerId,string"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}

type CommentWithOwner struct {
	*Comment
	Owner *User `json:"owner"`
}

// Like points at exactly one video, comment or tweet. The unique index keeps
// one row per (user, target) even when two toggles race.
type Like struct {
	LikeId     int64     `gorm:"column:like_id;primaryKey;autoIncrement:false" json:"likeId,string"`
	UserId     int64     `gorm:"column:user_id;not null;uniqueIndex:uk_like_user_target,priority:1" json:"likedBy,string"`
	TargetType string    `gorm:"column:target_type;size:16;not null;uniqueIndex:uk_like_user_target,priority:2;index:idx_like_target,priority:1" json:"targetType"`
	TargetId   int64     `gorm:"column:target_id;not null;uniqueIndex:uk_like_user_target,priority:3;index:idx_like_target,priority:2" json:"targetId,string"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}

// LikedVideo is one row of a user's liked video list.
type LikedVideo struct {
	VideoId     int64  `json:"videoId,string"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TotalLikes  int64  `json:"totalLikes"`
}
