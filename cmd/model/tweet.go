package model

import "time"

type Tweet struct {
	TweetId   int64     `gorm:"column:tweet_id;primaryKey;autoIncrement:false" json:"tweetId,string"`
	UserId    int64     `gorm:"column:user_id;not null;index" json:"ownerId,string"`
	Content   string    `gorm:"column:content;size:1024;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Tweet) TableName() string {
	return "tweets"
}
