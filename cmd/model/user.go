package model

import "time"

// User is owned by the account service; this backend only reads it to
// inline owners, subscribers and channels.
type User struct {
	UserId    int64     `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"userId,string"`
	UserName  string    `gorm:"column:user_name;size:64;index" json:"userName"`
	Email     string    `gorm:"column:email;size:128" json:"email"`
	AvatarUrl string    `gorm:"column:avatar_url;size:512" json:"avatarUrl"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
