package model

import "time"

// Subscription 订阅关系, subscriber 关注 channel
type Subscription struct {
	SubscriptionId int64     `gorm:"column:subscription_id;primaryKey;autoIncrement:false" json:"subscriptionId,string"`
	SubscriberId   int64     `gorm:"column:subscriber_id;not null;uniqueIndex:uk_subscriber_channel,priority:1" json:"subscriberId,string"`
	ChannelId      int64     `gorm:"column:channel_id;not null;uniqueIndex:uk_subscriber_channel,priority:2;index" json:"channelId,string"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
