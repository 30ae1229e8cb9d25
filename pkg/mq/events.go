package mq

// LikeEvent 点赞事件
type LikeEvent struct {
	EventID    string `json:"event_id"`
	UserID     int64  `json:"user_id"`
	TargetType string `json:"target_type"` // video, comment, tweet
	TargetID   int64  `json:"target_id"`
	ActionType string `json:"action_type"` // like, unlike
	Timestamp  int64  `json:"timestamp"`
}

// SubscriptionEvent 订阅事件
type SubscriptionEvent struct {
	EventID      string `json:"event_id"`
	SubscriberID int64  `json:"subscriber_id"`
	ChannelID    int64  `json:"channel_id"`
	ActionType   string `json:"action_type"` // subscribe, unsubscribe
	Timestamp    int64  `json:"timestamp"`
}

const (
	LikeEventExchange         = "like_events"
	SubscriptionEventExchange = "subscription_events"

	LikeEventQueue         = "like_event_queue"
	SubscriptionEventQueue = "subscription_event_queue"

	ActionLike        = "like"
	ActionUnlike      = "unlike"
	ActionSubscribe   = "subscribe"
	ActionUnsubscribe = "unsubscribe"
)
