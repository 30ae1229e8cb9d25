package constants

const (
	ApiServiceName = "VideoTube"

	IdentityKey = "user_id"

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	MaxCommentLength = 500
	MaxTweetLength   = 280

	CommentRateLimit  = 10 // comments per user per window
	CommentRateWindow = 60 // seconds

	StatsCacheTTL = 30 // seconds

	VideoBucket     = "video"
	ThumbnailBucket = "picture"

	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)
