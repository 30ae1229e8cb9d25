package router

import (
	dashboard "VideoTube.com/cmd/api/handlers/dashboard"
	healthcheck "VideoTube.com/cmd/api/handlers/healthcheck"
	interaction "VideoTube.com/cmd/api/handlers/interaction"
	playlist "VideoTube.com/cmd/api/handlers/playlist"
	relation "VideoTube.com/cmd/api/handlers/relation"
	tweet "VideoTube.com/cmd/api/handlers/tweet"
	video "VideoTube.com/cmd/api/handlers/video"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/route"
)

// Register mounts every route under /api/v1. auth runs before every route
// except the healthcheck.
func Register(r *route.Engine, auth ...app.HandlerFunc) {
	v1 := r.Group("/api/v1")
	v1.GET("/healthcheck", healthcheck.Healthcheck)

	videos := v1.Group("/videos", auth...)
	videos.GET("", video.GetAllVideos)
	videos.POST("", video.PublishAVideo)
	videos.GET("/:videoId", video.GetVideoById)
	videos.PATCH("/:videoId", video.UpdateVideo)
	videos.DELETE("/:videoId", video.DeleteVideo)
	videos.PATCH("/toggle/publish/:videoId", video.TogglePublishStatus)

	comments := v1.Group("/comments", auth...)
	comments.GET("/:videoId", interaction.GetVideoComments)
	comments.POST("", interaction.AddComment)
	comments.PATCH("", interaction.UpdateComment)
	comments.DELETE("", interaction.DeleteComment)

	likes := v1.Group("/likes", auth...)
	likes.POST("/toggle/v/:videoId", interaction.ToggleVideoLike)
	likes.POST("/toggle/c/:commentId", interaction.ToggleCommentLike)
	likes.POST("/toggle/t/:tweetId", interaction.ToggleTweetLike)
	likes.GET("/videos", interaction.GetLikedVideos)

	tweets := v1.Group("/tweets", auth...)
	tweets.POST("", tweet.CreateTweet)
	tweets.GET("/user/:userId", tweet.GetUserTweets)
	tweets.PATCH("/:tweetId", tweet.UpdateTweet)
	tweets.DELETE("/:tweetId", tweet.DeleteTweet)

	playlists := v1.Group("/playlists", auth...)
	playlists.POST("", playlist.CreatePlaylist)
	playlists.GET("/user/:userId", playlist.GetUserPlaylists)
	playlists.GET("/:playlistId", playlist.GetPlaylistById)
	playlists.PATCH("/:playlistId", playlist.UpdatePlaylist)
	playlists.DELETE("/:playlistId", playlist.DeletePlaylist)
	playlists.PATCH("/add/:videoId/:playlistId", playlist.AddVideoToPlaylist)
	playlists.PATCH("/remove/:videoId/:playlistId", playlist.RemoveVideoFromPlaylist)

	subscriptions := v1.Group("/subscriptions", auth...)
	subscriptions.POST("/c/:channelId", relation.ToggleSubscription)
	subscriptions.GET("/c/:channelId", relation.GetUserChannelSubscribers)
	subscriptions.GET("/u/:subscriberId", relation.GetSubscribedChannels)

	dashboards := v1.Group("/dashboard", auth...)
	dashboards.GET("/stats", dashboard.GetChannelStats)
	dashboards.GET("/videos", dashboard.GetChannelVideos)
}
