package handlers

import (
	"context"

	"VideoTube.com/cmd/interaction/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/response"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

type toggleFunc func(s *service.LikeService, userId, targetId int64) (*service.ToggleResult, error)

func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	var param VideoLikeParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	toggleLike(ctx, c, param.VideoId, "videoId", (*service.LikeService).ToggleVideoLike)
}

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	var param CommentLikeParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	toggleLike(ctx, c, param.CommentId, "commentId", (*service.LikeService).ToggleCommentLike)
}

func ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	var param TweetLikeParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	toggleLike(ctx, c, param.TweetId, "tweetId", (*service.LikeService).ToggleTweetLike)
}

// toggleLike answers 201 when a like was created and 200 when one was removed.
func toggleLike(ctx context.Context, c *app.RequestContext, rawId, field string, toggle toggleFunc) {
	targetId, err := utils.ParseId(rawId, field)
	if err != nil {
		response.SendError(c, err)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	res, err := toggle(service.NewLikeService(ctx), userId, targetId)
	if err != nil {
		response.SendError(c, err)
		return
	}
	code := int64(errno.SuccessCode)
	if res.Liked {
		code = errno.CreatedCode
	}
	response.SendResponse(c, code, nil, res.Message)
}

func GetLikedVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	resp, err := service.NewLikeService(ctx).GetLikedVideos(userId)
	if err != nil {
		response.SendError(c, err)
		return
	}
	message := "Liked videos fetched successfully"
	if resp.TotalCount == 0 {
		message = "No liked videos found"
	}
	response.SendResponse(c, errno.SuccessCode, resp, message)
}
