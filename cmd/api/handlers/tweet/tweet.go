package handlers

import (
	"context"

	"VideoTube.com/cmd/tweet/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/response"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	var param CreateTweetParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind create tweet param failed: %v", err)
		response.SendError(c, errno.ErrBind)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	tweet, err := service.NewTweetService(ctx).CreateTweet(userId, param.Content)
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.CreatedCode, tweet, "Tweet created successfully")
}

func GetUserTweets(ctx context.Context, c *app.RequestContext) {
	var param UserTweetsParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	userId, err := utils.ParseId(param.UserId, "userId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	tweets, err := service.NewTweetService(ctx).GetUserTweets(userId)
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, tweets, "Tweets fetched successfully")
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	var param UpdateTweetParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind update tweet param failed: %v", err)
		response.SendError(c, errno.ErrBind)
		return
	}
	tweetId, err := utils.ParseId(param.TweetId, "tweetId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	tweet, err := service.NewTweetService(ctx).UpdateTweet(userId, tweetId, param.Content)
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, tweet, "Tweet updated successfully")
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	var param TweetIdParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	tweetId, err := utils.ParseId(param.TweetId, "tweetId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	if err = service.NewTweetService(ctx).DeleteTweet(userId, tweetId); err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, nil, "Tweet deleted successfully")
}
