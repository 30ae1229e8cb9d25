package handlers

import (
	"context"

	"VideoTube.com/cmd/relation/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/response"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// ToggleSubscription subscribes the acting user to the channel or cancels
// an existing subscription.
func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	var param ChannelParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	channelId, err := utils.ParseId(param.ChannelId, "channelId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	res, err := service.NewRelationService(ctx).ToggleSubscription(userId, channelId)
	if err != nil {
		response.SendError(c, err)
		return
	}
	code := int64(errno.SuccessCode)
	if res.Subscribed {
		code = errno.CreatedCode
	}
	response.SendResponse(c, code, nil, res.Message)
}

func GetUserChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	var param ChannelParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	channelId, err := utils.ParseId(param.ChannelId, "channelId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	users, err := service.NewRelationService(ctx).GetUserChannelSubscribers(channelId)
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, users, "Subscribers fetched successfully")
}

func GetSubscribedChannels(ctx context.Context, c *app.RequestContext) {
	var param SubscriberParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	subscriberId, err := utils.ParseId(param.SubscriberId, "subscriberId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	users, err := service.NewRelationService(ctx).GetSubscribedChannels(subscriberId)
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, users, "Subscribed channels fetched successfully")
}
