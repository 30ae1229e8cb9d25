package handlers

import (
	"context"

	"VideoTube.com/cmd/dashboard/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/response"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

type ChannelVideosParam struct {
	Page  string `query:"page"`
	Limit string `query:"limit"`
}

func GetChannelStats(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	stats, err := service.NewDashboardService(ctx).GetChannelStats(userId)
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, stats, "Channel stats fetched successfully")
}

func GetChannelVideos(ctx context.Context, c *app.RequestContext) {
	var param ChannelVideosParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	resp, err := service.NewDashboardService(ctx).GetChannelVideos(userId, utils.NewPage(param.Page, param.Limit))
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, resp, "Channel videos fetched successfully")
}
