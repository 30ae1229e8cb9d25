package handlers

import (
	"context"

	"VideoTube.com/cmd/video/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/oss"
	"VideoTube.com/pkg/response"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func GetAllVideos(ctx context.Context, c *app.RequestContext) {
	var param ListVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind list video param failed: %v", err)
		response.SendError(c, errno.ErrBind)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	resp, err := service.NewVideoService(ctx, oss.Default).GetAllVideos(&service.GetAllVideosRequest{
		ActorId:  userId,
		Page:     utils.NewPage(param.Page, param.Limit),
		Query:    param.Query,
		SortBy:   param.SortBy,
		SortType: param.SortType,
		UserId:   param.UserId,
	})
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, resp, "Videos fetched successfully")
}

func GetVideoById(ctx context.Context, c *app.RequestContext) {
	var param VideoIdParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	videoId, err := utils.ParseId(param.VideoId, "videoId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	video, err := service.NewVideoService(ctx, oss.Default).GetVideoById(userId, videoId)
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, video, "Video fetched successfully")
}
