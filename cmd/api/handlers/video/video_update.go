package handlers

import (
	"context"
	"os"

	"VideoTube.com/cmd/video/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/oss"
	"VideoTube.com/pkg/response"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var param UpdateVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind update video param failed: %v", err)
		response.SendError(c, errno.ErrBind)
		return
	}
	videoId, userId, err := videoAndUser(c, param.VideoId)
	if err != nil {
		response.SendError(c, err)
		return
	}

	dir, err := uploadDir()
	if err != nil {
		hlog.CtxErrorf(ctx, "create upload dir failed: %v", err)
		response.SendError(c, errno.ServiceErr)
		return
	}
	defer os.RemoveAll(dir)
	thumbnailPath, err := saveUpload(c, "thumbnail", dir)
	if err != nil {
		hlog.CtxErrorf(ctx, "save thumbnail upload failed: %v", err)
		response.SendError(c, errno.ServiceErr)
		return
	}

	video, err := service.NewVideoService(ctx, oss.Default).UpdateVideo(&service.UpdateVideoRequest{
		ActorId:       userId,
		VideoId:       videoId,
		Title:         param.Title,
		Description:   param.Description,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, video, "Video updated successfully")
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	var param VideoIdParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	videoId, userId, err := videoAndUser(c, param.VideoId)
	if err != nil {
		response.SendError(c, err)
		return
	}
	if err = service.NewVideoService(ctx, oss.Default).DeleteVideo(userId, videoId); err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, nil, "Video deleted successfully")
}

func TogglePublishStatus(ctx context.Context, c *app.RequestContext) {
	var param VideoIdParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	videoId, userId, err := videoAndUser(c, param.VideoId)
	if err != nil {
		response.SendError(c, err)
		return
	}
	video, err := service.NewVideoService(ctx, oss.Default).TogglePublishStatus(userId, videoId)
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, video, "Publish status toggled successfully")
}

func videoAndUser(c *app.RequestContext, rawVideoId string) (int64, int64, error) {
	videoId, err := utils.ParseId(rawVideoId, "videoId")
	if err != nil {
		return 0, 0, err
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		return 0, 0, err
	}
	return videoId, userId, nil
}
