package handlers

import (
	"context"
	"os"

	"VideoTube.com/cmd/video/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/oss"
	"VideoTube.com/pkg/response"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// PublishAVideo accepts multipart title, description, videoFile and an
// optional thumbnail.
func PublishAVideo(ctx context.Context, c *app.RequestContext) {
	var param PublishVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind publish param failed: %v", err)
		response.SendError(c, errno.ErrBind)
		return
	}
	userId, err := jwt.GetUserId(c)
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

	videoPath, err := saveUpload(c, "videoFile", dir)
	if err != nil {
		hlog.CtxErrorf(ctx, "save video upload failed: %v", err)
		response.SendError(c, errno.ServiceErr)
		return
	}
	thumbnailPath, err := saveUpload(c, "thumbnail", dir)
	if err != nil {
		hlog.CtxErrorf(ctx, "save thumbnail upload failed: %v", err)
		response.SendError(c, errno.ServiceErr)
		return
	}

	video, err := service.NewVideoService(ctx, oss.Default).PublishAVideo(&service.PublishVideoRequest{
		UserId:        userId,
		Title:         param.Title,
		Description:   param.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.CreatedCode, video, "Video published successfully")
}
