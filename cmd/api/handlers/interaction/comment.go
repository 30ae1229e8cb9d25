package handlers

import (
	"context"

	"VideoTube.com/cmd/interaction/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/response"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func GetVideoComments(ctx context.Context, c *app.RequestContext) {
	var param ListCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind list comment param failed: %v", err)
		response.SendError(c, errno.ErrBind)
		return
	}
	videoId, err := utils.ParseId(param.VideoId, "videoId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	resp, err := service.NewCommentService(ctx).GetVideoComments(videoId, utils.NewPage(param.Page, param.Limit))
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, resp, "Comments fetched successfully")
}

func AddComment(ctx context.Context, c *app.RequestContext) {
	var param CreateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind create comment param failed: %v", err)
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
	comment, err := service.NewCommentService(ctx).AddComment(userId, videoId, param.Text)
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.CreatedCode, comment, "Comment added successfully")
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var param UpdateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind update comment param failed: %v", err)
		response.SendError(c, errno.ErrBind)
		return
	}
	commentId, err := utils.ParseId(param.CommentId, "commentId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	comment, err := service.NewCommentService(ctx).UpdateComment(userId, commentId, param.Text)
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, comment, "Comment updated successfully")
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	var param DeleteCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	commentId, err := utils.ParseId(param.CommentId, "commentId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	if err = service.NewCommentService(ctx).DeleteComment(userId, commentId); err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, nil, "Comment deleted successfully")
}
