package handlers

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/playlist/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/response"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param CreatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind create playlist param failed: %v", err)
		response.SendError(c, errno.ErrBind)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(&service.CreatePlaylistRequest{
		UserId:      userId,
		Name:        param.Name,
		Description: param.Description,
		Videos:      param.Videos,
	})
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.CreatedCode, playlist, "Playlist created successfully")
}

func GetUserPlaylists(ctx context.Context, c *app.RequestContext) {
	var param UserPlaylistsParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	userId, err := utils.ParseId(param.UserId, "userId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	playlists, err := service.NewPlaylistService(ctx).GetUserPlaylists(userId)
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, playlists, "Playlists fetched successfully")
}

func GetPlaylistById(ctx context.Context, c *app.RequestContext) {
	var param PlaylistIdParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	playlistId, err := utils.ParseId(param.PlaylistId, "playlistId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).GetPlaylistById(playlistId)
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, playlist, "Playlist fetched successfully")
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	changeMembership(ctx, c, (*service.PlaylistService).AddVideoToPlaylist, "Video added to playlist")
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	changeMembership(ctx, c, (*service.PlaylistService).RemoveVideoFromPlaylist, "Video removed from playlist")
}

type membershipFunc func(s *service.PlaylistService, userId, videoId, playlistId int64) (*model.PlaylistDetail, error)

func changeMembership(ctx context.Context, c *app.RequestContext, change membershipFunc, message string) {
	var param PlaylistVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	videoId, err := utils.ParseId(param.VideoId, "videoId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	playlistId, err := utils.ParseId(param.PlaylistId, "playlistId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	playlist, err := change(service.NewPlaylistService(ctx), userId, videoId, playlistId)
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, playlist, message)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	var param PlaylistIdParam
	if err := c.BindAndValidate(&param); err != nil {
		response.SendError(c, errno.ErrBind)
		return
	}
	playlistId, err := utils.ParseId(param.PlaylistId, "playlistId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	if err = service.NewPlaylistService(ctx).DeletePlaylist(userId, playlistId); err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, nil, "Playlist deleted")
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param UpdatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind update playlist param failed: %v", err)
		response.SendError(c, errno.ErrBind)
		return
	}
	playlistId, err := utils.ParseId(param.PlaylistId, "playlistId")
	if err != nil {
		response.SendError(c, err)
		return
	}
	userId, err := jwt.GetUserId(c)
	if err != nil {
		response.SendError(c, err)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(userId, playlistId, param.Name, param.Description)
	if err != nil {
		response.SendError(c, err)
		return
	}
	response.SendResponse(c, errno.SuccessCode, playlist, "Playlist updated successfully")
}
