package service

import (
	"context"
	"strconv"
	"strings"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/playlist/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

type CreatePlaylistRequest struct {
	UserId      int64
	Name        string
	Description string
	Videos      []string
}

// CreatePlaylist accepts an optional initial video list; every id has to be
// well formed and point at a stored video.
func (s *PlaylistService) CreatePlaylist(req *CreatePlaylistRequest) (*model.PlaylistDetail, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errno.RequestErr.WithMessage("Playlist name is required")
	}
	videoIds := make([]int64, 0, len(req.Videos))
	for _, raw := range req.Videos {
		id, err := utils.ParseId(raw, "videoId")
		if err != nil {
			return nil, err
		}
		videoIds = append(videoIds, id)
	}
	exist, err := db.MCheckVideoExist(s.ctx, videoIds)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "check playlist videos failed: %v", err)
		return nil, errno.ServiceErr
	}
	for _, id := range videoIds {
		if !exist[id] {
			return nil, errno.NotFoundErr.WithMessage("Video " + strconv.FormatInt(id, 10) + " not found")
		}
	}

	playlist := &model.Playlist{
		PlaylistId:  utils.GenerateID(),
		UserId:      req.UserId,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	entries := make([]*model.PlaylistVideo, 0, len(videoIds))
	for _, id := range videoIds {
		entries = append(entries, &model.PlaylistVideo{
			PlaylistVideoId: utils.GenerateID(),
			PlaylistId:      playlist.PlaylistId,
			VideoId:         id,
		})
	}
	if err = db.CreatePlaylist(s.ctx, playlist, entries); err != nil {
		hlog.CtxErrorf(s.ctx, "create playlist of user %d failed: %v", req.UserId, err)
		return nil, errno.ServiceErr
	}
	return &model.PlaylistDetail{Playlist: playlist, Videos: formatIds(videoIds)}, nil
}

func (s *PlaylistService) GetUserPlaylists(userId int64) ([]*model.PlaylistDetail, error) {
	playlists, err := db.GetUserPlaylists(s.ctx, userId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "list playlists of user %d failed: %v", userId, err)
		return nil, errno.ServiceErr
	}
	return s.withVideos(playlists)
}

func (s *PlaylistService) GetPlaylistById(playlistId int64) (*model.PlaylistDetail, error) {
	playlist, err := s.findPlaylist(playlistId)
	if err != nil {
		return nil, err
	}
	return s.detail(playlist)
}

// AddVideoToPlaylist appends videoId; a video may be listed more than once.
func (s *PlaylistService) AddVideoToPlaylist(userId, videoId, playlistId int64) (*model.PlaylistDetail, error) {
	playlist, err := s.findOwnedPlaylist(userId, playlistId, "modify")
	if err != nil {
		return nil, err
	}
	exist, err := db.MCheckVideoExist(s.ctx, []int64{videoId})
	if err != nil {
		hlog.CtxErrorf(s.ctx, "check video %d failed: %v", videoId, err)
		return nil, errno.ServiceErr
	}
	if !exist[videoId] {
		return nil, errno.NotFoundErr.WithMessage("Video not found")
	}
	err = db.AddPlaylistVideo(s.ctx, &model.PlaylistVideo{
		PlaylistVideoId: utils.GenerateID(),
		PlaylistId:      playlistId,
		VideoId:         videoId,
	})
	if err != nil {
		hlog.CtxErrorf(s.ctx, "add video %d to playlist %d failed: %v", videoId, playlistId, err)
		return nil, errno.ServiceErr
	}
	return s.detail(playlist)
}

func (s *PlaylistService) RemoveVideoFromPlaylist(userId, videoId, playlistId int64) (*model.PlaylistDetail, error) {
	playlist, err := s.findOwnedPlaylist(userId, playlistId, "modify")
	if err != nil {
		return nil, err
	}
	removed, err := db.RemovePlaylistVideo(s.ctx, playlistId, videoId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "remove video %d from playlist %d failed: %v", videoId, playlistId, err)
		return nil, errno.ServiceErr
	}
	if !removed {
		return nil, errno.NotFoundErr.WithMessage("Video not found in playlist")
	}
	return s.detail(playlist)
}

func (s *PlaylistService) DeletePlaylist(userId, playlistId int64) error {
	if _, err := s.findOwnedPlaylist(userId, playlistId, "delete"); err != nil {
		return err
	}
	if err := db.DeletePlaylist(s.ctx, playlistId); err != nil {
		hlog.CtxErrorf(s.ctx, "delete playlist %d failed: %v", playlistId, err)
		return errno.ServiceErr
	}
	return nil
}

func (s *PlaylistService) UpdatePlaylist(userId, playlistId int64, name, description string) (*model.PlaylistDetail, error) {
	fields := make(map[string]interface{})
	if name = strings.TrimSpace(name); name != "" {
		fields["name"] = name
	}
	if description = strings.TrimSpace(description); description != "" {
		fields["description"] = description
	}
	if len(fields) == 0 {
		return nil, errno.RequestErr.WithMessage("Name or description is required")
	}
	playlist, err := s.findOwnedPlaylist(userId, playlistId, "update")
	if err != nil {
		return nil, err
	}
	if err = db.UpdatePlaylist(s.ctx, playlistId, fields); err != nil {
		hlog.CtxErrorf(s.ctx, "update playlist %d failed: %v", playlistId, err)
		return nil, errno.ServiceErr
	}
	if name != "" {
		playlist.Name = name
	}
	if description != "" {
		playlist.Description = description
	}
	return s.detail(playlist)
}

func (s *PlaylistService) findPlaylist(playlistId int64) (*model.Playlist, error) {
	playlist, err := db.GetPlaylistById(s.ctx, playlistId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "get playlist %d failed: %v", playlistId, err)
		return nil, errno.ServiceErr
	}
	if playlist == nil {
		return nil, errno.NotFoundErr.WithMessage("Playlist not found")
	}
	return playlist, nil
}

func (s *PlaylistService) findOwnedPlaylist(userId, playlistId int64, action string) (*model.Playlist, error) {
	playlist, err := s.findPlaylist(playlistId)
	if err != nil {
		return nil, err
	}
	if playlist.UserId != userId {
		return nil, errno.ForbiddenErr.WithMessage("You are not authorized to " + action + " this playlist")
	}
	return playlist, nil
}

func (s *PlaylistService) detail(playlist *model.Playlist) (*model.PlaylistDetail, error) {
	details, err := s.withVideos([]*model.Playlist{playlist})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *PlaylistService) withVideos(playlists []*model.Playlist) ([]*model.PlaylistDetail, error) {
	ids := make([]int64, 0, len(playlists))
	for _, p := range playlists {
		ids = append(ids, p.PlaylistId)
	}
	videoIds, err := db.MGetPlaylistVideoIds(s.ctx, ids)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "load playlist videos failed: %v", err)
		return nil, errno.ServiceErr
	}
	res := make([]*model.PlaylistDetail, 0, len(playlists))
	for _, p := range playlists {
		res = append(res, &model.PlaylistDetail{Playlist: p, Videos: formatIds(videoIds[p.PlaylistId])})
	}
	return res, nil
}

func formatIds(ids []int64) []string {
	res := make([]string, 0, len(ids))
	for _, id := range ids {
		res = append(res, strconv.FormatInt(id, 10))
	}
	return res
}
