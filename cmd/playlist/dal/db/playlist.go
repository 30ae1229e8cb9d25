package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreatePlaylist stores the playlist together with its initial entries.
func CreatePlaylist(ctx context.Context, playlist *model.Playlist, entries []*model.PlaylistVideo) error {
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(playlist).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		return errors.WithMessage(err, "dal.CreatePlaylist failed")
	}
	return nil
}

// GetPlaylistById returns nil without error when the playlist does not exist.
func GetPlaylistById(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	var playlists []*model.Playlist
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Limit(1).Find(&playlists).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.GetPlaylistById failed")
	}
	if len(playlists) == 0 {
		return nil, nil
	}
	return playlists[0], nil
}

func GetUserPlaylists(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, 0)
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).
		Order("created_at DESC, playlist_id DESC").Find(&playlists).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.GetUserPlaylists failed")
	}
	return playlists, nil
}

// MGetPlaylistVideoIds returns the video ids of each playlist in insertion order.
func MGetPlaylistVideoIds(ctx context.Context, playlistIds []int64) (map[int64][]int64, error) {
	res := make(map[int64][]int64, len(playlistIds))
	if len(playlistIds) == 0 {
		return res, nil
	}
	var entries []*model.PlaylistVideo
	if err := DB.WithContext(ctx).Where("playlist_id IN ?", playlistIds).
		Order("playlist_video_id ASC").Find(&entries).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.MGetPlaylistVideoIds failed")
	}
	for _, e := range entries {
		res[e.PlaylistId] = append(res[e.PlaylistId], e.VideoId)
	}
	return res, nil
}

func AddPlaylistVideo(ctx context.Context, entry *model.PlaylistVideo) error {
	if err := DB.WithContext(ctx).Create(entry).Error; err != nil {
		return errors.WithMessage(err, "dal.AddPlaylistVideo failed")
	}
	return nil
}

// RemovePlaylistVideo drops the earliest entry of videoId and reports
// whether the playlist contained it.
func RemovePlaylistVideo(ctx context.Context, playlistId, videoId int64) (bool, error) {
	var entries []*model.PlaylistVideo
	if err := DB.WithContext(ctx).Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Order("playlist_video_id ASC").Limit(1).Find(&entries).Error; err != nil {
		return false, errors.WithMessage(err, "dal.RemovePlaylistVideo failed")
	}
	if len(entries) == 0 {
		return false, nil
	}
	res := DB.WithContext(ctx).Where("playlist_video_id = ?", entries[0].PlaylistVideoId).Delete(&model.PlaylistVideo{})
	if res.Error != nil {
		return false, errors.WithMessage(res.Error, "dal.RemovePlaylistVideo failed")
	}
	return res.RowsAffected > 0, nil
}

func UpdatePlaylist(ctx context.Context, playlistId int64, fields map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).Updates(fields).Error; err != nil {
		return errors.WithMessage(err, "dal.UpdatePlaylist failed")
	}
	return nil
}

// DeletePlaylist removes the playlist and every membership entry.
func DeletePlaylist(ctx context.Context, playlistId int64) error {
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error
	})
	if err != nil {
		return errors.WithMessage(err, "dal.DeletePlaylist failed")
	}
	return nil
}

// MCheckVideoExist reports which of videoIds are stored.
func MCheckVideoExist(ctx context.Context, videoIds []int64) (map[int64]bool, error) {
	res := make(map[int64]bool, len(videoIds))
	if len(videoIds) == 0 {
		return res, nil
	}
	var found []int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id IN ?", videoIds).Pluck("video_id", &found).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.MCheckVideoExist failed")
	}
	for _, id := range found {
		res[id] = true
	}
	return res, nil
}
