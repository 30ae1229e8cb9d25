package service

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"VideoTube.com/cmd/model"
	userdb "VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/config"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/oss"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

type VideoService struct {
	ctx     context.Context
	storage oss.Storage
	stats   *cache.StatsCacheManager
	tempDir string

	probe       func(path string) (float64, error)
	thumbnailer func(videoPath, outputDir string) (string, error)
}

func NewVideoService(ctx context.Context, storage oss.Storage) *VideoService {
	return &VideoService{
		ctx:         ctx,
		storage:     storage,
		stats:       cache.NewStatsCacheManager(cache.Client(), constants.StatsCacheTTL*time.Second),
		tempDir:     config.ConfigInfo.Server.TempDir,
		probe:       utils.ProbeDuration,
		thumbnailer: utils.GetVideoThumbnail,
	}
}

type GetAllVideosRequest struct {
	ActorId  int64
	Page     utils.Page
	Query    string
	SortBy   string
	SortType string
	UserId   string
}

type VideoListResponse struct {
	Videos      []*model.VideoWithOwner `json:"videos"`
	TotalVideos int64                   `json:"totalVideos"`
	CurrentPage int64                   `json:"currentPage"`
	TotalPages  int64                   `json:"totalPages"`
}

// GetAllVideos lists videos page by page. A malformed userId filter is
// ignored; unpublished videos only show up when owners list their own.
func (s *VideoService) GetAllVideos(req *GetAllVideosRequest) (*VideoListResponse, error) {
	filter := &db.VideoFilter{
		Query:         strings.TrimSpace(req.Query),
		SortBy:        req.SortBy,
		SortType:      req.SortType,
		OnlyPublished: true,
	}
	if ownerId, err := utils.ParseId(req.UserId, "userId"); err == nil {
		filter.OwnerId = ownerId
		filter.OnlyPublished = ownerId != req.ActorId
	}

	videos, total, err := db.ListVideos(s.ctx, filter, req.Page.Offset(), int(req.Page.Limit))
	if err != nil {
		hlog.CtxErrorf(s.ctx, "GetAllVideos failed: %v", err)
		return nil, errno.ServiceErr
	}
	withOwner, err := s.populateOwners(videos)
	if err != nil {
		return nil, err
	}
	return &VideoListResponse{
		Videos:      withOwner,
		TotalVideos: total,
		CurrentPage: req.Page.Page,
		TotalPages:  req.Page.TotalPages(total),
	}, nil
}

type PublishVideoRequest struct {
	UserId        int64
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

func (s *VideoService) PublishAVideo(req *PublishVideoRequest) (*model.Video, error) {
	var missing []string
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		missing = append(missing, "description is required")
	}
	if len(missing) > 0 {
		return nil, errno.RequestErr.WithMessage("Title and description are required").WithErrors(missing...)
	}
	if req.VideoPath == "" {
		return nil, errno.RequestErr.WithMessage("Video file is required")
	}

	if s.storage == nil {
		return nil, errno.OssErr.WithMessage("Media storage is not configured")
	}

	videoId := utils.GenerateID()
	duration, err := s.probe(req.VideoPath)
	if err != nil {
		hlog.CtxWarnf(s.ctx, "probe duration of video %d failed: %v", videoId, err)
	}

	uploadedVideo, err := s.storage.UploadFile(s.ctx, constants.VideoBucket,
		objectName("video", videoId, req.VideoPath), req.VideoPath, contentType(req.VideoPath, "video/mp4"))
	if err != nil {
		hlog.CtxErrorf(s.ctx, "upload video %d failed: %v", videoId, err)
		return nil, errno.OssErr.WithMessage("Error uploading video")
	}

	thumbnailPath := req.ThumbnailPath
	if thumbnailPath == "" {
		dir := filepath.Join(s.tempDir, fmt.Sprint(videoId))
		if thumbnailPath, err = s.thumbnailer(req.VideoPath, dir); err != nil {
			hlog.CtxWarnf(s.ctx, "extract thumbnail of video %d failed: %v", videoId, err)
			thumbnailPath = ""
		} else {
			defer os.RemoveAll(dir)
		}
	}
	var uploadedThumbnail *oss.UploadResult
	if thumbnailPath != "" {
		uploadedThumbnail, err = s.storage.UploadFile(s.ctx, constants.ThumbnailBucket,
			objectName("thumbnail", videoId, thumbnailPath), thumbnailPath, contentType(thumbnailPath, "image/jpeg"))
		if err != nil {
			hlog.CtxErrorf(s.ctx, "upload thumbnail of video %d failed: %v", videoId, err)
			s.removeObject(constants.VideoBucket, uploadedVideo.Object)
			return nil, errno.OssErr.WithMessage("Error uploading thumbnail")
		}
	}

	video := &model.Video{
		VideoId:     videoId,
		UserId:      req.UserId,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		VideoUrl:    uploadedVideo.Url,
		VideoObject: uploadedVideo.Object,
		Duration:    duration,
		IsPublished: true,
	}
	if uploadedThumbnail != nil {
		video.ThumbnailUrl = uploadedThumbnail.Url
		video.ThumbnailObject = uploadedThumbnail.Object
	}
	if err = db.CreateVideo(s.ctx, video); err != nil {
		hlog.CtxErrorf(s.ctx, "create video %d failed: %v", videoId, err)
		s.removeObject(constants.VideoBucket, video.VideoObject)
		s.removeObject(constants.ThumbnailBucket, video.ThumbnailObject)
		return nil, errno.ServiceErr
	}
	s.stats.InvalidateChannelStats(s.ctx, req.UserId)
	return video, nil
}

// GetVideoById counts a view on every successful read.
func (s *VideoService) GetVideoById(actorId, videoId int64) (*model.VideoWithOwner, error) {
	video, err := s.findVideo(videoId)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.UserId != actorId {
		return nil, errno.NotFoundErr.WithMessage("Video not found")
	}
	if err = db.IncrViewCount(s.ctx, videoId); err != nil {
		hlog.CtxWarnf(s.ctx, "increase view count of video %d failed: %v", videoId, err)
	} else {
		video.ViewCount++
	}
	withOwner, err := s.populateOwners([]*model.Video{video})
	if err != nil {
		return nil, err
	}
	return withOwner[0], nil
}

type UpdateVideoRequest struct {
	ActorId       int64
	VideoId       int64
	Title         string
	Description   string
	ThumbnailPath string
}

func (s *VideoService) UpdateVideo(req *UpdateVideoRequest) (*model.Video, error) {
	fields := make(map[string]interface{})
	if title := strings.TrimSpace(req.Title); title != "" {
		fields["title"] = title
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		fields["description"] = description
	}
	if len(fields) == 0 && req.ThumbnailPath == "" {
		return nil, errno.RequestErr.WithMessage("Provide a title, description or thumbnail to update")
	}

	video, err := s.findOwnedVideo(req.ActorId, req.VideoId, "update")
	if err != nil {
		return nil, err
	}

	var uploaded *oss.UploadResult
	if req.ThumbnailPath != "" {
		if s.storage == nil {
			return nil, errno.OssErr.WithMessage("Media storage is not configured")
		}
		uploaded, err = s.storage.UploadFile(s.ctx, constants.ThumbnailBucket,
			objectName("thumbnail", video.VideoId, req.ThumbnailPath), req.ThumbnailPath, contentType(req.ThumbnailPath, "image/jpeg"))
		if err != nil {
			hlog.CtxErrorf(s.ctx, "upload thumbnail of video %d failed: %v", video.VideoId, err)
			return nil, errno.OssErr.WithMessage("Error uploading thumbnail")
		}
		fields["thumbnail_url"] = uploaded.Url
		fields["thumbnail_object"] = uploaded.Object
	}

	if err = db.UpdateVideo(s.ctx, video.VideoId, fields); err != nil {
		hlog.CtxErrorf(s.ctx, "update video %d failed: %v", video.VideoId, err)
		if uploaded != nil {
			s.removeObject(constants.ThumbnailBucket, uploaded.Object)
		}
		return nil, errno.ServiceErr
	}
	if uploaded != nil {
		s.removeObject(constants.ThumbnailBucket, video.ThumbnailObject)
	}
	return s.findVideo(video.VideoId)
}

func (s *VideoService) DeleteVideo(actorId, videoId int64) error {
	video, err := s.findOwnedVideo(actorId, videoId, "delete")
	if err != nil {
		return err
	}
	if err = db.DeleteVideo(s.ctx, videoId); err != nil {
		hlog.CtxErrorf(s.ctx, "delete video %d failed: %v", videoId, err)
		return errno.ServiceErr
	}
	s.stats.InvalidateChannelStats(s.ctx, actorId)
	s.removeObject(constants.VideoBucket, video.VideoObject)
	s.removeObject(constants.ThumbnailBucket, video.ThumbnailObject)
	return nil
}

func (s *VideoService) TogglePublishStatus(actorId, videoId int64) (*model.Video, error) {
	video, err := s.findOwnedVideo(actorId, videoId, "update")
	if err != nil {
		return nil, err
	}
	if err = db.SetPublished(s.ctx, videoId, !video.IsPublished); err != nil {
		hlog.CtxErrorf(s.ctx, "toggle publish status of video %d failed: %v", videoId, err)
		return nil, errno.ServiceErr
	}
	video.IsPublished = !video.IsPublished
	return video, nil
}

func (s *VideoService) findVideo(videoId int64) (*model.Video, error) {
	video, err := db.GetVideoById(s.ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "get video %d failed: %v", videoId, err)
		return nil, errno.ServiceErr
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("Video not found")
	}
	return video, nil
}

func (s *VideoService) findOwnedVideo(actorId, videoId int64, action string) (*model.Video, error) {
	video, err := s.findVideo(videoId)
	if err != nil {
		return nil, err
	}
	if video.UserId != actorId {
		return nil, errno.ForbiddenErr.WithMessage("You are not authorized to " + action + " this video")
	}
	return video, nil
}

func (s *VideoService) populateOwners(videos []*model.Video) ([]*model.VideoWithOwner, error) {
	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		ownerIds = append(ownerIds, v.UserId)
	}
	owners, err := userdb.MGetUsers(s.ctx, ownerIds)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "load video owners failed: %v", err)
		return nil, errno.ServiceErr
	}
	res := make([]*model.VideoWithOwner, 0, len(videos))
	for _, v := range videos {
		res = append(res, &model.VideoWithOwner{Video: v, Owner: owners[v.UserId]})
	}
	return res, nil
}

func (s *VideoService) removeObject(bucket, object string) {
	if object == "" || s.storage == nil {
		return
	}
	if err := s.storage.Remove(s.ctx, bucket, object); err != nil {
		hlog.CtxWarnf(s.ctx, "remove %s/%s failed: %v", bucket, object, err)
	}
}

func objectName(kind string, videoId int64, localPath string) string {
	return fmt.Sprintf("%s/%d/%s%s", kind, videoId, uuid.NewString(), strings.ToLower(filepath.Ext(localPath)))
}

func contentType(localPath, fallback string) string {
	if ct := mime.TypeByExtension(filepath.Ext(localPath)); ct != "" {
		return ct
	}
	return fallback
}
