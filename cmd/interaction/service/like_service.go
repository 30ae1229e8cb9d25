package service

import (
	"context"
	"errors"
	"time"

	"VideoTube.com/cmd/interaction/dal/db"
	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/mq"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/gorm"
)

// createLike is swapped in tests to lose the insert race on purpose.
var createLike = db.CreateLike

type LikeService struct {
	ctx   context.Context
	stats *cache.StatsCacheManager
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{
		ctx:   ctx,
		stats: cache.NewStatsCacheManager(cache.Client(), constants.StatsCacheTTL*time.Second),
	}
}

// ToggleResult tells the handler which way the relation flipped.
type ToggleResult struct {
	Liked   bool
	Message string
}

type LikedVideosResponse struct {
	LikedVideos []*model.LikedVideo `json:"likedVideos"`
	TotalCount  int                 `json:"totalCount"`
}

var targetNames = map[string]string{
	constants.LikeTargetVideo:   "Video",
	constants.LikeTargetComment: "Comment",
	constants.LikeTargetTweet:   "Tweet",
}

func (s *LikeService) ToggleVideoLike(userId, videoId int64) (*ToggleResult, error) {
	return s.toggle(userId, constants.LikeTargetVideo, videoId)
}

func (s *LikeService) ToggleCommentLike(userId, commentId int64) (*ToggleResult, error) {
	return s.toggle(userId, constants.LikeTargetComment, commentId)
}

func (s *LikeService) ToggleTweetLike(userId, tweetId int64) (*ToggleResult, error) {
	return s.toggle(userId, constants.LikeTargetTweet, tweetId)
}

// toggle removes an existing like or creates a missing one. Losing an
// insert race on the unique index still leaves the like in place, so it is
// reported as liked.
func (s *LikeService) toggle(userId int64, targetType string, targetId int64) (*ToggleResult, error) {
	name := targetNames[targetType]
	exist, err := db.IsTargetExist(s.ctx, targetType, targetId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "check %s %d failed: %v", targetType, targetId, err)
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage(name + " not found")
	}

	removed, err := db.DeleteLike(s.ctx, userId, targetType, targetId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "unlike %s %d by user %d failed: %v", targetType, targetId, userId, err)
		return nil, errno.ServiceErr
	}
	if removed {
		s.emit(userId, targetType, targetId, mq.ActionUnlike)
		return &ToggleResult{Liked: false, Message: name + " like removed"}, nil
	}

	err = createLike(s.ctx, &model.Like{
		LikeId:     utils.GenerateID(),
		UserId:     userId,
		TargetType: targetType,
		TargetId:   targetId,
	})
	switch {
	case err == nil:
		s.emit(userId, targetType, targetId, mq.ActionLike)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		hlog.CtxInfof(s.ctx, "concurrent like on %s %d by user %d", targetType, targetId, userId)
	default:
		hlog.CtxErrorf(s.ctx, "like %s %d by user %d failed: %v", targetType, targetId, userId, err)
		return nil, errno.ServiceErr
	}
	return &ToggleResult{Liked: true, Message: name + " liked"}, nil
}

func (s *LikeService) GetLikedVideos(userId int64) (*LikedVideosResponse, error) {
	videos, err := db.GetLikedVideos(s.ctx, userId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "list liked videos of user %d failed: %v", userId, err)
		return nil, errno.ServiceErr
	}
	return &LikedVideosResponse{LikedVideos: videos, TotalCount: len(videos)}, nil
}

func (s *LikeService) emit(userId int64, targetType string, targetId int64, action string) {
	if targetType == constants.LikeTargetVideo {
		s.invalidateOwnerStats(targetId)
	}
	mq.EmitLikeEvent(s.ctx, &mq.LikeEvent{
		UserID:     userId,
		TargetType: targetType,
		TargetID:   targetId,
		ActionType: action,
		Timestamp:  time.Now().Unix(),
	})
}

// invalidateOwnerStats drops the cached dashboard of the liked video's
// channel so totalLikes does not wait for the consumer.
func (s *LikeService) invalidateOwnerStats(videoId int64) {
	ownerId, err := db.GetVideoOwnerId(s.ctx, videoId)
	if err != nil {
		hlog.CtxWarnf(s.ctx, "load owner of video %d failed: %v", videoId, err)
		return
	}
	if ownerId != 0 {
		s.stats.InvalidateChannelStats(s.ctx, ownerId)
	}
}
