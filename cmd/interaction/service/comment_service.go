package service

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"VideoTube.com/cmd/interaction/dal/db"
	"VideoTube.com/cmd/model"
	userdb "VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type CommentService struct {
	ctx     context.Context
	limiter *cache.FixedWindowLimiter
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{
		ctx: ctx,
		limiter: cache.NewFixedWindowLimiter(cache.Client(), "comment_rate_limit",
			constants.CommentRateWindow*time.Second, constants.CommentRateLimit),
	}
}

type CommentListResponse struct {
	Comments      []*model.CommentWithOwner `json:"comments"`
	TotalComments int64                     `json:"totalComments"`
	CurrentPage   int64                     `json:"currentPage"`
	TotalPages    int64                     `json:"totalPages"`
}

func validateCommentContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errno.RequestErr.WithMessage("Comment text is required")
	}
	if utf8.RuneCountInString(content) > constants.MaxCommentLength {
		return "", errno.RequestErr.WithMessage("Comment too long, maximum 500 characters allowed")
	}
	return content, nil
}

// GetVideoComments lists the comments of a video, newest first.
func (s *CommentService) GetVideoComments(videoId int64, page utils.Page) (*CommentListResponse, error) {
	if err := s.checkVideo(videoId); err != nil {
		return nil, err
	}
	comments, total, err := db.GetVideoCommentListByPart(s.ctx, videoId, page.Offset(), int(page.Limit))
	if err != nil {
		hlog.CtxErrorf(s.ctx, "list comments of video %d failed: %v", videoId, err)
		return nil, errno.ServiceErr
	}

	ownerIds := make([]int64, 0, len(comments))
	for _, c := range comments {
		ownerIds = append(ownerIds, c.UserId)
	}
	owners, err := userdb.MGetUsers(s.ctx, ownerIds)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "load comment owners failed: %v", err)
		return nil, errno.ServiceErr
	}
	list := make([]*model.CommentWithOwner, 0, len(comments))
	for _, c := range comments {
		list = append(list, &model.CommentWithOwner{Comment: c, Owner: owners[c.UserId]})
	}
	return &CommentListResponse{
		Comments:      list,
		TotalComments: total,
		CurrentPage:   page.Page,
		TotalPages:    page.TotalPages(total),
	}, nil
}

func (s *CommentService) AddComment(userId, videoId int64, text string) (*model.Comment, error) {
	content, err := validateCommentContent(text)
	if err != nil {
		return nil, err
	}
	if err = s.checkVideo(videoId); err != nil {
		return nil, err
	}

	// 通过redis固定窗口计数限制用户评论频率
	allowed, err := s.limiter.Allow(s.ctx, strconv.FormatInt(userId, 10))
	if err != nil {
		hlog.CtxWarnf(s.ctx, "check comment rate limit of user %d failed: %v", userId, err)
	}
	if !allowed {
		return nil, errno.RequestErr.WithMessage("Comment rate limit exceeded, please try again later")
	}

	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		VideoId:   videoId,
		UserId:    userId,
		Content:   content,
	}
	if err = db.CreateComment(s.ctx, comment); err != nil {
		hlog.CtxErrorf(s.ctx, "create comment on video %d failed: %v", videoId, err)
		return nil, errno.ServiceErr
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(userId, commentId int64, text string) (*model.Comment, error) {
	content, err := validateCommentContent(text)
	if err != nil {
		return nil, err
	}
	comment, err := s.findOwnedComment(userId, commentId, "update")
	if err != nil {
		return nil, err
	}
	if err = db.UpdateCommentContent(s.ctx, commentId, content); err != nil {
		hlog.CtxErrorf(s.ctx, "update comment %d failed: %v", commentId, err)
		return nil, errno.ServiceErr
	}
	comment.Content = content
	comment.UpdatedAt = time.Now()
	return comment, nil
}

func (s *CommentService) DeleteComment(userId, commentId int64) error {
	if _, err := s.findOwnedComment(userId, commentId, "delete"); err != nil {
		return err
	}
	if err := db.DeleteComment(s.ctx, commentId); err != nil {
		hlog.CtxErrorf(s.ctx, "delete comment %d failed: %v", commentId, err)
		return errno.ServiceErr
	}
	return nil
}

func (s *CommentService) checkVideo(videoId int64) error {
	exist, err := db.IsVideoExist(s.ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "check video %d failed: %v", videoId, err)
		return errno.ServiceErr
	}
	if !exist {
		return errno.NotFoundErr.WithMessage("Video not found")
	}
	return nil
}

func (s *CommentService) findOwnedComment(userId, commentId int64, action string) (*model.Comment, error) {
	comment, err := db.GetCommentById(s.ctx, commentId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "get comment %d failed: %v", commentId, err)
		return nil, errno.ServiceErr
	}
	if comment == nil {
		return nil, errno.NotFoundErr.WithMessage("Comment not found")
	}
	if comment.UserId != userId {
		return nil, errno.ForbiddenErr.WithMessage("You are not authorized to " + action + " this comment")
	}
	return comment, nil
}
