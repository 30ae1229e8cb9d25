package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/tweet/dal/db"
	userdb "VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func validateTweetContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errno.RequestErr.WithMessage("Content is required")
	}
	if utf8.RuneCountInString(content) > constants.MaxTweetLength {
		return "", errno.RequestErr.WithMessage("Tweet too long, maximum 280 characters allowed")
	}
	return content, nil
}

func (s *TweetService) CreateTweet(userId int64, content string) (*model.Tweet, error) {
	content, err := validateTweetContent(content)
	if err != nil {
		return nil, err
	}
	tweet := &model.Tweet{
		TweetId: utils.GenerateID(),
		UserId:  userId,
		Content: content,
	}
	if err = db.CreateTweet(s.ctx, tweet); err != nil {
		hlog.CtxErrorf(s.ctx, "create tweet of user %d failed: %v", userId, err)
		return nil, errno.ServiceErr
	}
	return tweet, nil
}

func (s *TweetService) GetUserTweets(userId int64) ([]*model.Tweet, error) {
	exist, err := userdb.CheckUserExistById(s.ctx, userId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "check user %d failed: %v", userId, err)
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}
	tweets, err := db.GetUserTweets(s.ctx, userId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "list tweets of user %d failed: %v", userId, err)
		return nil, errno.ServiceErr
	}
	return tweets, nil
}

func (s *TweetService) UpdateTweet(userId, tweetId int64, content string) (*model.Tweet, error) {
	content, err := validateTweetContent(content)
	if err != nil {
		return nil, err
	}
	tweet, err := s.findOwnedTweet(userId, tweetId, "update")
	if err != nil {
		return nil, err
	}
	if err = db.UpdateTweetContent(s.ctx, tweetId, content); err != nil {
		hlog.CtxErrorf(s.ctx, "update tweet %d failed: %v", tweetId, err)
		return nil, errno.ServiceErr
	}
	tweet.Content = content
	tweet.UpdatedAt = time.Now()
	return tweet, nil
}

func (s *TweetService) DeleteTweet(userId, tweetId int64) error {
	if _, err := s.findOwnedTweet(userId, tweetId, "delete"); err != nil {
		return err
	}
	if err := db.DeleteTweet(s.ctx, tweetId); err != nil {
		hlog.CtxErrorf(s.ctx, "delete tweet %d failed: %v", tweetId, err)
		return errno.ServiceErr
	}
	return nil
}

func (s *TweetService) findOwnedTweet(userId, tweetId int64, action string) (*model.Tweet, error) {
	tweet, err := db.GetTweetById(s.ctx, tweetId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "get tweet %d failed: %v", tweetId, err)
		return nil, errno.ServiceErr
	}
	if tweet == nil {
		return nil, errno.NotFoundErr.WithMessage("Tweet not found")
	}
	if tweet.UserId != userId {
		return nil, errno.ForbiddenErr.WithMessage("You are not authorized to " + action + " this tweet")
	}
	return tweet, nil
}
