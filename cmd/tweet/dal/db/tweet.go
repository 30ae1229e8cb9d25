package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := DB.WithContext(ctx).Create(tweet).Error; err != nil {
		return errors.WithMessage(err, "dal.CreateTweet failed")
	}
	return nil
}

// GetTweetById returns nil without error when the tweet does not exist.
func GetTweetById(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	var tweets []*model.Tweet
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Limit(1).Find(&tweets).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.GetTweetById failed")
	}
	if len(tweets) == 0 {
		return nil, nil
	}
	return tweets[0], nil
}

// GetUserTweets 按发布时间倒序
func GetUserTweets(ctx context.Context, userId int64) ([]*model.Tweet, error) {
	tweets := make([]*model.Tweet, 0)
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).
		Order("created_at DESC, tweet_id DESC").Find(&tweets).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.GetUserTweets failed")
	}
	return tweets, nil
}

func UpdateTweetContent(ctx context.Context, tweetId int64, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).Update("content", content).Error; err != nil {
		return errors.WithMessage(err, "dal.UpdateTweetContent failed")
	}
	return nil
}

func DeleteTweet(ctx context.Context, tweetId int64) error {
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error; err != nil {
		return errors.WithMessage(err, "dal.DeleteTweet failed")
	}
	return nil
}
