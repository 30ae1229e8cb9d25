package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
)

// CreateSubscription surfaces gorm.ErrDuplicatedKey when the pair exists.
func CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	if err := DB.WithContext(ctx).Create(sub).Error; err != nil {
		return errors.WithMessage(err, "dal.CreateSubscription failed")
	}
	return nil
}

// DeleteSubscription reports whether subscriberId was following channelId.
func DeleteSubscription(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	res := DB.WithContext(ctx).Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).Delete(&model.Subscription{})
	if res.Error != nil {
		return false, errors.WithMessage(res.Error, "dal.DeleteSubscription failed")
	}
	return res.RowsAffected > 0, nil
}

// GetSubscriberIds 获取关注了 channelId 的用户, 最近关注的在前
func GetSubscriberIds(ctx context.Context, channelId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).
		Order("created_at DESC, subscription_id DESC").Pluck("subscriber_id", &list).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.GetSubscriberIds failed")
	}
	return list, nil
}

// GetChannelIds 获取 subscriberId 关注的频道
func GetChannelIds(ctx context.Context, subscriberId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).
		Order("created_at DESC, subscription_id DESC").Pluck("channel_id", &list).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.GetChannelIds failed")
	}
	return list, nil
}

func CountSubscribers(ctx context.Context, channelId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "dal.CountSubscribers failed")
	}
	return count, nil
}
