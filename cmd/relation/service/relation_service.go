package service

import (
	"context"
	"errors"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/relation/dal/db"
	userdb "VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/mq"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/gorm"
)

type RelationService struct {
	ctx   context.Context
	stats *cache.StatsCacheManager
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{
		ctx:   ctx,
		stats: cache.NewStatsCacheManager(cache.Client(), constants.StatsCacheTTL*time.Second),
	}
}

type ToggleResult struct {
	Subscribed bool
	Message    string
}

// ToggleSubscription flips whether subscriberId follows channelId.
func (s *RelationService) ToggleSubscription(subscriberId, channelId int64) (*ToggleResult, error) {
	if subscriberId == channelId {
		return nil, errno.RequestErr.WithMessage("You cannot subscribe to your own channel")
	}
	exist, err := userdb.CheckUserExistById(s.ctx, channelId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "check channel %d failed: %v", channelId, err)
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("Channel not found")
	}

	removed, err := db.DeleteSubscription(s.ctx, subscriberId, channelId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "unsubscribe %d from %d failed: %v", subscriberId, channelId, err)
		return nil, errno.ServiceErr
	}
	if removed {
		s.emit(subscriberId, channelId, mq.ActionUnsubscribe)
		return &ToggleResult{Subscribed: false, Message: "Unsubscribed successfully"}, nil
	}

	err = db.CreateSubscription(s.ctx, &model.Subscription{
		SubscriptionId: utils.GenerateID(),
		SubscriberId:   subscriberId,
		ChannelId:      channelId,
	})
	switch {
	case err == nil:
		s.emit(subscriberId, channelId, mq.ActionSubscribe)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		hlog.CtxInfof(s.ctx, "concurrent subscribe %d to %d", subscriberId, channelId)
	default:
		hlog.CtxErrorf(s.ctx, "subscribe %d to %d failed: %v", subscriberId, channelId, err)
		return nil, errno.ServiceErr
	}
	return &ToggleResult{Subscribed: true, Message: "Subscribed successfully"}, nil
}

func (s *RelationService) GetUserChannelSubscribers(channelId int64) ([]*model.User, error) {
	ids, err := db.GetSubscriberIds(s.ctx, channelId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "list subscribers of %d failed: %v", channelId, err)
		return nil, errno.ServiceErr
	}
	return s.users(ids)
}

func (s *RelationService) GetSubscribedChannels(subscriberId int64) ([]*model.User, error) {
	ids, err := db.GetChannelIds(s.ctx, subscriberId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "list channels of %d failed: %v", subscriberId, err)
		return nil, errno.ServiceErr
	}
	return s.users(ids)
}

// users keeps the order of ids and skips accounts that no longer exist.
func (s *RelationService) users(ids []int64) ([]*model.User, error) {
	found, err := userdb.MGetUsers(s.ctx, ids)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "load users failed: %v", err)
		return nil, errno.ServiceErr
	}
	res := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := found[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

func (s *RelationService) emit(subscriberId, channelId int64, action string) {
	s.stats.InvalidateChannelStats(s.ctx, channelId)
	mq.EmitSubscriptionEvent(s.ctx, &mq.SubscriptionEvent{
		SubscriberID: subscriberId,
		ChannelID:    channelId,
		ActionType:   action,
		Timestamp:    time.Now().Unix(),
	})
}
