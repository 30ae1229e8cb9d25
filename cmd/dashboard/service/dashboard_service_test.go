package service

import (
	"context"
	"fmt"
	"testing"

	"VideoTube.com/cmd/dal"
	"VideoTube.com/cmd/dashboard/dal/db"
	"VideoTube.com/cmd/model"
	relationservice "VideoTube.com/cmd/relation/service"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/mq"
	"VideoTube.com/pkg/testutil"
	"VideoTube.com/pkg/utils"
)

func TestDashboard(t *testing.T) {
	conn := testutil.NewDB(t)
	db.Init(conn)
	cache.SetClient(nil)
	s := NewDashboardService(context.Background())

	stats, err := s.GetChannelStats(1)
	if err != nil {
		t.Fatalf("GetChannelStats: %v", err)
	}
	if stats.TotalVideos != 0 || stats.TotalViews != 0 || stats.TotalLikes != 0 || stats.TotalSubscribers != 0 {
		t.Fatalf("new channel must report zeros, got %+v", stats)
	}

	for i := int64(1); i <= 12; i++ {
		testutil.SeedVideo(t, conn, &model.Video{VideoId: i, UserId: 1, Title: fmt.Sprint("v", i), ViewCount: 2, IsPublished: i%2 == 0})
	}
	res, err := s.GetChannelVideos(1, utils.NewPage("2", "5"))
	if err != nil {
		t.Fatalf("GetChannelVideos: %v", err)
	}
	if res.TotalVideos != 12 || res.TotalPages != 3 || res.CurrentPage != 2 || len(res.Videos) != 5 {
		t.Fatalf("unexpected page %+v", res)
	}

	stats, _ = s.GetChannelStats(1)
	if stats.TotalVideos != 12 || stats.TotalViews != 24 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestStatsInvalidator(t *testing.T) {
	conn := testutil.NewDB(t)
	db.Init(conn)
	cache.SetClient(nil)
	testutil.SeedVideo(t, conn, &model.Video{VideoId: 5, UserId: 3, Title: "x", IsPublished: true})
	h := NewStatsInvalidator()
	ctx := context.Background()

	events := []*mq.LikeEvent{
		{TargetType: "video", TargetID: 5, ActionType: mq.ActionLike},
		{TargetType: "video", TargetID: 404, ActionType: mq.ActionUnlike},
		{TargetType: "tweet", TargetID: 5, ActionType: mq.ActionLike},
	}
	for _, e := range events {
		if err := h.HandleLikeEvent(ctx, e); err != nil {
			t.Fatalf("HandleLikeEvent(%+v): %v", e, err)
		}
	}
	if err := h.HandleSubscriptionEvent(ctx, &mq.SubscriptionEvent{SubscriberID: 1, ChannelID: 3}); err != nil {
		t.Fatalf("HandleSubscriptionEvent: %v", err)
	}
	owner, err := db.GetVideoOwnerId(ctx, 5)
	if err != nil || owner != 3 {
		t.Fatalf("owner=%d err=%v", owner, err)
	}
}

func TestStatsInvalidatorDropsCachedStats(t *testing.T) {
	conn := testutil.NewDB(t)
	db.Init(conn)
	mr := testutil.NewRedis(t)
	testutil.SeedVideo(t, conn, &model.Video{VideoId: 5, UserId: 3, Title: "x", IsPublished: true})
	h := NewStatsInvalidator()
	ctx := context.Background()
	key := fmt.Sprintf(cache.ChannelStatsKey, 3)

	_ = mr.Set(key, "{}")
	if err := h.HandleLikeEvent(ctx, &mq.LikeEvent{TargetType: "tweet", TargetID: 5}); err != nil || !mr.Exists(key) {
		t.Fatalf("tweet like must leave channel stats alone: %v", err)
	}
	if err := h.HandleLikeEvent(ctx, &mq.LikeEvent{TargetType: "video", TargetID: 5}); err != nil || mr.Exists(key) {
		t.Fatalf("video like must drop channel stats: %v", err)
	}
	_ = mr.Set(key, "{}")
	if err := h.HandleSubscriptionEvent(ctx, &mq.SubscriptionEvent{SubscriberID: 1, ChannelID: 3}); err != nil || mr.Exists(key) {
		t.Fatalf("subscription must drop channel stats: %v", err)
	}
}

func TestCachedStatsRefreshAfterSubscription(t *testing.T) {
	conn := testutil.NewDB(t)
	dal.Init(conn)
	testutil.NewRedis(t)
	testutil.SeedUser(t, conn, 1, "alice")
	testutil.SeedUser(t, conn, 2, "bob")
	s := NewDashboardService(context.Background())

	stats, err := s.GetChannelStats(1)
	if err != nil || stats.TotalVideos != 0 || stats.TotalSubscribers != 0 {
		t.Fatalf("initial stats: %+v %v", stats, err)
	}

	// written behind the service's back, so only a cache miss can see it
	testutil.SeedVideo(t, conn, &model.Video{VideoId: 1, UserId: 1, Title: "a", IsPublished: true})
	stats, _ = s.GetChannelStats(1)
	if stats.TotalVideos != 0 {
		t.Fatalf("expected the cached stats, got %+v", stats)
	}

	if _, err = relationservice.NewRelationService(context.Background()).ToggleSubscription(2, 1); err != nil {
		t.Fatalf("ToggleSubscription: %v", err)
	}
	stats, _ = s.GetChannelStats(1)
	if stats.TotalVideos != 1 || stats.TotalSubscribers != 1 {
		t.Fatalf("stats not refreshed after subscribing: %+v", stats)
	}
}
