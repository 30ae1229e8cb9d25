package db

import (
	"context"
	"errors"
	"testing"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/testutil"
	"gorm.io/gorm"
)

func TestSubscriptionRows(t *testing.T) {
	ctx := context.Background()
	Init(testutil.NewDB(t))

	for i, pair := range [][2]int64{{1, 3}, {2, 3}, {1, 4}} {
		err := CreateSubscription(ctx, &model.Subscription{SubscriptionId: int64(i + 1), SubscriberId: pair[0], ChannelId: pair[1]})
		if err != nil {
			t.Fatalf("CreateSubscription: %v", err)
		}
	}
	err := CreateSubscription(ctx, &model.Subscription{SubscriptionId: 9, SubscriberId: 1, ChannelId: 3})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated key, got %v", err)
	}

	subscribers, err := GetSubscriberIds(ctx, 3)
	if err != nil || len(subscribers) != 2 {
		t.Fatalf("subscribers=%v err=%v", subscribers, err)
	}
	channels, err := GetChannelIds(ctx, 1)
	if err != nil || len(channels) != 2 {
		t.Fatalf("channels=%v err=%v", channels, err)
	}
	if n, _ := CountSubscribers(ctx, 3); n != 2 {
		t.Fatalf("expected 2 subscribers, got %d", n)
	}

	removed, err := DeleteSubscription(ctx, 1, 3)
	if err != nil || !removed {
		t.Fatalf("removed=%v err=%v", removed, err)
	}
	if removed, _ = DeleteSubscription(ctx, 1, 3); removed {
		t.Fatal("second delete must not remove anything")
	}
}
