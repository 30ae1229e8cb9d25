package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"VideoTube.com/cmd/dal"
	"VideoTube.com/cmd/dashboard/service"
	"VideoTube.com/config"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/database"
	"VideoTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// consumer keeps derived state in step with the like and subscription
// events published by the api.
func main() {
	config.Init()
	conn, err := database.Open()
	if err != nil {
		hlog.Fatalf("init database failed: %v", err)
	}
	dal.Init(conn)
	cache.Load()

	consumer, err := mq.NewConsumer(mq.URL())
	if err != nil {
		hlog.Fatalf("connect rabbitmq failed: %v", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := service.NewStatsInvalidator()
	if err = consumer.ConsumeLikeEvents(ctx, handler); err != nil {
		hlog.Fatalf("consume like events failed: %v", err)
	}
	if err = consumer.ConsumeSubscriptionEvents(ctx, handler); err != nil {
		hlog.Fatalf("consume subscription events failed: %v", err)
	}

	hlog.Info("Waiting for events. To exit press CTRL+C")
	select {
	case <-ctx.Done():
	case err = <-consumer.Stopped():
		consumer.Close()
		hlog.Fatalf("stop consuming: %v", err)
	}
}
