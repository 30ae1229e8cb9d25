package mq

import (
	"context"
	"fmt"

	"VideoTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var defaultPublisher Publisher

// Init connects the process wide producer. Without a broker the toggles
// still work; events are simply not emitted.
func Init() (*Producer, error) {
	cfg := config.ConfigInfo.RabbitMq
	if cfg.Addr == "" {
		hlog.Warn("rabbitmq.addr is empty, domain events disabled")
		return nil, nil
	}
	p, err := NewProducer(URL())
	if err != nil {
		return nil, err
	}
	defaultPublisher = p
	return p, nil
}

// URL is the broker address built from config.
func URL() string {
	cfg := config.ConfigInfo.RabbitMq
	return fmt.Sprintf("amqp://%s:%s@%s/", cfg.Username, cfg.Password, cfg.Addr)
}

// SetPublisher replaces the process wide publisher; nil disables events.
func SetPublisher(p Publisher) {
	defaultPublisher = p
}

// EmitLikeEvent publishes best effort; failures are logged, never returned.
func EmitLikeEvent(ctx context.Context, event *LikeEvent) {
	if defaultPublisher == nil {
		return
	}
	if err := defaultPublisher.PublishLikeEvent(ctx, event); err != nil {
		hlog.CtxWarnf(ctx, "publish like event failed: %v", err)
	}
}

func EmitSubscriptionEvent(ctx context.Context, event *SubscriptionEvent) {
	if defaultPublisher == nil {
		return
	}
	if err := defaultPublisher.PublishSubscriptionEvent(ctx, event); err != nil {
		hlog.CtxWarnf(ctx, "publish subscription event failed: %v", err)
	}
}
