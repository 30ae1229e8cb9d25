package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

// ErrMalformedEvent marks messages that can never be processed; they are
// dropped instead of requeued.
var ErrMalformedEvent = errors.New("malformed event")

// ErrDeliveriesClosed is reported when the broker stops delivering to a queue.
var ErrDeliveriesClosed = errors.New("delivery channel closed")

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	stopped chan error
}

type LikeEventHandler interface {
	HandleLikeEvent(ctx context.Context, event *LikeEvent) error
}

type SubscriptionEventHandler interface {
	HandleSubscriptionEvent(ctx context.Context, event *SubscriptionEvent) error
}

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// 设置QoS，限制未确认消息数量
	if err = ch.Qos(10, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}
	return &Consumer{conn: conn, channel: ch, stopped: make(chan error, 2)}, nil
}

func (c *Consumer) ConsumeLikeEvents(ctx context.Context, handler LikeEventHandler) error {
	return c.consume(ctx, LikeEventQueue, func(ctx context.Context, body []byte) error {
		var event LikeEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
		}
		return handler.HandleLikeEvent(ctx, &event)
	})
}

func (c *Consumer) ConsumeSubscriptionEvents(ctx context.Context, handler SubscriptionEventHandler) error {
	return c.consume(ctx, SubscriptionEventQueue, func(ctx context.Context, body []byte) error {
		var event SubscriptionEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
		}
		return handler.HandleSubscriptionEvent(ctx, &event)
	})
}

func (c *Consumer) consume(ctx context.Context, queue string, process func(context.Context, []byte) error) error {
	if _, err := c.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	msgs, err := c.channel.Consume(
		queue,
		"",    // consumer
		false, // auto-ack, 手动确认
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	go func() {
		if err := deliver(ctx, queue, msgs, process); err != nil {
			select {
			case c.stopped <- fmt.Errorf("consumer of %s: %w", queue, err):
			default:
			}
		}
	}()
	return nil
}

// Stopped yields an error once any queue stops delivering; the process
// should exit and be restarted.
func (c *Consumer) Stopped() <-chan error {
	return c.stopped
}

// deliver settles messages until ctx ends (nil) or msgs closes.
func deliver(ctx context.Context, queue string, msgs <-chan amqp091.Delivery, process func(context.Context, []byte) error) error {
	for {
		select {
		case <-ctx.Done():
			hlog.Infof("consumer of %s context cancelled", queue)
			return nil
		case d, ok := <-msgs:
			if !ok {
				hlog.Errorf("consumer of %s channel closed", queue)
				return ErrDeliveriesClosed
			}
			settle(ctx, queue, d, process(ctx, d.Body))
		}
	}
}

// settle acks processed messages, drops malformed ones and requeues the rest.
func settle(ctx context.Context, queue string, d acknowledger, err error) {
	var ackErr error
	switch {
	case err == nil:
		ackErr = d.Ack(false)
	case errors.Is(err, ErrMalformedEvent):
		hlog.CtxErrorf(ctx, "drop message from %s: %v", queue, err)
		ackErr = d.Nack(false, false)
	default:
		hlog.CtxErrorf(ctx, "handle message from %s failed: %v", queue, err)
		ackErr = d.Nack(false, true)
	}
	if ackErr != nil {
		hlog.CtxWarnf(ctx, "settle message from %s failed: %v", queue, ackErr)
	}
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
