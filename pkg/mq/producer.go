package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

// Publisher is what the toggle services notify after a state change.
type Publisher interface {
	PublishLikeEvent(ctx context.Context, event *LikeEvent) error
	PublishSubscriptionEvent(ctx context.Context, event *SubscriptionEvent) error
}

type Producer struct {
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}
	if err := producer.setupTopology(); err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}
	return producer, nil
}

func (p *Producer) setupTopology() error {
	bindings := map[string]string{
		LikeEventExchange:         LikeEventQueue,
		SubscriptionEventExchange: SubscriptionEventQueue,
	}
	for exchange, queue := range bindings {
		if err := p.channel.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
		}
		if _, err := p.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}
		if err := p.channel.QueueBind(queue, "", exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue %s: %w", queue, err)
		}
	}
	return nil
}

func (p *Producer) publish(ctx context.Context, exchange string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(
		ctx,
		exchange,
		"",
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", exchange, err)
	}
	return nil
}

func (p *Producer) PublishLikeEvent(ctx context.Context, event *LikeEvent) error {
	fillLikeEvent(event)
	if err := p.publish(ctx, LikeEventExchange, event); err != nil {
		return err
	}
	hlog.CtxDebugf(ctx, "Published like event: %+v", event)
	return nil
}

func (p *Producer) PublishSubscriptionEvent(ctx context.Context, event *SubscriptionEvent) error {
	fillSubscriptionEvent(event)
	if err := p.publish(ctx, SubscriptionEventExchange, event); err != nil {
		return err
	}
	hlog.CtxDebugf(ctx, "Published subscription event: %+v", event)
	return nil
}

func (p *Producer) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func fillLikeEvent(e *LikeEvent) {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.Timestamp == 0 {
		e.Timestamp = time.Now().Unix()
	}
}

func fillSubscriptionEvent(e *SubscriptionEvent) {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.Timestamp == 0 {
		e.Timestamp = time.Now().Unix()
	}
}
