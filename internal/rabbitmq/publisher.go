// Package rabbitmq is the alternative notification broker.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/eventbooking/internal/notify"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "eventbooking"
	ExchangeKind = "topic"
	QueueName    = "eventbooking.notifications"
	RoutingKey   = "notification.created"
)

type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	log     *slog.Logger
}

func NewPublisher(url string, log *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	return &Publisher{conn: conn, channel: ch, log: log}, nil
}

func (p *Publisher) PublishNotification(ctx context.Context, m notify.Message) error {
	pub, err := Encode(m)
	if err != nil {
		return err
	}
	if err := p.channel.PublishWithContext(ctx, ExchangeName, RoutingKey, false, false, pub); err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	p.log.DebugContext(ctx, "published to rabbitmq", slog.String("routing_key", RoutingKey), slog.Int64("notification_id", m.ID))
	return nil
}

// Encode builds the persistent AMQP message for m.
func Encode(m notify.Message) (amqp.Publishing, error) {
	body, err := json.Marshal(m)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal payload: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    fmt.Sprint(m.ID),
		Timestamp:    m.CreatedAt,
		Body:         body,
	}, nil
}

func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

var _ notify.Publisher = (*Publisher)(nil)
