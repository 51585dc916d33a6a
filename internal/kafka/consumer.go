package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/eventbooking/internal/notify"
	"github.com/segmentio/kafka-go"
)

// messageReader is the part of *kafka.Reader the consumer drives.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	defaultRetryBase = time.Second
	defaultRetryMax  = 30 * time.Second
)

type Consumer struct {
	reader    messageReader
	log       *slog.Logger
	retryBase time.Duration
	retryMax  time.Duration
}

type ConsumerOption func(*Consumer)

// WithRetryBackoff sets the first and the longest pause between attempts to
// handle a message that failed.
func WithRetryBackoff(base, max time.Duration) ConsumerOption {
	return func(c *Consumer) {
		if base > 0 {
			c.retryBase = base
		}
		if max >= c.retryBase {
			c.retryMax = max
		}
	}
}

func NewConsumer(brokers []string, groupID, topic string, log *slog.Logger, opts ...ConsumerOption) *Consumer {
	return newConsumer(kafka.NewReader(kafka.ReaderConfig{
		Brokers:           brokers,
		GroupID:           groupID,
		Topic:             topic,
		HeartbeatInterval: 3 * time.Second,
		SessionTimeout:    30 * time.Second,
	}), log, opts...)
}

func newConsumer(reader messageReader, log *slog.Logger, opts ...ConsumerOption) *Consumer {
	c := &Consumer{reader: reader, log: log, retryBase: defaultRetryBase, retryMax: defaultRetryMax}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume commits a message only after handler accepted it. A failing
// message is retried with backoff until it goes through or ctx ends.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, kafka.Message) error) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}

		if err := c.handle(ctx, msg, handler); err != nil {
			return err
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("commit offset %d: %w", msg.Offset, err)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg kafka.Message, handler func(context.Context, kafka.Message) error) error {
	delay := c.retryBase
	for attempt := 1; ; attempt++ {
		err := handler(ctx, msg)
		if err == nil {
			return nil
		}
		c.log.WarnContext(ctx, "handle message failed, retrying",
			slog.Int64("offset", msg.Offset),
			slog.Int("attempt", attempt),
			slog.Duration("backoff", delay),
			slog.String("error", err.Error()),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("handle message at offset %d: %w", msg.Offset, ctx.Err())
		case <-timer.C:
		}
		delay = min(delay*2, c.retryMax)
	}
}

// ConsumeNotifications decodes each message as a notify.Message. Messages
// that do not decode are logged and skipped.
func (c *Consumer) ConsumeNotifications(ctx context.Context, handle func(context.Context, notify.Message) error) error {
	return c.Consume(ctx, NotificationHandler(c.log, handle))
}

func NotificationHandler(log *slog.Logger, handle func(context.Context, notify.Message) error) func(context.Context, kafka.Message) error {
	return func(ctx context.Context, msg kafka.Message) error {
		var m notify.Message
		if err := json.Unmarshal(msg.Value, &m); err != nil {
			log.WarnContext(ctx, "skip undecodable notification",
				slog.Int64("offset", msg.Offset), slog.String("error", err.Error()))
			return nil
		}
		return handle(ctx, m)
	}
}
