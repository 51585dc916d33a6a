// Package notify creates notification records and hands them to the
// delivery broker. Delivery itself happens in the worker.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/eventbooking/internal/clock"
	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/repository"
)

// Sink accepts one notification. Implementations fill ID and CreatedAt.
type Sink interface {
	Notify(ctx context.Context, n *domain.Notification) error
}

type SinkFunc func(ctx context.Context, n *domain.Notification) error

func (f SinkFunc) Notify(ctx context.Context, n *domain.Notification) error { return f(ctx, n) }

// Message is the broker payload for a stored notification.
type Message struct {
	ID          int64             `json:"id"`
	RecipientID string            `json:"recipient_id"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	EntityType  domain.EntityType `json:"entity_type,omitempty"`
	EntityID    int64             `json:"entity_id,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

func MessageOf(n *domain.Notification) Message {
	return Message{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Title:       n.Title,
		Body:        n.Body,
		EntityType:  n.EntityType,
		EntityID:    n.EntityID,
		CreatedAt:   n.CreatedAt,
	}
}

// Publisher forwards a stored notification to the delivery broker.
type Publisher interface {
	PublishNotification(ctx context.Context, m Message) error
}

// Mailbox stores notifications and, when a publisher is set, forwards them
// for delivery. A failed publish is logged; the stored record stays.
type Mailbox struct {
	store     repository.Repository
	clock     clock.Clock
	publisher Publisher
	log       *slog.Logger
}

type MailboxOption func(*Mailbox)

func WithPublisher(p Publisher) MailboxOption {
	return func(m *Mailbox) { m.publisher = p }
}

func NewMailbox(store repository.Repository, clk clock.Clock, log *slog.Logger, opts ...MailboxOption) *Mailbox {
	m := &Mailbox{store: store, clock: clk, log: log}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Mailbox) Notify(ctx context.Context, n *domain.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = m.clock.Now()
	}
	if err := m.store.InsertNotification(ctx, n); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}
	if m.publisher != nil {
		if err := m.publisher.PublishNotification(ctx, MessageOf(n)); err != nil {
			m.log.WarnContext(ctx, "publish notification failed",
				slog.Int64("notification_id", n.ID), slog.String("error", err.Error()))
		}
	}
	return nil
}

// Notifier sends notifications after a mutation has committed. Errors are
// logged and swallowed so they never undo the mutation.
type Notifier struct {
	sink Sink
	log  *slog.Logger
}

func NewNotifier(sink Sink, log *slog.Logger) *Notifier {
	return &Notifier{sink: sink, log: log}
}

// Send delivers every notification independently and returns how many were
// accepted.
func (n *Notifier) Send(ctx context.Context, notes ...domain.Notification) int {
	if n == nil || n.sink == nil {
		return 0
	}
	sent := 0
	for i := range notes {
		if err := n.sink.Notify(ctx, &notes[i]); err != nil {
			n.log.WarnContext(ctx, "notification dropped",
				slog.String("recipient_id", notes[i].RecipientID),
				slog.String("title", notes[i].Title),
				slog.String("error", err.Error()))
			continue
		}
		sent++
	}
	return sent
}

var (
	_ Sink = (*Mailbox)(nil)
	_ Sink = SinkFunc(nil)
)
