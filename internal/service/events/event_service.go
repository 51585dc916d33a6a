// Package events manages the organiser side of events: publishing, capacity
// changes, cancellation and the cached public listing.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/Domenick1991/eventbooking/internal/clock"
	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/notify"
	"github.com/Domenick1991/eventbooking/internal/repository"
	"github.com/Domenick1991/eventbooking/internal/service/access"
	"github.com/Domenick1991/eventbooking/internal/service/transitions"
)

type EventUseCase interface {
	Create(ctx context.Context, who domain.Identity, input CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	UpdateCapacity(ctx context.Context, who domain.Identity, id int64, capacity int) (*domain.Event, error)
	Cancel(ctx context.Context, who domain.Identity, id int64) (*domain.Event, error)
	ListAttendees(ctx context.Context, who domain.Identity, id int64) ([]domain.Ticket, error)
	Report(ctx context.Context, who domain.Identity, id int64, reason string) (*domain.EventFlag, error)
}

// Cache holds the public listing of active events. A nil slice from
// GetEvents is a miss.
type Cache interface {
	GetEvents(ctx context.Context) ([]domain.Event, error)
	SetEvents(ctx context.Context, events []domain.Event) error
	InvalidateEvents(ctx context.Context) error
}

type CapacityListener interface {
	OnCapacityFreed(ctx context.Context, eventID int64) int
}

type CreateEventInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	Capacity    int       `json:"capacity"`
	PriceCents  int64     `json:"price_cents"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Categories  []string  `json:"categories,omitempty"`
}

type EventService struct {
	store    repository.Store
	cache    Cache
	waitlist CapacityListener
	notifier *notify.Notifier
	clock    clock.Clock
	log      *slog.Logger
}

func NewEventService(
	store repository.Store,
	cache Cache,
	waitlist CapacityListener,
	notifier *notify.Notifier,
	clk clock.Clock,
	log *slog.Logger,
) *EventService {
	return &EventService{store: store, cache: cache, waitlist: waitlist, notifier: notifier, clock: clk, log: log}
}

func (s *EventService) Create(ctx context.Context, who domain.Identity, input CreateEventInput) (*domain.Event, error) {
	if err := access.Require(ctx, s.store, who); err != nil {
		return nil, err
	}
	if who.Role != domain.RoleOrganiser && who.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	now := s.clock.Now()
	if err := validateCreate(input, now); err != nil {
		return nil, err
	}

	event := &domain.Event{
		OrganiserID: who.UserID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Venue:       strings.TrimSpace(input.Venue),
		Capacity:    input.Capacity,
		PriceCents:  input.PriceCents,
		StartAt:     input.StartAt.UTC(),
		EndAt:       input.EndAt.UTC(),
		Status:      domain.EventStatusActive,
		CreatedAt:   now,
	}
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		if err := tx.CreateEvent(ctx, event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		for _, c := range normalizeCategories(input.Categories) {
			if err := tx.AddEventCategory(ctx, event.ID, c); err != nil {
				return fmt.Errorf("add category %q: %w", c, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "event created", slog.Int64("event_id", event.ID), slog.String("organiser_id", who.UserID))
	s.invalidate(ctx)
	return event, nil
}

func validateCreate(in CreateEventInput, now time.Time) error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return domain.Invalid("title", "required")
	case in.Capacity < 1 || in.Capacity > domain.MaxCapacity:
		return domain.Invalid("capacity", fmt.Sprintf("must be between 1 and %d", domain.MaxCapacity))
	case in.PriceCents < 0:
		return domain.Invalid("price_cents", "must not be negative")
	case in.StartAt.IsZero() || in.EndAt.IsZero():
		return domain.Invalid("start_at", "start and end are required")
	case !in.StartAt.Before(in.EndAt):
		return domain.Invalid("end_at", "must be after start_at")
	case !in.StartAt.After(now):
		return domain.Invalid("start_at", "must be in the future")
	}
	return nil
}

func normalizeCategories(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (s *EventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}
	return event, nil
}

// List returns active events ordered by start, served from the cache when
// it holds a copy.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetEvents(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	events, err := s.store.ListEvents(ctx, domain.EventStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.SetEvents(ctx, events); err != nil {
			s.log.WarnContext(ctx, "cache events", slog.String("error", err.Error()))
		}
	}
	return events, nil
}

// UpdateCapacity changes the capacity of an active event. It refuses to go
// below the tickets already held and tells the waitlist when it grows.
func (s *EventService) UpdateCapacity(ctx context.Context, who domain.Identity, id int64, capacity int) (*domain.Event, error) {
	if err := access.Require(ctx, s.store, who); err != nil {
		return nil, err
	}
	if capacity < 1 || capacity > domain.MaxCapacity {
		return nil, domain.Invalid("capacity", fmt.Sprintf("must be between 1 and %d", domain.MaxCapacity))
	}

	var (
		event  *domain.Event
		raised bool
	)
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		var err error
		event, err = tx.LockEvent(ctx, id)
		if err != nil {
			return fmt.Errorf("lock event %d: %w", id, err)
		}
		if !who.CanManage(event) {
			return domain.ErrForbidden
		}
		if event.Status != domain.EventStatusActive {
			return &domain.EventNotActiveError{Status: event.Status}
		}
		held, err := tx.CountHeldTickets(ctx, id)
		if err != nil {
			return fmt.Errorf("count held tickets: %w", err)
		}
		if capacity < held {
			return &domain.CapacityFloorError{Held: held, Requested: capacity}
		}
		now := s.clock.Now()
		if err := tx.UpdateEventCapacity(ctx, id, capacity, now); err != nil {
			return fmt.Errorf("update capacity: %w", err)
		}
		raised = capacity > event.Capacity
		event.Capacity, event.UpdatedAt = capacity, now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "capacity updated", slog.Int64("event_id", id), slog.Int("capacity", capacity))
	s.invalidate(ctx)
	if raised && s.waitlist != nil {
		s.waitlist.OnCapacityFreed(ctx, id)
	}
	return event, nil
}

// Cancel cancels an active event and every active ticket for it.
func (s *EventService) Cancel(ctx context.Context, who domain.Identity, id int64) (*domain.Event, error) {
	if err := access.Require(ctx, s.store, who); err != nil {
		return nil, err
	}

	var (
		event     *domain.Event
		cancelled []domain.Ticket
	)
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		var err error
		event, err = tx.LockEvent(ctx, id)
		if err != nil {
			return fmt.Errorf("lock event %d: %w", id, err)
		}
		if !who.CanManage(event) {
			return domain.ErrForbidden
		}
		cancelled, err = transitions.CancelEvent(ctx, tx, event, domain.TriggerEventCancel, s.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "event cancelled", slog.Int64("event_id", id), slog.Int("tickets", len(cancelled)))
	s.invalidate(ctx)
	holders := notify.Holders(cancelled)
	notes := make([]domain.Notification, 0, len(holders))
	for _, h := range holders {
		notes = append(notes, notify.EventCancelled(event, h))
	}
	s.notifier.Send(ctx, notes...)
	return event, nil
}

func (s *EventService) ListAttendees(ctx context.Context, who domain.Identity, id int64) ([]domain.Ticket, error) {
	if err := access.Require(ctx, s.store, who); err != nil {
		return nil, err
	}
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !who.CanManage(event) {
		return nil, domain.ErrForbidden
	}
	tickets, err := s.store.ListTickets(ctx, repository.TicketFilter{EventID: id})
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	return tickets, nil
}

// Report records a user's complaint about an event for moderators.
func (s *EventService) Report(ctx context.Context, who domain.Identity, id int64, reason string) (*domain.EventFlag, error) {
	if err := access.Require(ctx, s.store, who); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.Invalid("reason", "required")
	}
	flag := &domain.EventFlag{EventID: id, ReporterID: who.UserID, Reason: reason, CreatedAt: s.clock.Now()}
	if err := s.store.AddEventFlag(ctx, flag); err != nil {
		return nil, fmt.Errorf("report event %d: %w", id, err)
	}
	s.log.InfoContext(ctx, "event reported", slog.Int64("event_id", id), slog.String("reporter_id", who.UserID))
	return flag, nil
}

func (s *EventService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateEvents(ctx); err != nil {
		s.log.WarnContext(ctx, "invalidate events cache", slog.String("error", err.Error()))
	}
}

var _ EventUseCase = (*EventService)(nil)
