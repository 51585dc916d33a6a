// Package admin holds moderation operations that span many events.
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Domenick1991/eventbooking/internal/clock"
	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/notify"
	"github.com/Domenick1991/eventbooking/internal/repository"
	"github.com/Domenick1991/eventbooking/internal/service/access"
	"github.com/Domenick1991/eventbooking/internal/service/transitions"
)

type AdminUseCase interface {
	BanUser(ctx context.Context, who domain.Identity, userID string) (*BanResult, error)
}

type CapacityListener interface {
	OnCapacityFreed(ctx context.Context, eventID int64) int
}

// CacheInvalidator drops cached event listings.
type CacheInvalidator interface {
	InvalidateEvents(ctx context.Context) error
}

// BanResult summarises what a ban cascaded into.
type BanResult struct {
	UserID           string  `json:"user_id"`
	CancelledEvents  []int64 `json:"cancelled_events"`
	CancelledTickets int     `json:"cancelled_tickets"`
}

type AdminService struct {
	store    repository.Store
	waitlist CapacityListener
	cache    CacheInvalidator
	notifier *notify.Notifier
	clock    clock.Clock
	log      *slog.Logger
}

func NewAdminService(
	store repository.Store,
	waitlist CapacityListener,
	cache CacheInvalidator,
	notifier *notify.Notifier,
	clk clock.Clock,
	log *slog.Logger,
) *AdminService {
	return &AdminService{store: store, waitlist: waitlist, cache: cache, notifier: notifier, clock: clk, log: log}
}

type cancelledEvent struct {
	event   domain.Event
	tickets []domain.Ticket
}

// BanUser marks userID banned, cancels every active event they organise and
// every active ticket they hold, all in one transaction. Event rows are
// locked in ascending id order.
func (s *AdminService) BanUser(ctx context.Context, who domain.Identity, userID string) (*BanResult, error) {
	if err := access.Require(ctx, s.store, who); err != nil {
		return nil, err
	}
	if !who.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if userID == "" {
		return nil, domain.Invalid("user_id", "required")
	}
	if userID == who.UserID {
		return nil, domain.Invalid("user_id", "admins cannot ban themselves")
	}

	var (
		cancelled []cancelledEvent
		freed     []int64
		result    = &BanResult{UserID: userID, CancelledEvents: []int64{}}
	)
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		now := s.clock.Now()
		if err := tx.SetUserRole(ctx, userID, domain.RoleBanned); err != nil {
			return fmt.Errorf("set role: %w", err)
		}

		organised, err := tx.ListEventsByOrganiser(ctx, userID, domain.EventStatusActive)
		if err != nil {
			return fmt.Errorf("list organised events: %w", err)
		}
		held, err := tx.ListTickets(ctx, repository.TicketFilter{HolderID: userID, Status: domain.TicketStatusActive})
		if err != nil {
			return fmt.Errorf("list held tickets: %w", err)
		}

		ids := make(map[int64]struct{}, len(organised)+len(held))
		for _, e := range organised {
			ids[e.ID] = struct{}{}
		}
		for _, t := range held {
			ids[t.EventID] = struct{}{}
		}
		locked := make(map[int64]*domain.Event, len(ids))
		for _, id := range sortedIDs(ids) {
			e, err := tx.LockEvent(ctx, id)
			if err != nil {
				return fmt.Errorf("lock event %d: %w", id, err)
			}
			locked[id] = e
		}

		for _, id := range sortedIDs(ids) {
			e := locked[id]
			if e.OrganiserID != userID || e.Status != domain.EventStatusActive {
				continue
			}
			tickets, err := transitions.CancelEvent(ctx, tx, e, domain.TriggerEventCancel, now)
			if err != nil {
				return fmt.Errorf("cancel event %d: %w", id, err)
			}
			cancelled = append(cancelled, cancelledEvent{event: *e, tickets: tickets})
			result.CancelledEvents = append(result.CancelledEvents, id)
			result.CancelledTickets += len(tickets)
		}

		touched := make(map[int64]struct{})
		for _, t := range held {
			ticket, err := tx.LockTicket(ctx, t.ID)
			if err != nil {
				return fmt.Errorf("lock ticket %d: %w", t.ID, err)
			}
			if ticket.Status != domain.TicketStatusActive {
				continue
			}
			err = transitions.ApplyTicket(ctx, tx, ticket, domain.Transition{
				Trigger: domain.TriggerHolderBanned,
				Event:   *locked[ticket.EventID],
				Now:     now,
			})
			if err != nil {
				return fmt.Errorf("cancel ticket %d: %w", ticket.ID, err)
			}
			touched[ticket.EventID] = struct{}{}
			result.CancelledTickets++
		}
		freed = sortedIDs(touched)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user banned",
		slog.String("user_id", userID), slog.String("by", who.UserID),
		slog.Int("events", len(result.CancelledEvents)), slog.Int("tickets", result.CancelledTickets))

	if s.cache != nil && len(result.CancelledEvents) > 0 {
		if err := s.cache.InvalidateEvents(ctx); err != nil {
			s.log.WarnContext(ctx, "invalidate events cache", slog.String("error", err.Error()))
		}
	}
	for _, c := range cancelled {
		holders := notify.Holders(c.tickets)
		notes := make([]domain.Notification, 0, len(holders))
		for _, h := range holders {
			notes = append(notes, notify.EventCancelled(&c.event, h))
		}
		s.notifier.Send(ctx, notes...)
	}
	for _, id := range freed {
		s.waitlist.OnCapacityFreed(ctx, id)
	}
	return result, nil
}

func sortedIDs(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var _ AdminUseCase = (*AdminService)(nil)
