// Package waitlist keeps the advisory interest list for full events and
// tells interested users when a slot frees. Entries never reserve a slot:
// whoever books first after the notification wins.
package waitlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/eventbooking/internal/clock"
	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/notify"
	"github.com/Domenick1991/eventbooking/internal/repository"
	"github.com/Domenick1991/eventbooking/internal/service/access"
)

type WaitlistUseCase interface {
	Join(ctx context.Context, who domain.Identity, eventID int64) (bool, error)
	Leave(ctx context.Context, who domain.Identity, eventID int64) error
	OnCapacityFreed(ctx context.Context, eventID int64) int
}

type WaitlistService struct {
	store    repository.Repository
	notifier *notify.Notifier
	clock    clock.Clock
	log      *slog.Logger
}

func NewWaitlistService(store repository.Repository, notifier *notify.Notifier, clk clock.Clock, log *slog.Logger) *WaitlistService {
	return &WaitlistService{store: store, notifier: notifier, clock: clk, log: log}
}

// Join adds the caller to the event's waitlist. Joining twice is a no-op and
// reports false.
func (s *WaitlistService) Join(ctx context.Context, who domain.Identity, eventID int64) (bool, error) {
	if err := access.Require(ctx, s.store, who); err != nil {
		return false, err
	}
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return false, fmt.Errorf("join waitlist: %w", err)
	}
	added, err := s.store.AddWaitlistEntry(ctx, domain.WaitlistEntry{
		EventID:  eventID,
		UserID:   who.UserID,
		JoinedAt: s.clock.Now(),
	})
	if err != nil {
		return false, fmt.Errorf("join waitlist: %w", err)
	}
	return added, nil
}

func (s *WaitlistService) Leave(ctx context.Context, who domain.Identity, eventID int64) error {
	if err := access.Require(ctx, s.store, who); err != nil {
		return err
	}
	if _, err := s.store.RemoveWaitlistEntry(ctx, eventID, who.UserID); err != nil {
		return fmt.Errorf("leave waitlist: %w", err)
	}
	return nil
}

// OnCapacityFreed tells every user on the waitlist that a slot opened. The
// entries stay; a user leaves the list by booking or leaving. It returns the
// number of notifications created.
func (s *WaitlistService) OnCapacityFreed(ctx context.Context, eventID int64) int {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		s.log.WarnContext(ctx, "waitlist: load event", slog.Int64("event_id", eventID), slog.String("error", err.Error()))
		return 0
	}
	if event.Bookable(s.clock.Now()) != nil {
		return 0
	}
	entries, err := s.store.ListWaitlist(ctx, eventID)
	if err != nil {
		s.log.WarnContext(ctx, "waitlist: list entries", slog.Int64("event_id", eventID), slog.String("error", err.Error()))
		return 0
	}

	notes := make([]domain.Notification, 0, len(entries))
	for _, e := range entries {
		notes = append(notes, notify.SpotAvailable(event, e.UserID))
	}
	sent := s.notifier.Send(ctx, notes...)
	if sent > 0 {
		s.log.InfoContext(ctx, "waitlist notified", slog.Int64("event_id", eventID), slog.Int("users", sent))
	}
	return sent
}

var _ WaitlistUseCase = (*WaitlistService)(nil)
