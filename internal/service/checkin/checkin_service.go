// Package checkin validates ticket codes scanned at the door.
package checkin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Domenick1991/eventbooking/internal/clock"
	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/repository"
	"github.com/Domenick1991/eventbooking/internal/service/access"
	"github.com/Domenick1991/eventbooking/internal/service/transitions"
)

type CheckInUseCase interface {
	CheckIn(ctx context.Context, who domain.Identity, eventID int64, code string) (*domain.Ticket, error)
}

type CheckInService struct {
	store repository.Store
	clock clock.Clock
	log   *slog.Logger
}

func NewCheckInService(store repository.Store, clk clock.Clock, log *slog.Logger) *CheckInService {
	return &CheckInService{store: store, clock: clk, log: log}
}

var errTicketNotFound = fmt.Errorf("ticket: %w", domain.ErrNotFound)

// CheckIn redeems code for eventID. Only the ticket row is locked, so two
// scans of one code serialize and the second sees the ticket completed.
func (s *CheckInService) CheckIn(ctx context.Context, who domain.Identity, eventID int64, code string) (*domain.Ticket, error) {
	if err := access.Require(ctx, s.store, who); err != nil {
		return nil, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.Invalid("code", "required")
	}
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event %d: %w", eventID, err)
	}
	if !who.CanManage(event) {
		return nil, domain.ErrForbidden
	}

	var ticket *domain.Ticket
	err = s.store.WithinTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		var err error
		ticket, err = tx.LockTicketByCode(ctx, code)
		if errors.Is(err, domain.ErrNotFound) {
			return errTicketNotFound
		}
		if err != nil {
			return fmt.Errorf("lock ticket: %w", err)
		}
		if ticket.EventID != eventID {
			return errTicketNotFound
		}

		switch ticket.Status {
		case domain.TicketStatusCompleted:
			return &domain.AlreadyCheckedInError{TicketID: ticket.ID, HolderID: ticket.HolderID}
		case domain.TicketStatusCancelled:
			return domain.ErrTicketCancelled
		}

		current, err := tx.GetEvent(ctx, eventID)
		if err != nil {
			return fmt.Errorf("get event %d: %w", eventID, err)
		}
		return transitions.ApplyTicket(ctx, tx, ticket, domain.Transition{
			Trigger: domain.TriggerCheckIn,
			Event:   *current,
			Now:     s.clock.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "ticket checked in",
		slog.Int64("event_id", eventID), slog.Int64("ticket_id", ticket.ID), slog.String("holder_id", ticket.HolderID))
	return ticket, nil
}

var _ CheckInUseCase = (*CheckInService)(nil)
