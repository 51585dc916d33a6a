// Package transitions applies the ticket and event state machines to
// storage. Every function expects a transaction-scoped repository and rows
// that the caller has already locked.
package transitions

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/repository"
)

// ApplyTicket runs tr against t and persists the new status. t is updated
// in place on success.
func ApplyTicket(ctx context.Context, tx repository.Repository, t *domain.Ticket, tr domain.Transition) error {
	next, err := t.Status.Next(tr)
	if err != nil {
		return err
	}
	reason := t.CancelReason
	if next == domain.TicketStatusCancelled {
		reason = tr.Reason
		if reason == "" {
			reason = string(tr.Trigger)
		}
	}
	if err := tx.UpdateTicketStatus(ctx, t.ID, next, reason, tr.Now); err != nil {
		return fmt.Errorf("update ticket %d: %w", t.ID, err)
	}
	t.Status, t.CancelReason, t.UpdatedAt = next, reason, tr.Now
	return nil
}

// CancelEvent moves a locked event to cancelled together with its active
// tickets and returns the tickets it cancelled.
func CancelEvent(ctx context.Context, tx repository.Repository, e *domain.Event, trigger domain.TicketTrigger, now time.Time) ([]domain.Ticket, error) {
	if _, err := e.Status.Next(domain.EventStatusCancelled); err != nil {
		return nil, err
	}
	return moveEvent(ctx, tx, e, domain.EventStatusCancelled, domain.Transition{
		Trigger: trigger,
		Event:   *e,
		Now:     now,
		Reason:  string(trigger),
	})
}

// CompleteEvent moves an ended, locked event to completed and completes its
// active tickets.
func CompleteEvent(ctx context.Context, tx repository.Repository, e *domain.Event, now time.Time) ([]domain.Ticket, error) {
	if _, err := e.Status.Next(domain.EventStatusCompleted); err != nil {
		return nil, err
	}
	if !e.Ended(now) {
		return nil, domain.Invalid("end_at", "event has not ended")
	}
	return moveEvent(ctx, tx, e, domain.EventStatusCompleted, domain.Transition{
		Trigger: domain.TriggerComplete,
		Event:   *e,
		Now:     now,
	})
}

func moveEvent(ctx context.Context, tx repository.Repository, e *domain.Event, to domain.EventStatus, tr domain.Transition) ([]domain.Ticket, error) {
	ticketStatus, err := domain.TicketStatusActive.Next(tr)
	if err != nil {
		return nil, err
	}
	reason := ""
	if ticketStatus == domain.TicketStatusCancelled {
		reason = tr.Reason
	}

	if err := tx.UpdateEventStatus(ctx, e.ID, to, tr.Now); err != nil {
		return nil, fmt.Errorf("update event %d: %w", e.ID, err)
	}
	moved, err := tx.TransitionActiveTickets(ctx, e.ID, ticketStatus, reason, tr.Now)
	if err != nil {
		return nil, fmt.Errorf("transition tickets of event %d: %w", e.ID, err)
	}
	e.Status, e.StatusChangedAt, e.UpdatedAt = to, tr.Now, tr.Now
	return moved, nil
}
