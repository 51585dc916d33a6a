// Package lifecycle runs the time-driven sweeps: completing ended events,
// sending reminders and deleting cancelled rows after retention. Every
// sweep handles one row per transaction and can be re-run safely.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/Domenick1991/eventbooking/internal/clock"
	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/notify"
	"github.com/Domenick1991/eventbooking/internal/repository"
	"github.com/Domenick1991/eventbooking/internal/service/transitions"
)

const (
	DefaultReminderTolerance = 10 * time.Minute
	DefaultRetention         = 7 * 24 * time.Hour
)

// Windows are the reminder slots checked by the reminder sweep.
var Windows = []domain.ReminderWindow{domain.ReminderDayBefore, domain.ReminderHourBefore}

type SweepUseCase interface {
	Complete(ctx context.Context) (Result, error)
	Remind(ctx context.Context) (Result, error)
	CleanupEvents(ctx context.Context) (Result, error)
	CleanupTickets(ctx context.Context) (Result, error)
}

// CacheInvalidator drops cached event listings.
type CacheInvalidator interface {
	InvalidateEvents(ctx context.Context) error
}

// Result counts what one sweep run did. Failed rows were logged and left for
// the next run.
type Result struct {
	Sweep    string `json:"sweep"`
	Matched  int    `json:"matched"`
	Changed  int    `json:"changed"`
	Notified int    `json:"notified"`
	Failed   int    `json:"failed"`
}

type Config struct {
	ReminderTolerance time.Duration
	Retention         time.Duration
}

type Sweeper struct {
	store    repository.Store
	notifier *notify.Notifier
	cache    CacheInvalidator
	clock    clock.Clock
	log      *slog.Logger
	cfg      Config
}

func NewSweeper(store repository.Store, notifier *notify.Notifier, cache CacheInvalidator, clk clock.Clock, log *slog.Logger, cfg Config) *Sweeper {
	if cfg.ReminderTolerance <= 0 {
		cfg.ReminderTolerance = DefaultReminderTolerance
	}
	if cfg.Retention <= 0 {
		cfg.Retention = DefaultRetention
	}
	return &Sweeper{store: store, notifier: notifier, cache: cache, clock: clk, log: log, cfg: cfg}
}

func (s *Sweeper) rowFailed(ctx context.Context, res *Result, kind string, id int64, err error) {
	res.Failed++
	s.log.WarnContext(ctx, "sweep row failed",
		slog.String("sweep", res.Sweep), slog.Int64(kind, id), slog.String("error", err.Error()))
}

func (s *Sweeper) done(ctx context.Context, res Result) Result {
	if res.Changed > 0 || res.Failed > 0 {
		s.log.InfoContext(ctx, "sweep finished",
			slog.String("sweep", res.Sweep), slog.Int("matched", res.Matched), slog.Int("changed", res.Changed),
			slog.Int("notified", res.Notified), slog.Int("failed", res.Failed))
	}
	return res
}

// Complete moves every active event whose end has passed to completed,
// completes its active tickets and thanks each holder of a held ticket once,
// including those already checked in.
func (s *Sweeper) Complete(ctx context.Context) (Result, error) {
	res := Result{Sweep: "completion"}
	now := s.clock.Now()
	ids, err := s.store.ListEndedActiveEventIDs(ctx, now)
	if err != nil {
		return res, fmt.Errorf("list ended events: %w", err)
	}
	res.Matched = len(ids)

	for _, id := range ids {
		var (
			event    *domain.Event
			attended []domain.Ticket
			changed  bool
		)
		err := s.store.WithinTx(ctx, func(ctx context.Context, tx repository.Repository) error {
			var err error
			event, err = tx.LockEvent(ctx, id)
			if err != nil {
				return err
			}
			if event.Status != domain.EventStatusActive || !event.Ended(now) {
				return nil
			}
			if _, err := transitions.CompleteEvent(ctx, tx, event, now); err != nil {
				return err
			}
			// Checked-in tickets were completed before the sweep and still
			// count as attendance.
			attended, err = tx.ListTickets(ctx, repository.TicketFilter{EventID: id, Status: domain.TicketStatusCompleted})
			if err != nil {
				return fmt.Errorf("list attended tickets: %w", err)
			}
			changed = true
			return nil
		})
		if err != nil {
			s.rowFailed(ctx, &res, "event_id", id, err)
			continue
		}
		if !changed {
			continue
		}
		res.Changed++
		holders := notify.Holders(attended)
		notes := make([]domain.Notification, 0, len(holders))
		for _, h := range holders {
			notes = append(notes, notify.EventCompleted(event, h))
		}
		res.Notified += s.notifier.Send(ctx, notes...)
	}
	if res.Changed > 0 {
		s.invalidate(ctx)
	}
	return s.done(ctx, res), nil
}

// Remind notifies holders and the organiser of events starting roughly one
// day or one hour from now. The reminder ledger is written in the same
// transaction that decides to send, so a window is never reminded twice.
func (s *Sweeper) Remind(ctx context.Context) (Result, error) {
	res := Result{Sweep: "reminders"}
	now := s.clock.Now()
	tol := s.cfg.ReminderTolerance

	for _, w := range Windows {
		due := now.Add(w.Lead())
		events, err := s.store.ListActiveEventsStartingBetween(ctx, due.Add(-tol), due.Add(tol))
		if err != nil {
			return res, fmt.Errorf("list events for %s reminder: %w", w, err)
		}
		res.Matched += len(events)

		for _, candidate := range events {
			var (
				event      *domain.Event
				recipients []string
			)
			err := s.store.WithinTx(ctx, func(ctx context.Context, tx repository.Repository) error {
				var err error
				event, err = tx.LockEvent(ctx, candidate.ID)
				if err != nil {
					return err
				}
				if event.Status != domain.EventStatusActive {
					return nil
				}
				fresh, err := tx.MarkReminderSent(ctx, event.ID, w, now)
				if err != nil || !fresh {
					return err
				}
				tickets, err := tx.ListTickets(ctx, repository.TicketFilter{EventID: event.ID, Status: domain.TicketStatusActive})
				if err != nil {
					return err
				}
				recipients = notify.Holders(tickets)
				if !slices.Contains(recipients, event.OrganiserID) {
					recipients = append(recipients, event.OrganiserID)
				}
				return nil
			})
			if err != nil {
				s.rowFailed(ctx, &res, "event_id", candidate.ID, err)
				continue
			}
			if recipients == nil {
				continue
			}
			res.Changed++
			notes := make([]domain.Notification, 0, len(recipients))
			for _, r := range recipients {
				notes = append(notes, notify.Reminder(event, r, w))
			}
			res.Notified += s.notifier.Send(ctx, notes...)
		}
	}
	return s.done(ctx, res), nil
}

// CleanupEvents deletes events cancelled longer ago than the retention
// period together with everything that hangs off them.
func (s *Sweeper) CleanupEvents(ctx context.Context) (Result, error) {
	res := Result{Sweep: "event-cleanup"}
	cutoff := s.clock.Now().Add(-s.cfg.Retention)
	ids, err := s.store.ListCancelledEventIDsBefore(ctx, cutoff)
	if err != nil {
		return res, fmt.Errorf("list cancelled events: %w", err)
	}
	res.Matched = len(ids)

	for _, id := range ids {
		deleted := false
		err := s.store.WithinTx(ctx, func(ctx context.Context, tx repository.Repository) error {
			event, err := tx.LockEvent(ctx, id)
			if err != nil {
				return err
			}
			if event.Status != domain.EventStatusCancelled || !event.StatusChangedAt.Before(cutoff) {
				return nil
			}
			if err := tx.DeleteEvent(ctx, id); err != nil {
				return err
			}
			deleted = true
			return nil
		})
		if err != nil {
			s.rowFailed(ctx, &res, "event_id", id, err)
			continue
		}
		if deleted {
			res.Changed++
		}
	}
	return s.done(ctx, res), nil
}

// CleanupTickets deletes tickets cancelled longer ago than the retention
// period.
func (s *Sweeper) CleanupTickets(ctx context.Context) (Result, error) {
	res := Result{Sweep: "ticket-cleanup"}
	cutoff := s.clock.Now().Add(-s.cfg.Retention)
	ids, err := s.store.ListCancelledTicketIDsBefore(ctx, cutoff)
	if err != nil {
		return res, fmt.Errorf("list cancelled tickets: %w", err)
	}
	res.Matched = len(ids)

	for _, id := range ids {
		deleted := false
		err := s.store.WithinTx(ctx, func(ctx context.Context, tx repository.Repository) error {
			ticket, err := tx.LockTicket(ctx, id)
			if err != nil {
				return err
			}
			if ticket.Status != domain.TicketStatusCancelled || !ticket.UpdatedAt.Before(cutoff) {
				return nil
			}
			if err := tx.DeleteTicket(ctx, id); err != nil {
				return err
			}
			deleted = true
			return nil
		})
		if err != nil {
			s.rowFailed(ctx, &res, "ticket_id", id, err)
			continue
		}
		if deleted {
			res.Changed++
		}
	}
	return s.done(ctx, res), nil
}

func (s *Sweeper) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateEvents(ctx); err != nil {
		s.log.WarnContext(ctx, "invalidate events cache", slog.String("error", err.Error()))
	}
}

var _ SweepUseCase = (*Sweeper)(nil)
