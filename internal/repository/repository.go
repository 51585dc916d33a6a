// Package repository is the storage boundary of the engine. Every mutating
// operation runs inside Store.WithinTx, which commits when the callback
// returns nil and rolls back on any error or panic.
package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
)

// TicketFilter selects tickets. Zero fields are ignored.
type TicketFilter struct {
	EventID  int64
	HolderID string
	Status   domain.TicketStatus
}

type Repository interface {
	CreateEvent(ctx context.Context, event *domain.Event) error
	GetEvent(ctx context.Context, id int64) (*domain.Event, error)
	// LockEvent reads the event and holds its row lock until the enclosing
	// transaction ends. It is the per-event serialization point.
	LockEvent(ctx context.Context, id int64) (*domain.Event, error)
	ListEvents(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)
	ListEventsByOrganiser(ctx context.Context, organiserID string, status domain.EventStatus) ([]domain.Event, error)
	UpdateEventStatus(ctx context.Context, id int64, status domain.EventStatus, at time.Time) error
	UpdateEventCapacity(ctx context.Context, id int64, capacity int, at time.Time) error
	AddEventCategory(ctx context.Context, eventID int64, category string) error
	AddEventFlag(ctx context.Context, flag *domain.EventFlag) error
	// DeleteEvent removes the event with its categories, flags, waitlist
	// entries, reminder marks and tickets.
	DeleteEvent(ctx context.Context, id int64) error
	ListEndedActiveEventIDs(ctx context.Context, now time.Time) ([]int64, error)
	ListActiveEventsStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error)
	ListCancelledEventIDsBefore(ctx context.Context, cutoff time.Time) ([]int64, error)

	CountHeldTickets(ctx context.Context, eventID int64) (int, error)
	InsertTicket(ctx context.Context, ticket *domain.Ticket) error
	GetTicket(ctx context.Context, id int64) (*domain.Ticket, error)
	LockTicket(ctx context.Context, id int64) (*domain.Ticket, error)
	LockTicketByCode(ctx context.Context, code string) (*domain.Ticket, error)
	UpdateTicketStatus(ctx context.Context, id int64, status domain.TicketStatus, reason string, at time.Time) error
	// TransitionActiveTickets moves every active ticket of an event to the
	// given status and returns the tickets it changed.
	TransitionActiveTickets(ctx context.Context, eventID int64, to domain.TicketStatus, reason string, at time.Time) ([]domain.Ticket, error)
	ListTickets(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	ListCancelledTicketIDsBefore(ctx context.Context, cutoff time.Time) ([]int64, error)
	DeleteTicket(ctx context.Context, id int64) error

	// AddWaitlistEntry inserts the entry unless it exists and reports
	// whether a row was written.
	AddWaitlistEntry(ctx context.Context, entry domain.WaitlistEntry) (bool, error)
	RemoveWaitlistEntry(ctx context.Context, eventID int64, userID string) (bool, error)
	ListWaitlist(ctx context.Context, eventID int64) ([]domain.WaitlistEntry, error)

	GetUserRole(ctx context.Context, userID string) (domain.Role, error)
	SetUserRole(ctx context.Context, userID string, role domain.Role) error

	// MarkReminderSent records that a reminder went out for the window and
	// returns false when it had already been recorded.
	MarkReminderSent(ctx context.Context, eventID int64, window domain.ReminderWindow, at time.Time) (bool, error)

	InsertNotification(ctx context.Context, n *domain.Notification) error
	ListNotifications(ctx context.Context, recipientID string, unreadOnly bool) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64, recipientID string) error
}

// Store is a Repository whose methods auto-commit, plus the unit of work.
type Store interface {
	Repository
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error
}
