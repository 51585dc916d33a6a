// Package servicetest builds in-memory fixtures for service tests.
package servicetest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Domenick1991/eventbooking/internal/clock"
	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/notify"
	"github.com/Domenick1991/eventbooking/internal/repository/memstore"
	"github.com/stretchr/testify/require"
)

// Now is the fixed start time of every fixture clock.
var Now = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

var (
	Organiser = domain.Identity{UserID: "org-1", Role: domain.RoleOrganiser}
	Admin     = domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}
	Alice     = domain.Identity{UserID: "alice", Role: domain.RoleUser}
	Bob       = domain.Identity{UserID: "bob", Role: domain.RoleUser}
)

type Env struct {
	Store    *memstore.Store
	Clock    *clock.FakeClock
	Log      *slog.Logger
	Notifier *notify.Notifier

	codes atomic.Int64
}

func New(t *testing.T) *Env {
	t.Helper()
	store := memstore.New()
	clk := clock.Fake(Now)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &Env{
		Store:    store,
		Clock:    clk,
		Log:      log,
		Notifier: notify.NewNotifier(notify.NewMailbox(store, clk, log), log),
	}
}

// Code returns a fresh deterministic ticket code.
func (e *Env) Code() string {
	return fmt.Sprintf("CODE%06d", e.codes.Add(1))
}

// Event stores an active event owned by Organiser that starts in two days
// and lasts three hours. mods adjust it before insert.
func (e *Env) Event(t *testing.T, mods ...func(*domain.Event)) *domain.Event {
	t.Helper()
	ev := &domain.Event{
		OrganiserID: Organiser.UserID,
		Title:       "Jazz Night",
		Venue:       "Blue Hall",
		Capacity:    10,
		StartAt:     Now.Add(48 * time.Hour),
		EndAt:       Now.Add(51 * time.Hour),
		CreatedAt:   Now.Add(-24 * time.Hour),
	}
	for _, m := range mods {
		m(ev)
	}
	require.NoError(t, e.Store.CreateEvent(context.Background(), ev))
	return ev
}

// Ticket stores an active ticket for holder.
func (e *Env) Ticket(t *testing.T, eventID int64, holder string) *domain.Ticket {
	t.Helper()
	tk := &domain.Ticket{
		EventID:     eventID,
		HolderID:    holder,
		Code:        e.Code(),
		Status:      domain.TicketStatusActive,
		PurchasedAt: e.Clock.Now(),
	}
	require.NoError(t, e.Store.InsertTicket(context.Background(), tk))
	return tk
}

// Inbox returns the notifications of one recipient, oldest first.
func (e *Env) Inbox(recipient string) []domain.Notification {
	out := make([]domain.Notification, 0)
	for _, n := range e.Store.Notifications() {
		if n.RecipientID == recipient {
			out = append(out, n)
		}
	}
	return out
}
