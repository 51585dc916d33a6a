package memstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/repository"
)

func (r *repo) CountHeldTickets(_ context.Context, eventID int64) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	n := 0
	for _, t := range r.db.tickets {
		if t.EventID == eventID && t.Status.Held() {
			n++
		}
	}
	return n, nil
}

func (r *repo) InsertTicket(_ context.Context, t *domain.Ticket) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.events[t.EventID]; !ok {
		return notFound("insert ticket")
	}
	if _, dup := r.db.codes[t.Code]; dup {
		return fmt.Errorf("insert ticket: %w", domain.ErrConflict)
	}
	t.ID = r.nextID()
	t.UpdatedAt = t.PurchasedAt
	r.db.tickets[t.ID] = *t
	r.db.codes[t.Code] = t.ID

	id, code := t.ID, t.Code
	r.journal(func() {
		delete(r.db.tickets, id)
		delete(r.db.codes, code)
	})
	return nil
}

func (r *repo) GetTicket(_ context.Context, id int64) (*domain.Ticket, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	t, ok := r.db.tickets[id]
	if !ok {
		return nil, notFound("get ticket")
	}
	return &t, nil
}

func (r *repo) LockTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	if err := r.lock(ctx, ticketKey(id)); err != nil {
		return nil, err
	}
	t, err := r.GetTicket(ctx, id)
	if err != nil {
		return nil, notFound("lock ticket")
	}
	return t, nil
}

func (r *repo) LockTicketByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	r.db.mu.Lock()
	id, ok := r.db.codes[code]
	r.db.mu.Unlock()
	if !ok {
		return nil, notFound("lock ticket by code")
	}
	return r.LockTicket(ctx, id)
}

func (r *repo) UpdateTicketStatus(_ context.Context, id int64, status domain.TicketStatus, reason string, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	prev, ok := r.db.tickets[id]
	if !ok {
		return notFound("update ticket status")
	}
	next := prev
	next.Status, next.CancelReason, next.UpdatedAt = status, reason, at
	r.db.tickets[id] = next
	r.journal(func() { r.db.tickets[id] = prev })
	return nil
}

// TransitionActiveTickets locks each active ticket in id order before
// changing it, the way an UPDATE takes row locks in Postgres.
func (r *repo) TransitionActiveTickets(ctx context.Context, eventID int64, to domain.TicketStatus, reason string, at time.Time) ([]domain.Ticket, error) {
	candidates, err := r.ListTickets(ctx, repository.TicketFilter{EventID: eventID, Status: domain.TicketStatusActive})
	if err != nil {
		return nil, err
	}

	changed := make([]domain.Ticket, 0, len(candidates))
	for _, c := range candidates {
		t, err := r.LockTicket(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if t.Status != domain.TicketStatusActive {
			continue
		}
		if err := r.UpdateTicketStatus(ctx, t.ID, to, reason, at); err != nil {
			return nil, err
		}
		t.Status, t.CancelReason, t.UpdatedAt = to, reason, at
		changed = append(changed, *t)
	}
	return changed, nil
}

func (r *repo) ListTickets(_ context.Context, f repository.TicketFilter) ([]domain.Ticket, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Ticket, 0)
	for _, t := range r.db.tickets {
		if f.EventID != 0 && t.EventID != f.EventID {
			continue
		}
		if f.HolderID != "" && t.HolderID != f.HolderID {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *repo) ListCancelledTicketIDsBefore(_ context.Context, cutoff time.Time) ([]int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	ids := make([]int64, 0)
	for _, t := range r.db.tickets {
		if t.Status == domain.TicketStatusCancelled && t.UpdatedAt.Before(cutoff) {
			ids = append(ids, t.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *repo) DeleteTicket(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	t, ok := r.db.tickets[id]
	if !ok {
		return notFound("delete ticket")
	}
	delete(r.db.tickets, id)
	delete(r.db.codes, t.Code)
	r.journal(func() {
		r.db.tickets[id] = t
		r.db.codes[t.Code] = id
	})
	return nil
}
