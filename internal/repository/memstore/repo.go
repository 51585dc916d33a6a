package memstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/repository"
)

type repo struct {
	db *db
	tx *txState
}

// lock takes a row lock. Outside a transaction it waits for current
// holders and releases straight away.
func (r *repo) lock(ctx context.Context, key string) error {
	if r.tx == nil {
		if err := r.db.locks.acquire(ctx, key); err != nil {
			return err
		}
		r.db.locks.release(key)
		return nil
	}
	if _, ok := r.tx.held[key]; ok {
		return nil
	}
	if err := r.db.locks.acquire(ctx, key); err != nil {
		return err
	}
	r.tx.held[key] = struct{}{}
	return nil
}

// journal records an undo step. Callers hold db.mu.
func (r *repo) journal(undo func()) {
	if r.tx != nil {
		r.tx.undo = append(r.tx.undo, undo)
	}
}

func (r *repo) nextID() int64 {
	r.db.seq++
	return r.db.seq
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
}

func (r *repo) CreateEvent(_ context.Context, e *domain.Event) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if e.Status == "" {
		e.Status = domain.EventStatusActive
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	e.StatusChangedAt, e.UpdatedAt = e.CreatedAt, e.CreatedAt
	e.ID = r.nextID()
	r.db.events[e.ID] = *e

	id := e.ID
	r.journal(func() { delete(r.db.events, id) })
	return nil
}

func (r *repo) GetEvent(_ context.Context, id int64) (*domain.Event, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	e, ok := r.db.events[id]
	if !ok {
		return nil, notFound("get event")
	}
	return &e, nil
}

func (r *repo) LockEvent(ctx context.Context, id int64) (*domain.Event, error) {
	if err := r.lock(ctx, eventKey(id)); err != nil {
		return nil, err
	}
	e, err := r.GetEvent(ctx, id)
	if err != nil {
		return nil, notFound("lock event")
	}
	return e, nil
}

func (r *repo) filterEvents(keep func(domain.Event) bool, less func(a, b domain.Event) bool) []domain.Event {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Event, 0)
	for _, e := range r.db.events {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func byStart(a, b domain.Event) bool {
	if a.StartAt.Equal(b.StartAt) {
		return a.ID < b.ID
	}
	return a.StartAt.Before(b.StartAt)
}

func byID(a, b domain.Event) bool { return a.ID < b.ID }

func (r *repo) ListEvents(_ context.Context, status domain.EventStatus) ([]domain.Event, error) {
	return r.filterEvents(func(e domain.Event) bool {
		return status == "" || e.Status == status
	}, byStart), nil
}

func (r *repo) ListEventsByOrganiser(_ context.Context, organiserID string, status domain.EventStatus) ([]domain.Event, error) {
	return r.filterEvents(func(e domain.Event) bool {
		return e.OrganiserID == organiserID && (status == "" || e.Status == status)
	}, byID), nil
}

func (r *repo) updateEvent(id int64, what string, apply func(*domain.Event)) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	prev, ok := r.db.events[id]
	if !ok {
		return notFound(what)
	}
	next := prev
	apply(&next)
	r.db.events[id] = next
	r.journal(func() { r.db.events[id] = prev })
	return nil
}

func (r *repo) UpdateEventStatus(_ context.Context, id int64, status domain.EventStatus, at time.Time) error {
	return r.updateEvent(id, "update event status", func(e *domain.Event) {
		e.Status = status
		e.StatusChangedAt = at
		e.UpdatedAt = at
	})
}

func (r *repo) UpdateEventCapacity(_ context.Context, id int64, capacity int, at time.Time) error {
	if capacity <= 0 {
		return fmt.Errorf("update event capacity: %w", domain.Invalid("capacity", "must be positive"))
	}
	return r.updateEvent(id, "update event capacity", func(e *domain.Event) {
		e.Capacity = capacity
		e.UpdatedAt = at
	})
}

func (r *repo) AddEventCategory(_ context.Context, eventID int64, category string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.events[eventID]; !ok {
		return notFound("insert event category")
	}
	set, ok := r.db.categories[eventID]
	if !ok {
		set = make(map[string]struct{})
		r.db.categories[eventID] = set
	}
	if _, dup := set[category]; dup {
		return nil
	}
	set[category] = struct{}{}
	r.journal(func() { delete(set, category) })
	return nil
}

func (r *repo) AddEventFlag(_ context.Context, f *domain.EventFlag) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.events[f.EventID]; !ok {
		return notFound("insert event flag")
	}
	f.ID = r.nextID()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	prev := r.db.flags[f.EventID]
	r.db.flags[f.EventID] = append(append([]domain.EventFlag(nil), prev...), *f)
	eventID := f.EventID
	r.journal(func() { r.db.flags[eventID] = prev })
	return nil
}

// EventCategories and EventFlags expose auxiliary rows for tests.
func (s *Store) EventCategories(eventID int64) []string {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := make([]string, 0, len(s.db.categories[eventID]))
	for c := range s.db.categories[eventID] {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (s *Store) EventFlags(eventID int64) []domain.EventFlag {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return append([]domain.EventFlag(nil), s.db.flags[eventID]...)
}

func (r *repo) DeleteEvent(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	event, ok := r.db.events[id]
	if !ok {
		return notFound("delete event")
	}
	categories, flags := r.db.categories[id], r.db.flags[id]
	delete(r.db.events, id)
	delete(r.db.categories, id)
	delete(r.db.flags, id)

	var (
		tickets  []domain.Ticket
		waiting  []domain.WaitlistEntry
		reminded = make(map[reminderKey]time.Time)
	)
	for tid, t := range r.db.tickets {
		if t.EventID == id {
			tickets = append(tickets, t)
			delete(r.db.tickets, tid)
			delete(r.db.codes, t.Code)
		}
	}
	for k, w := range r.db.waitlist {
		if k.eventID == id {
			waiting = append(waiting, w)
			delete(r.db.waitlist, k)
		}
	}
	for k, at := range r.db.reminders {
		if k.eventID == id {
			reminded[k] = at
			delete(r.db.reminders, k)
		}
	}

	r.journal(func() {
		r.db.events[id] = event
		if categories != nil {
			r.db.categories[id] = categories
		}
		if flags != nil {
			r.db.flags[id] = flags
		}
		for _, t := range tickets {
			r.db.tickets[t.ID] = t
			r.db.codes[t.Code] = t.ID
		}
		for _, w := range waiting {
			r.db.waitlist[waitKey{w.EventID, w.UserID}] = w
		}
		for k, at := range reminded {
			r.db.reminders[k] = at
		}
	})
	return nil
}

func (r *repo) eventIDs(keep func(domain.Event) bool) []int64 {
	events := r.filterEvents(keep, byID)
	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

func (r *repo) ListEndedActiveEventIDs(_ context.Context, now time.Time) ([]int64, error) {
	return r.eventIDs(func(e domain.Event) bool {
		return e.Status == domain.EventStatusActive && !e.EndAt.After(now)
	}), nil
}

func (r *repo) ListActiveEventsStartingBetween(_ context.Context, from, to time.Time) ([]domain.Event, error) {
	return r.filterEvents(func(e domain.Event) bool {
		return e.Status == domain.EventStatusActive && !e.StartAt.Before(from) && !e.StartAt.After(to)
	}, byStart), nil
}

func (r *repo) ListCancelledEventIDsBefore(_ context.Context, cutoff time.Time) ([]int64, error) {
	return r.eventIDs(func(e domain.Event) bool {
		return e.Status == domain.EventStatusCancelled && e.StatusChangedAt.Before(cutoff)
	}), nil
}

var _ repository.Repository = (*repo)(nil)
