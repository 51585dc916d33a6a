package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
)

func (r *repo) AddWaitlistEntry(_ context.Context, e domain.WaitlistEntry) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.events[e.EventID]; !ok {
		return false, notFound("insert waitlist entry")
	}
	k := waitKey{e.EventID, e.UserID}
	if _, dup := r.db.waitlist[k]; dup {
		return false, nil
	}
	r.db.waitlist[k] = e
	r.journal(func() { delete(r.db.waitlist, k) })
	return true, nil
}

func (r *repo) RemoveWaitlistEntry(_ context.Context, eventID int64, userID string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	k := waitKey{eventID, userID}
	prev, ok := r.db.waitlist[k]
	if !ok {
		return false, nil
	}
	delete(r.db.waitlist, k)
	r.journal(func() { r.db.waitlist[k] = prev })
	return true, nil
}

func (r *repo) ListWaitlist(_ context.Context, eventID int64) ([]domain.WaitlistEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.WaitlistEntry, 0)
	for k, e := range r.db.waitlist {
		if k.eventID == eventID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].UserID < out[j].UserID
		}
		return out[i].JoinedAt.Before(out[j].JoinedAt)
	})
	return out, nil
}

func (r *repo) GetUserRole(_ context.Context, userID string) (domain.Role, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	role, ok := r.db.users[userID]
	if !ok {
		return "", notFound("get user role")
	}
	return role, nil
}

func (r *repo) SetUserRole(_ context.Context, userID string, role domain.Role) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	prev, existed := r.db.users[userID]
	r.db.users[userID] = role
	r.journal(func() {
		if existed {
			r.db.users[userID] = prev
		} else {
			delete(r.db.users, userID)
		}
	})
	return nil
}

func (r *repo) MarkReminderSent(_ context.Context, eventID int64, window domain.ReminderWindow, at time.Time) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	k := reminderKey{eventID, window}
	if _, done := r.db.reminders[k]; done {
		return false, nil
	}
	r.db.reminders[k] = at
	r.journal(func() { delete(r.db.reminders, k) })
	return true, nil
}
