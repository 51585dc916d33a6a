package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
)

func (r *repo) InsertNotification(_ context.Context, n *domain.Notification) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	n.ID = r.nextID()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	r.db.notifications[n.ID] = *n
	id := n.ID
	r.journal(func() { delete(r.db.notifications, id) })
	return nil
}

func (r *repo) ListNotifications(_ context.Context, recipientID string, unreadOnly bool) ([]domain.Notification, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Notification, 0)
	for _, n := range r.db.notifications {
		if n.RecipientID != recipientID || (unreadOnly && n.Read) {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *repo) MarkNotificationRead(_ context.Context, id int64, recipientID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	prev, ok := r.db.notifications[id]
	if !ok || prev.RecipientID != recipientID {
		return notFound("mark notification read")
	}
	next := prev
	next.Read = true
	r.db.notifications[id] = next
	r.journal(func() { r.db.notifications[id] = prev })
	return nil
}

// Notifications returns every notification in insertion order.
func (s *Store) Notifications() []domain.Notification {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	out := make([]domain.Notification, 0, len(s.db.notifications))
	for _, n := range s.db.notifications {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
