// Package inbox is the read side of notifications.
package inbox

import (
	"context"
	"fmt"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/repository"
)

type InboxUseCase interface {
	List(ctx context.Context, who domain.Identity, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, who domain.Identity, id int64) error
}

type InboxService struct {
	store repository.Repository
}

func NewInboxService(store repository.Repository) *InboxService {
	return &InboxService{store: store}
}

func (s *InboxService) List(ctx context.Context, who domain.Identity, unreadOnly bool) ([]domain.Notification, error) {
	if who.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	notes, err := s.store.ListNotifications(ctx, who.UserID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notes, nil
}

// MarkRead flags one of the caller's notifications as read. Someone else's
// notification is reported as not found.
func (s *InboxService) MarkRead(ctx context.Context, who domain.Identity, id int64) error {
	if who.UserID == "" {
		return domain.ErrUnauthorized
	}
	if err := s.store.MarkNotificationRead(ctx, id, who.UserID); err != nil {
		return fmt.Errorf("mark notification %d read: %w", id, err)
	}
	return nil
}

var _ InboxUseCase = (*InboxService)(nil)
