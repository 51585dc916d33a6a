// Package access checks a caller against the roles kept in storage.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/eventbooking/internal/domain"
)

// RoleReader is the part of the repository the guard reads.
type RoleReader interface {
	GetUserRole(ctx context.Context, userID string) (domain.Role, error)
}

// Require rejects anonymous and banned callers. A stored ban wins over the
// role carried by the request; users without a stored role keep theirs.
func Require(ctx context.Context, roles RoleReader, who domain.Identity) error {
	if err := who.Require(); err != nil {
		return err
	}
	role, err := roles.GetUserRole(ctx, who.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("load user role: %w", err)
	case role == domain.RoleBanned:
		return domain.ErrForbidden
	}
	return nil
}
