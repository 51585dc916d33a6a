package access

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/stretchr/testify/assert"
)

type roleTable map[string]domain.Role

func (r roleTable) GetUserRole(_ context.Context, userID string) (domain.Role, error) {
	if userID == "broken" {
		return "", errors.New("connection reset")
	}
	role, ok := r[userID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return role, nil
}

func TestRequire(t *testing.T) {
	roles := roleTable{"mallory": domain.RoleBanned, "carol": domain.RoleUser}

	tests := []struct {
		name string
		who  domain.Identity
		want error
	}{
		{"anonymous", domain.Identity{}, domain.ErrUnauthorized},
		{"banned by header", domain.Identity{UserID: "x", Role: domain.RoleBanned}, domain.ErrForbidden},
		{"banned in storage", domain.Identity{UserID: "mallory", Role: domain.RoleOrganiser}, domain.ErrForbidden},
		{"stored user", domain.Identity{UserID: "carol", Role: domain.RoleUser}, nil},
		{"unknown user", domain.Identity{UserID: "dave", Role: domain.RoleOrganiser}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Require(context.Background(), roles, tt.who)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRequire_StorageError(t *testing.T) {
	err := Require(context.Background(), roleTable{}, domain.Identity{UserID: "broken", Role: domain.RoleUser})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
}
