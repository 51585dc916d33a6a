package domain

type Role string

const (
	RoleUser      Role = "user"
	RoleOrganiser Role = "organiser"
	RoleAdmin     Role = "admin"
	RoleBanned    Role = "banned"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOrganiser, RoleAdmin, RoleBanned:
		return true
	}
	return false
}

// Identity is the already-verified caller supplied by the identity provider.
type Identity struct {
	UserID string
	Role   Role
}

// Require returns ErrUnauthorized for an empty identity and ErrForbidden for
// a banned one.
func (id Identity) Require() error {
	if id.UserID == "" {
		return ErrUnauthorized
	}
	if id.Role == RoleBanned {
		return ErrForbidden
	}
	return nil
}

func (id Identity) IsAdmin() bool { return id.Role == RoleAdmin }

// CanManage reports whether the caller may act as organiser of e.
func (id Identity) CanManage(e *Event) bool {
	return id.IsAdmin() || (id.UserID != "" && id.UserID == e.OrganiserID)
}
