package principal

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleGuest   Role = "guest"
	RoleHost    Role = "host"
	RoleCleaner Role = "cleaner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleHost, RoleCleaner:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Principal is the acting user of an unlock attempt.
type Principal struct {
	ID   int64
	Role Role
}
