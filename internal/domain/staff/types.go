package staff

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleBarber    Role = "barber"
	RoleReception Role = "reception"
	RoleAdmin     Role = "admin"
)

var roleRank = map[Role]int{
	RoleBarber:    1,
	RoleReception: 2,
	RoleAdmin:     3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above min in the staff hierarchy.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	want, wantOK := roleRank[min]
	return ok && wantOK && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Member is the authenticated staff principal behind an admin request.
// For barbers the member ID doubles as their barber resource ID.
type Member struct {
	ID   int64
	Role Role
}

// OwnResource returns the only resource a member may view, or nil when the
// member can see every column.
func (m Member) OwnResource() *int64 {
	if m.Role != RoleBarber {
		return nil
	}
	id := m.ID
	return &id
}
