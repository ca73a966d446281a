package domain

import "strings"

// Role is the closed set of portal roles. Anything stored that is not "admin"
// is treated as a citizen.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCitizen Role = "citizen"
)

// ParseRole maps a stored role string onto the closed Role set.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleCitizen
}

func (r Role) String() string { return string(r) }
