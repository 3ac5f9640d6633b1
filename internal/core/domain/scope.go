package domain

import "time"

// ScopeRole defines the access a user has to another scope's books (e.g. an accountant
// working on a client's ledger).
type ScopeRole string

const (
	RoleAdmin    ScopeRole = "ADMIN"
	RoleMember   ScopeRole = "MEMBER"
	RoleReadOnly ScopeRole = "READONLY"
)

// Satisfies reports whether the role grants at least the required access.
func (r ScopeRole) Satisfies(required ScopeRole) bool {
	switch required {
	case RoleReadOnly:
		return r == RoleReadOnly || r == RoleMember || r == RoleAdmin
	case RoleMember:
		return r == RoleMember || r == RoleAdmin
	case RoleAdmin:
		return r == RoleAdmin
	default:
		return false
	}
}

// ScopeMembership grants a user a role in a scope they do not own.
// A user always has admin access to the scope equal to their own user ID.
type ScopeMembership struct {
	UserID   string    `json:"userID"`
	ScopeID  string    `json:"scopeID"`
	Role     ScopeRole `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}
