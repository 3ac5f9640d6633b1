package models

import "time"

// ScopeMember is a row of the scope_members table.
type ScopeMember struct {
	ScopeID  string    `db:"scope_id" validate:"required"`
	UserID   string    `db:"user_id" validate:"required"`
	Role     string    `db:"role" validate:"required,oneof=ADMIN MEMBER READONLY"`
	JoinedAt time.Time `db:"joined_at"`
}
