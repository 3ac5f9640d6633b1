package models

import "time"

// Profile is a row of the profiles table. Older rows carry full_name, newer ones display_name.
type Profile struct {
	UserID        string    `db:"user_id" validate:"required"`
	DisplayName   *string   `db:"display_name"`
	FullName      *string   `db:"full_name"`
	Email         *string   `db:"email" validate:"omitempty,email"`
	AvatarURL     *string   `db:"avatar_url" validate:"omitempty,url"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
