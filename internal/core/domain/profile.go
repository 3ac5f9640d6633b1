package domain

// Profile is the canonical user profile shape. Optional fields are nil when unknown.
type Profile struct {
	UserID      string  `json:"userID"`
	DisplayName *string `json:"displayName"`
	Email       *string `json:"email"`
	AvatarURL   *string `json:"avatarURL"`
}

// Session carries the caller identity into every service call.
type Session struct {
	UserID  string
	ScopeID string // User or client whose books are being accessed
}
