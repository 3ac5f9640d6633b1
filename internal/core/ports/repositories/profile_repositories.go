package repositories

import (
	"context"

	"github.com/SscSPs/money_ledger/internal/core/domain"
)

// ProfileRepository reads user profiles, normalized into the canonical shape.
type ProfileRepository interface {
	FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}
