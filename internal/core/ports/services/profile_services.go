package services

import (
	"context"

	"github.com/SscSPs/money_ledger/internal/core/domain"
)

// ProfileSvc reads the caller's canonical profile.
type ProfileSvc interface {
	GetProfile(ctx context.Context, session domain.Session) (*domain.Profile, error)
}
