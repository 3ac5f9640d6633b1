package repositories

import (
	"context"

	"github.com/SscSPs/money_ledger/internal/core/domain"
)

// ScopeMemberRepository reads delegated access to other users' books.
type ScopeMemberRepository interface {
	// FindScopeMembership returns the membership of userID in scopeID, or apperrors.ErrNotFound.
	FindScopeMembership(ctx context.Context, userID, scopeID string) (*domain.ScopeMembership, error)
}
