package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
)

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(repo portsrepo.ProfileRepository) portssvc.ProfileSvc {
	return &profileService{profileRepo: repo}
}

var _ portssvc.ProfileSvc = (*profileService)(nil)

// GetProfile returns the caller's own profile regardless of the active scope.
func (s *profileService) GetProfile(ctx context.Context, session domain.Session) (*domain.Profile, error) {
	if session.UserID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	profile, err := s.profileRepo.FindProfileByUserID(ctx, session.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find profile", slog.String("user_id", session.UserID))
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return profile, nil
}
