package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/money_ledger/internal/models"
	"github.com/SscSPs/money_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepository {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProfileRepository = (*PgxProfileRepository)(nil)

// FindProfileByUserID loads the profile row, whichever name column it was written with.
func (r *PgxProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	rows, _ := r.Pool.Query(ctx, `
		SELECT user_id, display_name, full_name, email, avatar_url, created_at, last_updated_at
		FROM profiles WHERE user_id = $1;`, userID)
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Profile])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find profile "+userID, err)
	}
	p, err := mapping.ToDomainProfile(m)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
