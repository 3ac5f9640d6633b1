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

type PgxScopeMemberRepository struct {
	BaseRepository
}

func newPgxScopeMemberRepository(pool *pgxpool.Pool) portsrepo.ScopeMemberRepository {
	return &PgxScopeMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ScopeMemberRepository = (*PgxScopeMemberRepository)(nil)

func (r *PgxScopeMemberRepository) FindScopeMembership(ctx context.Context, userID, scopeID string) (*domain.ScopeMembership, error) {
	rows, _ := r.Pool.Query(ctx, `
		SELECT scope_id, user_id, role, joined_at
		FROM scope_members WHERE scope_id = $1 AND user_id = $2;`, scopeID, userID)
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.ScopeMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find scope membership", err)
	}
	membership, err := mapping.ToDomainScopeMembership(m)
	if err != nil {
		return nil, err
	}
	return &membership, nil
}
