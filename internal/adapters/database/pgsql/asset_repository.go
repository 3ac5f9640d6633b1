package pgsql

import (
	"context"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/money_ledger/internal/models"
	"github.com/SscSPs/money_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAssetRepository struct {
	BaseRepository
}

func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepository {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetRepository = (*PgxAssetRepository)(nil)

func (r *PgxAssetRepository) ListFixedAssets(ctx context.Context, scopeID string) ([]domain.FixedAsset, error) {
	rows, _ := r.Pool.Query(ctx, `
		SELECT asset_id, scope_id, name, value, acquired_at, created_at, created_by, last_updated_at, last_updated_by
		FROM fixed_assets WHERE scope_id = $1 ORDER BY name;`, scopeID)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FixedAsset])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list fixed assets", err)
	}
	return mapping.ToDomainFixedAssetSlice(ms)
}

func (r *PgxAssetRepository) ListLiabilities(ctx context.Context, scopeID string) ([]domain.LiabilityRecord, error) {
	rows, _ := r.Pool.Query(ctx, `
		SELECT liability_id, scope_id, name, balance, created_at, created_by, last_updated_at, last_updated_by
		FROM liabilities WHERE scope_id = $1 ORDER BY name;`, scopeID)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Liability])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list liabilities", err)
	}
	return mapping.ToDomainLiabilitySlice(ms)
}
