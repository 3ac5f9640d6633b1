package repositories

import (
	"context"

	"github.com/SscSPs/money_ledger/internal/core/domain"
)

// AssetRepository reads the fixed asset and liability records used by the balance sheet.
type AssetRepository interface {
	ListFixedAssets(ctx context.Context, scopeID string) ([]domain.FixedAsset, error)
	ListLiabilities(ctx context.Context, scopeID string) ([]domain.LiabilityRecord, error)
}
