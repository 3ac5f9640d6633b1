package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedAsset is a row of the fixed_assets table.
type FixedAsset struct {
	AssetID    string          `db:"asset_id" validate:"required"`
	ScopeID    string          `db:"scope_id" validate:"required"`
	Name       string          `db:"name" validate:"required"`
	Value      decimal.Decimal `db:"value"`
	AcquiredAt *time.Time      `db:"acquired_at"`
	AuditFields
}

// Liability is a row of the liabilities table.
type Liability struct {
	LiabilityID string          `db:"liability_id" validate:"required"`
	ScopeID     string          `db:"scope_id" validate:"required"`
	Name        string          `db:"name" validate:"required"`
	Balance     decimal.Decimal `db:"balance"`
	AuditFields
}
