package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedAsset is a long-lived asset tracked outside the cash accounts (property, equipment).
type FixedAsset struct {
	AssetID    string          `json:"assetID"`
	ScopeID    string          `json:"scopeID"`
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	AcquiredAt time.Time       `json:"acquiredAt"`
	AuditFields
}

// LiabilityRecord is an obligation tracked outside the cash accounts (loan, mortgage).
type LiabilityRecord struct {
	LiabilityID string          `json:"liabilityID"`
	ScopeID     string          `json:"scopeID"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	AuditFields
}
