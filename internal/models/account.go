package models

import (
	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID    string          `db:"account_id" validate:"required"`
	ScopeID      string          `db:"scope_id" validate:"required"`
	Code         string          `db:"code" validate:"required,max=32"`
	Name         string          `db:"name" validate:"required"`
	AccountType  string          `db:"account_type" validate:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE CHECKING SAVINGS CREDIT INVESTMENT"`
	CurrencyCode string          `db:"currency_code" validate:"required,len=3"`
	Description  string          `db:"description"`
	IsActive     bool            `db:"is_active"`
	Balance      decimal.Decimal `db:"balance"`
	AuditFields
}
