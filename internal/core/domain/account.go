package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the type of an account. Cash account types (checking, savings,
// credit, investment) are specialisations of the five ledger classes.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"

	Checking   AccountType = "CHECKING"
	Savings    AccountType = "SAVINGS"
	Credit     AccountType = "CREDIT"
	Investment AccountType = "INVESTMENT"
)

// Class returns the ledger class the account type rolls up into.
// An unknown type returns itself so callers can detect it with IsValid.
func (t AccountType) Class() AccountType {
	switch t {
	case Checking, Savings, Investment:
		return Asset
	case Credit:
		return Liability
	default:
		return t
	}
}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense, Checking, Savings, Credit, Investment:
		return true
	}
	return false
}

// IsCurrentAsset reports whether accounts of this type are listed as current assets on the balance sheet.
func (t AccountType) IsCurrentAsset() bool {
	return t == Checking || t == Savings
}

// IsDebitNormal reports whether a debit increases the balance of an account of this type.
func (t AccountType) IsDebitNormal() bool {
	c := t.Class()
	return c == Asset || c == Expense
}

// Account represents a financial account within the core domain.
type Account struct {
	AccountID    string          `json:"accountID"` // Primary Key (UUID)
	ScopeID      string          `json:"scopeID"`   // Owning user or client
	Code         string          `json:"code"`      // Human readable code, unique per scope (e.g. "1000")
	Name         string          `json:"name"`
	AccountType  AccountType     `json:"accountType"`
	CurrencyCode string          `json:"currencyCode"`
	Description  string          `json:"description"`
	IsActive     bool            `json:"isActive"`
	Balance      decimal.Decimal `json:"balance"` // Mutated only by posting or voiding journal entries
	AuditFields
}
