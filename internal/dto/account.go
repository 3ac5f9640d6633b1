package dto

import (
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// Balances start at zero and change only through posted journal entries.
type CreateAccountRequest struct {
	Code         string             `json:"code" binding:"required,max=32"`
	Name         string             `json:"name" binding:"required"`
	AccountType  domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE CHECKING SAVINGS CREDIT INVESTMENT"`
	CurrencyCode string             `json:"currencyCode" binding:"omitempty,len=3"` // Defaults to USD
	Description  string             `json:"description"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Code          string             `json:"code"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"accountType"`
	Class         domain.AccountType `json:"class"`
	CurrencyCode  string             `json:"currencyCode"`
	Description   string             `json:"description"`
	IsActive      bool               `json:"isActive"`
	Balance       decimal.Decimal    `json:"balance"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Code:          acc.Code,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		Class:         acc.AccountType.Class(),
		CurrencyCode:  acc.CurrencyCode,
		Description:   acc.Description,
		IsActive:      acc.IsActive,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ChartEntryResponse is one row of the chart of accounts.
type ChartEntryResponse struct {
	AccountID   string             `json:"accountID"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	Class       domain.AccountType `json:"class"`
}

// ChartOfAccountsResponse lists a scope's accounts in code order.
type ChartOfAccountsResponse struct {
	ScopeID  string               `json:"scopeID"`
	Accounts []ChartEntryResponse `json:"accounts"`
}

// ToChartOfAccountsResponse converts accounts in chart order to the response DTO.
func ToChartOfAccountsResponse(scopeID string, accounts []domain.Account) ChartOfAccountsResponse {
	res := ChartOfAccountsResponse{ScopeID: scopeID, Accounts: make([]ChartEntryResponse, len(accounts))}
	for i, acc := range accounts {
		res.Accounts[i] = ChartEntryResponse{
			AccountID:   acc.AccountID,
			Code:        acc.Code,
			Name:        acc.Name,
			AccountType: acc.AccountType,
			Class:       acc.AccountType.Class(),
		}
	}
	return res
}
