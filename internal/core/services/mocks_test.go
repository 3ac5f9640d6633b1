package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, scopeID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, scopeID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, scopeID string) ([]domain.Account, error) {
	args := m.Called(ctx, scopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, scopeID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, scopeID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, userID, now)
	return args.Error(0)
}

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalEntryByID(ctx context.Context, scopeID, journalID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, scopeID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindReversalOf(ctx context.Context, scopeID, journalID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, scopeID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListJournalEntries(ctx context.Context, scopeID string, filter portsrepo.JournalListFilter) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, scopeID, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		next = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

func (m *MockJournalRepository) ListPostedJournalEntries(ctx context.Context, scopeID string, period domain.DateRange) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, scopeID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, entry, balanceChanges)
	return args.Error(0)
}

func (m *MockJournalRepository) ReplaceDraftJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournalEntryStatus(ctx context.Context, scopeID, journalID string, from, to domain.JournalStatus, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, scopeID, journalID, from, to, balanceChanges, userID, now)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, scopeID string, period *domain.DateRange) ([]domain.Transaction, error) {
	args := m.Called(ctx, scopeID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock AssetRepository ---

type MockAssetRepository struct {
	mock.Mock
}

var _ portsrepo.AssetRepository = (*MockAssetRepository)(nil)

func (m *MockAssetRepository) ListFixedAssets(ctx context.Context, scopeID string) ([]domain.FixedAsset, error) {
	args := m.Called(ctx, scopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

func (m *MockAssetRepository) ListLiabilities(ctx context.Context, scopeID string) ([]domain.LiabilityRecord, error) {
	args := m.Called(ctx, scopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LiabilityRecord), args.Error(1)
}

// --- Mock BudgetRepository ---

type MockBudgetRepository struct {
	mock.Mock
}

var _ portsrepo.BudgetRepository = (*MockBudgetRepository)(nil)

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, scopeID string, activeOn *time.Time) ([]domain.Budget, error) {
	args := m.Called(ctx, scopeID, activeOn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

// --- Mock ProfileRepository ---

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// --- Mock ScopeMemberRepository ---

type MockScopeMemberRepository struct {
	mock.Mock
}

func (m *MockScopeMemberRepository) FindScopeMembership(ctx context.Context, userID, scopeID string) (*domain.ScopeMembership, error) {
	args := m.Called(ctx, userID, scopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScopeMembership), args.Error(1)
}

// --- Mock StatementCache ---

type MockStatementCache struct {
	mock.Mock
}

var _ portsrepo.StatementCache = (*MockStatementCache)(nil)

func (m *MockStatementCache) Get(ctx context.Context, scopeID, key string) (*domain.FinancialStatement, bool, error) {
	args := m.Called(ctx, scopeID, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.FinancialStatement), args.Bool(1), args.Error(2)
}

func (m *MockStatementCache) Set(ctx context.Context, scopeID, key string, stmt *domain.FinancialStatement, ttl time.Duration) error {
	args := m.Called(ctx, scopeID, key, stmt, ttl)
	return args.Error(0)
}

func (m *MockStatementCache) InvalidateScope(ctx context.Context, scopeID string) error {
	args := m.Called(ctx, scopeID)
	return args.Error(0)
}

// --- Fixtures ---

const (
	testUserID = "user-1"
	cashID     = "acc-cash"
	revenueID  = "acc-revenue"
	rentID     = "acc-rent"
	cardID     = "acc-card"
)

func ownSession() domain.Session {
	return domain.Session{UserID: testUserID, ScopeID: testUserID}
}

func testAccounts() []domain.Account {
	return []domain.Account{
		{AccountID: cashID, ScopeID: testUserID, Code: "1000", Name: "Cash", AccountType: domain.Checking, Balance: decimal.NewFromInt(500)},
		{AccountID: cardID, ScopeID: testUserID, Code: "2000", Name: "Credit Card", AccountType: domain.Credit, Balance: decimal.NewFromInt(-120)},
		{AccountID: revenueID, ScopeID: testUserID, Code: "4000", Name: "Revenue", AccountType: domain.Income},
		{AccountID: rentID, ScopeID: testUserID, Code: "5000", Name: "Rent", AccountType: domain.Expense},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// changesEqual matches a balance change map by decimal value.
func changesEqual(expected map[string]decimal.Decimal) interface{} {
	return mock.MatchedBy(func(got map[string]decimal.Decimal) bool {
		if len(got) != len(expected) {
			return false
		}
		for id, amt := range expected {
			if !got[id].Equal(amt) {
				return false
			}
		}
		return true
	})
}
