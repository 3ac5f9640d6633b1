package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/SscSPs/money_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/mock"
)

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, session domain.Session, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccount(ctx context.Context, session domain.Session, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, session, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, session domain.Session) ([]domain.Account, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetChartOfAccounts(ctx context.Context, session domain.Session) (*accounting.ChartOfAccounts, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.ChartOfAccounts), args.Error(1)
}

type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) entry(args mock.Arguments) (*domain.JournalEntry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetJournalEntry(ctx context.Context, session domain.Session, journalID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, session, journalID))
}

func (m *MockJournalService) ListJournalEntries(ctx context.Context, session domain.Session, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalEntriesResponse), args.Error(1)
}

func (m *MockJournalService) CreateJournalEntry(ctx context.Context, session domain.Session, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, session, req))
}

func (m *MockJournalService) UpdateDraftJournalEntry(ctx context.Context, session domain.Session, journalID string, req dto.UpdateDraftJournalEntryRequest) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, session, journalID, req))
}

func (m *MockJournalService) PostJournalEntry(ctx context.Context, session domain.Session, journalID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, session, journalID))
}

func (m *MockJournalService) VoidJournalEntry(ctx context.Context, session domain.Session, journalID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, session, journalID))
}

func (m *MockJournalService) ReverseJournalEntry(ctx context.Context, session domain.Session, journalID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, session, journalID))
}

type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) CreateTransaction(ctx context.Context, session domain.Session, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, session domain.Session, period *domain.DateRange) ([]domain.Transaction, error) {
	args := m.Called(ctx, session, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

type MockStatementService struct {
	mock.Mock
}

var _ portssvc.StatementSvcFacade = (*MockStatementService)(nil)

func (m *MockStatementService) GenerateFinancialStatement(ctx context.Context, session domain.Session, params domain.StatementParams) (*domain.FinancialStatement, error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialStatement), args.Error(1)
}

func (m *MockStatementService) ExportFinancialStatement(ctx context.Context, session domain.Session, params domain.StatementParams) ([]domain.ExportRow, error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExportRow), args.Error(1)
}

type MockBudgetService struct {
	mock.Mock
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

func (m *MockBudgetService) CreateBudget(ctx context.Context, session domain.Session, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) ListBudgetProgress(ctx context.Context, session domain.Session, activeOn *time.Time) ([]domain.BudgetProgress, error) {
	args := m.Called(ctx, session, activeOn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetProgress), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

var _ portssvc.ProfileSvc = (*MockProfileService)(nil)

func (m *MockProfileService) GetProfile(ctx context.Context, session domain.Session) (*domain.Profile, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
