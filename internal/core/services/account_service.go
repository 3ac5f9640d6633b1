package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/SscSPs/money_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultCurrencyCode = "USD"

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountScopeAuthorizer adds the scope authorizer dependency
func WithAccountScopeAuthorizer(authorizer portssvc.ScopeAuthorizerSvc) AccountServiceOption {
	return func(s *accountService) {
		s.ScopeAuthorizer = authorizer
	}
}

// WithAccountStatementCache makes new accounts drop the scope's cached statements.
func WithAccountStatementCache(cache portsrepo.StatementCache) AccountServiceOption {
	return func(s *accountService) {
		s.StatementCache = cache
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{accountRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, session domain.Session, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := s.AuthorizeSession(ctx, session, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to create account",
			slog.String("user_id", session.UserID),
			slog.String("scope_id", session.ScopeID))
		return nil, err
	}

	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: account code and name are required", apperrors.ErrValidation)
	}
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}
	currency := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if currency == "" {
		currency = defaultCurrencyCode
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		ScopeID:      session.ScopeID,
		Code:         code,
		Name:         name,
		AccountType:  req.AccountType,
		CurrencyCode: currency,
		Description:  req.Description,
		IsActive:     true,
		Balance:      decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.UserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("scope_id", session.ScopeID),
			slog.String("code", code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	s.InvalidateStatements(ctx, session.ScopeID)

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccount(ctx context.Context, session domain.Session, accountID string) (*domain.Account, error) {
	if err := s.AuthorizeSession(ctx, session, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, session.ScopeID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, session domain.Session) ([]domain.Account, error) {
	if err := s.AuthorizeSession(ctx, session, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, session.ScopeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("scope_id", session.ScopeID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) GetChartOfAccounts(ctx context.Context, session domain.Session) (*accounting.ChartOfAccounts, error) {
	accounts, err := s.ListAccounts(ctx, session)
	if err != nil {
		return nil, err
	}
	return accounting.NewChartOfAccounts(session.ScopeID, accounts), nil
}
