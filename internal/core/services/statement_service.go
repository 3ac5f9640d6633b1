package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/utils/accounting"
)

// statementService derives financial statements from accounts, journal lines and transactions.
type statementService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalReader
	txnRepo     portsrepo.TransactionRepository
	assetRepo   portsrepo.AssetRepository
	cache       portsrepo.StatementCache
	cacheTTL    time.Duration
}

// StatementServiceOption is a functional option for configuring the statement service
type StatementServiceOption func(*statementService)

// WithStatementScopeAuthorizer adds the scope authorizer dependency
func WithStatementScopeAuthorizer(authorizer portssvc.ScopeAuthorizerSvc) StatementServiceOption {
	return func(s *statementService) {
		s.ScopeAuthorizer = authorizer
	}
}

// WithStatementCache caches generated statements for ttl.
func WithStatementCache(cache portsrepo.StatementCache, ttl time.Duration) StatementServiceOption {
	return func(s *statementService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// NewStatementService creates a new statement service with the provided options
func NewStatementService(
	accountRepo portsrepo.AccountReader,
	journalRepo portsrepo.JournalReader,
	txnRepo portsrepo.TransactionRepository,
	assetRepo portsrepo.AssetRepository,
	options ...StatementServiceOption,
) portssvc.StatementSvcFacade {
	svc := &statementService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		txnRepo:     txnRepo,
		assetRepo:   assetRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

func boundKey(t time.Time) string {
	if t.IsZero() {
		return "open"
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// statementCacheKey identifies a statement within its scope.
func statementCacheKey(params domain.StatementParams) string {
	return fmt.Sprintf("%s:%s:%s:%s", params.Type, params.Source, boundKey(params.PeriodStart), boundKey(params.PeriodEnd))
}

// GenerateFinancialStatement builds the requested statement, serving it from cache when possible.
func (s *statementService) GenerateFinancialStatement(ctx context.Context, session domain.Session, params domain.StatementParams) (*domain.FinancialStatement, error) {
	if err := s.AuthorizeSession(ctx, session, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view statements",
			slog.String("user_id", session.UserID),
			slog.String("scope_id", session.ScopeID))
		return nil, err
	}

	if !params.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown statement type %q", apperrors.ErrValidation, params.Type)
	}
	if params.Type == domain.BalanceSheetStatement {
		params.Source = ""
	} else if params.Source == "" {
		params.Source = domain.SourceTransactions
	} else if !params.Source.IsValid() {
		return nil, fmt.Errorf("%w: unknown statement source %q", apperrors.ErrValidation, params.Source)
	}
	if !params.PeriodStart.IsZero() && !params.PeriodEnd.IsZero() && params.PeriodEnd.Before(params.PeriodStart) {
		return nil, fmt.Errorf("%w: period end is before period start", apperrors.ErrValidation)
	}

	key := statementCacheKey(params)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, session.ScopeID, key)
		if err != nil {
			s.LogError(ctx, err, "Failed to read cached statement", slog.String("key", key))
		} else if ok {
			s.LogDebug(ctx, "Statement served from cache", slog.String("key", key))
			return cached, nil
		}
	}

	stmt := &domain.FinancialStatement{
		Type:        params.Type,
		ScopeID:     session.ScopeID,
		PeriodStart: params.PeriodStart,
		PeriodEnd:   params.PeriodEnd,
		Source:      params.Source,
		GeneratedAt: time.Now().UTC(),
		GeneratedBy: session.UserID,
	}

	var err error
	switch params.Type {
	case domain.ProfitLossStatement:
		err = s.fillProfitAndLoss(ctx, session.ScopeID, params, stmt)
	case domain.BalanceSheetStatement:
		err = s.fillBalanceSheet(ctx, session.ScopeID, stmt)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to generate statement",
			slog.String("scope_id", session.ScopeID),
			slog.String("type", string(params.Type)))
		return nil, fmt.Errorf("failed to generate %s statement: %w", params.Type, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, session.ScopeID, key, stmt, s.cacheTTL); err != nil {
			s.LogError(ctx, err, "Failed to cache statement", slog.String("key", key))
		}
	}

	s.LogInfo(ctx, "Statement generated successfully",
		slog.String("scope_id", session.ScopeID),
		slog.String("type", string(params.Type)),
		slog.Int("line_items", len(stmt.LineItems)))
	return stmt, nil
}

func (s *statementService) fillProfitAndLoss(ctx context.Context, scopeID string, params domain.StatementParams, stmt *domain.FinancialStatement) error {
	period := params.Period()
	var pnl domain.ProfitAndLoss
	switch params.Source {
	case domain.SourceJournal:
		accounts, err := s.accountRepo.ListAccounts(ctx, scopeID)
		if err != nil {
			return fmt.Errorf("failed to list accounts: %w", err)
		}
		entries, err := s.journalRepo.ListPostedJournalEntries(ctx, scopeID, period)
		if err != nil {
			return fmt.Errorf("failed to list posted journal entries: %w", err)
		}
		pnl = accounting.ProfitAndLossFromJournal(entries, accounting.NewChartOfAccounts(scopeID, accounts), period)
	default:
		txns, err := s.txnRepo.ListTransactions(ctx, scopeID, &period)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
		pnl = accounting.ProfitAndLossFromTransactions(txns, period)
	}
	stmt.ProfitAndLoss = &pnl
	stmt.LineItems = accounting.ProfitAndLossLineItems(pnl)
	return nil
}

func (s *statementService) fillBalanceSheet(ctx context.Context, scopeID string, stmt *domain.FinancialStatement) error {
	accounts, err := s.accountRepo.ListAccounts(ctx, scopeID)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}
	in := accounting.BalanceSheetInput{Accounts: accounts}
	if s.assetRepo != nil {
		if in.FixedAssets, err = s.assetRepo.ListFixedAssets(ctx, scopeID); err != nil {
			return fmt.Errorf("failed to list fixed assets: %w", err)
		}
		if in.Liabilities, err = s.assetRepo.ListLiabilities(ctx, scopeID); err != nil {
			return fmt.Errorf("failed to list liabilities: %w", err)
		}
	}
	bs := accounting.BuildBalanceSheet(in)
	stmt.BalanceSheet = &bs
	stmt.LineItems = accounting.BalanceSheetLineItems(bs)
	return nil
}

// ExportFinancialStatement generates a statement and flattens it into export rows.
func (s *statementService) ExportFinancialStatement(ctx context.Context, session domain.Session, params domain.StatementParams) ([]domain.ExportRow, error) {
	stmt, err := s.GenerateFinancialStatement(ctx, session, params)
	if err != nil {
		return nil, err
	}
	rows := accounting.FlattenStatement(stmt)
	s.LogDebug(ctx, "Statement exported", slog.String("type", string(stmt.Type)), slog.Int("rows", len(rows)))
	return rows, nil
}
