package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/google/uuid"
)

type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepository
	accountRepo portsrepo.AccountReader
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionScopeAuthorizer adds the scope authorizer dependency
func WithTransactionScopeAuthorizer(authorizer portssvc.ScopeAuthorizerSvc) TransactionServiceOption {
	return func(s *transactionService) {
		s.ScopeAuthorizer = authorizer
	}
}

// WithTransactionStatementCache makes new transactions drop the scope's cached statements.
func WithTransactionStatementCache(cache portsrepo.StatementCache) TransactionServiceOption {
	return func(s *transactionService) {
		s.StatementCache = cache
	}
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountReader, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{txnRepo: txnRepo, accountRepo: accountRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, session domain.Session, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.AuthorizeSession(ctx, session, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to create transaction",
			slog.String("user_id", session.UserID),
			slog.String("scope_id", session.ScopeID))
		return nil, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	switch req.Type {
	case domain.IncomeTransaction:
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: income amount cannot be negative", apperrors.ErrValidation)
		}
	case domain.ExpenseTransaction:
	default:
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}
	status := req.Status
	switch status {
	case "":
		status = domain.Cleared
	case domain.Pending, domain.Cleared, domain.Cancelled:
	default:
		return nil, fmt.Errorf("%w: unknown transaction status %q", apperrors.ErrValidation, req.Status)
	}

	if req.AccountID != "" && s.accountRepo != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, session.ScopeID, req.AccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, req.AccountID)
			}
			s.LogError(ctx, err, "Failed to look up transaction account", slog.String("account_id", req.AccountID))
			return nil, fmt.Errorf("failed to look up account: %w", err)
		}
	}

	now := time.Now().UTC()
	date := req.Date
	if date.IsZero() {
		date = now
	}
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		ScopeID:       session.ScopeID,
		AccountID:     req.AccountID,
		Category:      category,
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          req.Type,
		Status:        status,
		Date:          date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.UserID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("scope_id", session.ScopeID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	s.InvalidateStatements(ctx, session.ScopeID)

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("category", txn.Category))
	return &txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, session domain.Session, period *domain.DateRange) ([]domain.Transaction, error) {
	if err := s.AuthorizeSession(ctx, session, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactions(ctx, session.ScopeID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("scope_id", session.ScopeID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}
