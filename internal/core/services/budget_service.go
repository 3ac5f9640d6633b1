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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepository
	txnRepo    portsrepo.TransactionRepository
}

// BudgetServiceOption is a functional option for configuring the budget service
type BudgetServiceOption func(*budgetService)

// WithBudgetScopeAuthorizer adds the scope authorizer dependency
func WithBudgetScopeAuthorizer(authorizer portssvc.ScopeAuthorizerSvc) BudgetServiceOption {
	return func(s *budgetService) {
		s.ScopeAuthorizer = authorizer
	}
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, txnRepo portsrepo.TransactionRepository, options ...BudgetServiceOption) portssvc.BudgetSvcFacade {
	svc := &budgetService{budgetRepo: budgetRepo, txnRepo: txnRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, session domain.Session, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if err := s.AuthorizeSession(ctx, session, domain.RoleMember); err != nil {
		return nil, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if req.AllocatedAmount.IsNegative() {
		return nil, fmt.Errorf("%w: allocated amount cannot be negative", apperrors.ErrValidation)
	}
	if req.PeriodStart.IsZero() || req.PeriodEnd.IsZero() || req.PeriodEnd.Before(req.PeriodStart) {
		return nil, fmt.Errorf("%w: budget period is invalid", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:        uuid.NewString(),
		ScopeID:         session.ScopeID,
		Category:        category,
		AllocatedAmount: req.AllocatedAmount,
		SpentAmount:     decimal.Zero,
		PeriodStart:     req.PeriodStart,
		PeriodEnd:       req.PeriodEnd,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.UserID,
		},
	}
	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("category", category))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	s.LogInfo(ctx, "Budget created successfully", slog.String("budget_id", budget.BudgetID))
	return &budget, nil
}

// budgetPeriod widens a date-only period end to the end of that day.
func budgetPeriod(b domain.Budget) domain.DateRange {
	r := b.Period()
	if h, m, sec := r.To.Clock(); h == 0 && m == 0 && sec == 0 && r.To.Nanosecond() == 0 {
		r.To = r.To.Add(24*time.Hour - time.Nanosecond)
	}
	return r
}

// BudgetProgressFor computes the spending of a budget from transactions. Only non-cancelled
// expenses of the same category (case-insensitive) dated within the period count; amounts are
// taken as magnitudes.
func BudgetProgressFor(b domain.Budget, txns []domain.Transaction) domain.BudgetProgress {
	period := budgetPeriod(b)
	spent := decimal.Zero
	for _, t := range txns {
		if t.Type != domain.ExpenseTransaction || t.Status == domain.Cancelled {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(t.Category), b.Category) || !period.Contains(t.Date) {
			continue
		}
		spent = spent.Add(t.Amount.Abs())
	}

	b.SpentAmount = spent
	progress := domain.BudgetProgress{
		Budget:     b,
		Spent:      spent,
		Remaining:  b.AllocatedAmount.Sub(spent),
		OverBudget: spent.GreaterThan(b.AllocatedAmount),
	}
	switch {
	case b.AllocatedAmount.IsPositive():
		progress.PercentUsed = spent.Div(b.AllocatedAmount).Mul(hundred).Round(2)
	case spent.IsPositive():
		progress.PercentUsed = hundred
	default:
		progress.PercentUsed = decimal.Zero
	}
	return progress
}

func (s *budgetService) ListBudgetProgress(ctx context.Context, session domain.Session, activeOn *time.Time) ([]domain.BudgetProgress, error) {
	if err := s.AuthorizeSession(ctx, session, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.ListBudgets(ctx, session.ScopeID, activeOn)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets", slog.String("scope_id", session.ScopeID))
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if len(budgets) == 0 {
		return []domain.BudgetProgress{}, nil
	}

	// One fetch covering every budget period.
	span := budgetPeriod(budgets[0])
	for _, b := range budgets[1:] {
		p := budgetPeriod(b)
		if p.From.Before(span.From) {
			span.From = p.From
		}
		if p.To.After(span.To) {
			span.To = p.To
		}
	}
	txns, err := s.txnRepo.ListTransactions(ctx, session.ScopeID, &span)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for budgets", slog.String("scope_id", session.ScopeID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	progress := make([]domain.BudgetProgress, len(budgets))
	for i, b := range budgets {
		progress[i] = BudgetProgressFor(b, txns)
	}
	return progress, nil
}
