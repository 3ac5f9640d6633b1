package accounting

import (
	"fmt"
	"strings"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidationReason identifies which double-entry rule an entry violated.
type ValidationReason string

const (
	ReasonDescriptionRequired ValidationReason = "description_required"
	ReasonNoLines             ValidationReason = "no_lines"
	ReasonAccountRequired     ValidationReason = "account_required"
	ReasonAccountNotFound     ValidationReason = "account_not_found"
	ReasonNegativeAmount      ValidationReason = "negative_amount"
	ReasonZeroLine            ValidationReason = "zero_line"
	ReasonBothSides           ValidationReason = "both_sides"
	ReasonUnbalanced          ValidationReason = "unbalanced"
	ReasonZeroTotal           ValidationReason = "zero_total"
)

// ValidationError describes the first rule a journal entry violated.
// It matches apperrors.ErrValidation with errors.Is.
type ValidationError struct {
	Reason  ValidationReason
	Line    int // 1-based line number, 0 when the error concerns the whole entry
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return apperrors.ErrValidation
}

func lineError(reason ValidationReason, line int, format string, args ...any) *ValidationError {
	return &ValidationError{
		Reason:  reason,
		Line:    line,
		Message: fmt.Sprintf("Line %d: ", line) + fmt.Sprintf(format, args...),
	}
}

// EntryValidator enforces the double-entry rules on a proposed journal entry.
// It holds no mutable state; validating the same entry twice yields the same result.
type EntryValidator struct {
	chart           *ChartOfAccounts
	strictLineSides bool
}

// ValidatorOption configures an EntryValidator.
type ValidatorOption func(*EntryValidator)

// WithChart makes the validator reject lines whose account is not in the chart.
func WithChart(chart *ChartOfAccounts) ValidatorOption {
	return func(v *EntryValidator) {
		v.chart = chart
	}
}

// WithStrictLineSides rejects lines that carry both a debit and a credit amount.
func WithStrictLineSides(strict bool) ValidatorOption {
	return func(v *EntryValidator) {
		v.strictLineSides = strict
	}
}

// NewEntryValidator creates a validator with the given options.
func NewEntryValidator(opts ...ValidatorOption) *EntryValidator {
	v := &EntryValidator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks an entry before it is posted. Rules are applied in a fixed order and the
// first violation is returned.
func (v *EntryValidator) Validate(description string, lines []domain.JournalEntryLine) error {
	if err := requireDescription(description); err != nil {
		return err
	}
	if len(lines) == 0 {
		return &ValidationError{Reason: ReasonNoLines, Message: "Journal entry must have at least one line."}
	}
	if err := v.validateLines(lines); err != nil {
		return err
	}

	for i, line := range lines {
		if line.DebitAmount.IsZero() && line.CreditAmount.IsZero() {
			return lineError(ReasonZeroLine, i+1, "debit and credit cannot be zero.")
		}
	}
	if v.strictLineSides {
		for i, line := range lines {
			if !line.DebitAmount.IsZero() && !line.CreditAmount.IsZero() {
				return lineError(ReasonBothSides, i+1, "a line must have either a debit or a credit, not both.")
			}
		}
	}

	debits, credits := decimal.Zero, decimal.Zero
	for _, line := range lines {
		debits = debits.Add(line.DebitAmount)
		credits = credits.Add(line.CreditAmount)
	}
	if !debits.Equal(credits) {
		return &ValidationError{Reason: ReasonUnbalanced, Message: "Total debits must equal total credits."}
	}
	if debits.IsZero() {
		return &ValidationError{Reason: ReasonZeroTotal, Message: "Total debits cannot be zero."}
	}
	return nil
}

// ValidateDraft checks only what a draft needs to be stored: a description, resolvable
// accounts and non-negative amounts. Balance is checked when the draft is posted.
func (v *EntryValidator) ValidateDraft(description string, lines []domain.JournalEntryLine) error {
	if err := requireDescription(description); err != nil {
		return err
	}
	return v.validateLines(lines)
}

func requireDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return &ValidationError{Reason: ReasonDescriptionRequired, Message: "Description is required."}
	}
	return nil
}

func (v *EntryValidator) validateLines(lines []domain.JournalEntryLine) error {
	for i, line := range lines {
		if strings.TrimSpace(line.AccountRef) == "" && line.AccountID == "" {
			return lineError(ReasonAccountRequired, i+1, "account is required.")
		}
	}
	if v.chart != nil {
		for i, line := range lines {
			ref := lineRef(line)
			if _, ok := v.chart.Resolve(ref); ok {
				continue
			}
			if suggestion, ok := v.chart.Suggest(ref); ok {
				return lineError(ReasonAccountNotFound, i+1, "account %s not found. Did you mean %s?", ref, suggestion)
			}
			return lineError(ReasonAccountNotFound, i+1, "account %s not found.", ref)
		}
	}
	for i, line := range lines {
		if line.DebitAmount.IsNegative() || line.CreditAmount.IsNegative() {
			return lineError(ReasonNegativeAmount, i+1, "amounts cannot be negative.")
		}
	}
	return nil
}

func lineRef(line domain.JournalEntryLine) string {
	if ref := strings.TrimSpace(line.AccountRef); ref != "" {
		return ref
	}
	return line.AccountID
}

// ResolveLines returns a copy of lines with AccountID filled from the chart and line numbers
// assigned in order. Call it after Validate or ValidateDraft succeeded with the same chart.
func ResolveLines(lines []domain.JournalEntryLine, chart *ChartOfAccounts) ([]domain.JournalEntryLine, error) {
	out := make([]domain.JournalEntryLine, len(lines))
	for i, line := range lines {
		ref := lineRef(line)
		acc, ok := chart.Resolve(ref)
		if !ok {
			return nil, lineError(ReasonAccountNotFound, i+1, "account %s not found.", ref)
		}
		line.AccountID = acc.AccountID
		if line.AccountRef == "" {
			line.AccountRef = ref
		}
		line.LineNo = i + 1
		out[i] = line
	}
	return out, nil
}
