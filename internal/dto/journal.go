package dto

import (
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalEntryLineRequest is one proposed line. Account accepts an account ID or code.
type JournalEntryLineRequest struct {
	Account      string          `json:"account"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}

// CreateJournalEntryRequest defines the data needed to record a journal entry.
// Description and lines are checked by the ledger rules so every rejection carries a stable message.
type CreateJournalEntryRequest struct {
	Date        time.Time                 `json:"date"` // Defaults to now
	Description string                    `json:"description"`
	Lines       []JournalEntryLineRequest `json:"lines"`
	Status      domain.JournalStatus      `json:"status" binding:"omitempty,oneof=DRAFT POSTED"` // Defaults to POSTED
}

// UpdateDraftJournalEntryRequest replaces the editable fields of a draft.
type UpdateDraftJournalEntryRequest struct {
	Date        *time.Time                `json:"date"`
	Description string                    `json:"description"`
	Lines       []JournalEntryLineRequest `json:"lines"`
}

// ToDomainLines converts request lines into unresolved domain lines.
func ToDomainLines(lines []JournalEntryLineRequest) []domain.JournalEntryLine {
	out := make([]domain.JournalEntryLine, len(lines))
	for i, l := range lines {
		out[i] = domain.JournalEntryLine{
			LineNo:       i + 1,
			AccountRef:   l.Account,
			Description:  l.Description,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
		}
	}
	return out
}

// JournalEntryLineResponse defines the data returned for a journal line.
type JournalEntryLineResponse struct {
	LineID       string          `json:"lineID"`
	LineNo       int             `json:"lineNo"`
	AccountID    string          `json:"accountID"`
	AccountRef   string          `json:"accountRef"`
	Description  string          `json:"description,omitempty"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	JournalID     string                     `json:"journalID"`
	Date          time.Time                  `json:"date"`
	Description   string                     `json:"description"`
	Status        domain.JournalStatus       `json:"status"`
	Amount        decimal.Decimal            `json:"amount"`
	ReversalOfID  *string                    `json:"reversalOfID,omitempty"`
	Lines         []JournalEntryLineResponse `json:"lines,omitempty"`
	CreatedAt     time.Time                  `json:"createdAt"`
	CreatedBy     string                     `json:"createdBy"`
	LastUpdatedAt time.Time                  `json:"lastUpdatedAt"`
	LastUpdatedBy string                     `json:"lastUpdatedBy"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(j *domain.JournalEntry) JournalEntryResponse {
	res := JournalEntryResponse{
		JournalID:     j.JournalID,
		Date:          j.Date,
		Description:   j.Description,
		Status:        j.Status,
		Amount:        j.Amount,
		ReversalOfID:  j.ReversalOfID,
		CreatedAt:     j.CreatedAt,
		CreatedBy:     j.CreatedBy,
		LastUpdatedAt: j.LastUpdatedAt,
		LastUpdatedBy: j.LastUpdatedBy,
	}
	for _, l := range j.Lines {
		res.Lines = append(res.Lines, JournalEntryLineResponse{
			LineID:       l.LineID,
			LineNo:       l.LineNo,
			AccountID:    l.AccountID,
			AccountRef:   l.AccountRef,
			Description:  l.Description,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
		})
	}
	return res
}

// ListJournalEntriesParams defines query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
	Status    string `form:"status" binding:"omitempty,oneof=DRAFT POSTED VOID"`
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}
