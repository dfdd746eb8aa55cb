package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/accuflow/accuflow/internal/core/domain"
)

const dateLayout = "2006-01-02"

// JournalLineRequest is one candidate line of a journal submission. Rows
// with zero amounts on both sides are accepted and discarded by the engine.
type JournalLineRequest struct {
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// SubmitJournalRequest defines the payload for creating or re-submitting a
// journal. Dates cross the boundary as YYYY-MM-DD strings.
type SubmitJournalRequest struct {
	Date        string               `json:"date" binding:"required,datetime=2006-01-02"`
	Description string               `json:"description"`
	Status      string               `json:"status" binding:"required,oneof=DRAFT POSTED"`
	Lines       []JournalLineRequest `json:"lines" binding:"required"`
}

// ParsedDate returns the journal date as a calendar date.
func (r SubmitJournalRequest) ParsedDate() (time.Time, error) {
	return time.Parse(dateLayout, r.Date)
}

// ToLineCandidates converts request lines into domain candidates.
func (r SubmitJournalRequest) ToLineCandidates() []domain.LineCandidate {
	candidates := make([]domain.LineCandidate, len(r.Lines))
	for i, l := range r.Lines {
		candidates[i] = domain.LineCandidate{
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
		}
	}
	return candidates
}

// ListJournalsParams holds query parameters for journal listings.
type ListJournalsParams struct {
	Date      *time.Time
	Query     string
	Limit     int
	NextToken *string
}

// TransactionResponse defines the data returned for a journal line.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID   string                `json:"journalID"`
	Date        string                `json:"date"`
	Description string                `json:"description"`
	Status      string                `json:"status"`
	CreatedAt   time.Time             `json:"createdAt"`
	Lines       []TransactionResponse `json:"lines,omitempty"`
}

// ListJournalsResponse is a page of journals plus the cursor for the next page.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain journal line to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		Debit:         txn.Debit,
		Credit:        txn.Credit,
	}
}

// ToJournalResponse converts a domain journal (with or without lines loaded)
// to its response DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:   j.JournalID,
		Date:        j.JournalDate.Format(dateLayout),
		Description: j.Description,
		Status:      string(j.Status),
		CreatedAt:   j.CreatedAt,
	}
	if j.Transactions != nil {
		resp.Lines = make([]TransactionResponse, len(j.Transactions))
		for i := range j.Transactions {
			resp.Lines[i] = ToTransactionResponse(&j.Transactions[i])
		}
	}
	return resp
}
