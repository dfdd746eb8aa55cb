package domain

import "github.com/shopspring/decimal"

// Transaction represents a single persisted line item within a Journal,
// affecting one account. Exactly one of Debit/Credit is positive; amounts
// are exact decimals with two fractional digits.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	JournalID     string          `json:"journalID"`     // FK -> Journal (owning)
	AccountID     string          `json:"accountID"`     // FK -> Account (non-owning)
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	AuditFields
}

// LineCandidate is an unvalidated journal line as submitted by a caller.
// A candidate with zero amounts represents a blank entry row and is
// discarded rather than rejected, whether or not an account is selected.
type LineCandidate struct {
	AccountID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// IsEmpty reports whether the candidate carries no amount on either side.
func (l LineCandidate) IsEmpty() bool {
	return l.Debit.IsZero() && l.Credit.IsZero()
}
