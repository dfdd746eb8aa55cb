package models

import "github.com/shopspring/decimal"

// Transaction is the database representation of a journal line.
// The check constraint on the table guarantees debit >= 0, credit >= 0 and
// that at most one side is positive.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	JournalID     string          `db:"journal_id"`
	AccountID     string          `db:"account_id"`
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
	AuditFields
}
