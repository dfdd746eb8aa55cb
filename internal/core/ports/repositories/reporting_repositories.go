package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/accuflow/accuflow/internal/core/domain"
)

// ReportingRepository provides the read-only aggregations behind balances
// and reports. Only lines of POSTED journals are ever considered; draft
// journals contribute to nothing.
type ReportingRepository interface {
	// GetAccountTotals sums debit and credit over the account's posted lines,
	// restricted to journals dated on or before asOf when given.
	GetAccountTotals(ctx context.Context, accountID string, asOf *time.Time) (totalDebit, totalCredit decimal.Decimal, err error)

	// GetAllAccountTotals returns per-account posted debit/credit sums for
	// every account; accounts with no posted activity up to asOf come back
	// with zero sums so reports can list them.
	GetAllAccountTotals(ctx context.Context, asOf *time.Time) ([]domain.AccountTotals, error)

	// GetLedgerLines returns an account's posted lines joined with their
	// journal headers, ordered by (journal date, journal creation time) and
	// optionally restricted to a date range.
	GetLedgerLines(ctx context.Context, accountID string, from, to *time.Time) ([]domain.LedgerLine, error)
}
