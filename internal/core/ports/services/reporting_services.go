package services

import (
	"context"
	"time"

	"github.com/accuflow/accuflow/internal/core/domain"
)

// ReportingService composes balance data into the report shapes. Every
// method is a pure read over the store's posted contents.
type ReportingService interface {
	Ledger(ctx context.Context, accountID string, from, to *time.Time) (*domain.LedgerReport, error)
	TrialBalance(ctx context.Context, asOf *time.Time) (*domain.TrialBalanceReport, error)
	IncomeStatement(ctx context.Context, asOf *time.Time) (*domain.IncomeStatementReport, error)
	BalanceSheet(ctx context.Context, asOf *time.Time) (*domain.BalanceSheetReport, error)
	Dashboard(ctx context.Context) (*domain.DashboardReport, error)
}
