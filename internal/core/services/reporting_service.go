package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/accuflow/accuflow/internal/apperrors"
	"github.com/accuflow/accuflow/internal/core/domain"
	portsrepo "github.com/accuflow/accuflow/internal/core/ports/repositories"
	portssvc "github.com/accuflow/accuflow/internal/core/ports/services"
	"github.com/accuflow/accuflow/internal/utils/accounting"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountRepository
}

// NewReportingServiceImpl creates a new reporting service
func NewReportingServiceImpl(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountRepository) portssvc.ReportingService {
	return &reportingServiceImpl{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
	}
}

// Ensure reportingServiceImpl implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingServiceImpl)(nil)

// Ledger replays an account's posted lines in order with a running balance
// seeded at zero.
func (s *reportingServiceImpl) Ledger(ctx context.Context, accountID string, from, to *time.Time) (*domain.LedgerReport, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to find account for ledger", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	lines, err := s.reportingRepo.GetLedgerLines(ctx, accountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger lines", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to load ledger lines for %s: %w", accountID, err)
	}

	rows := make([]domain.LedgerRow, len(lines))
	balance := decimal.Zero
	for i, l := range lines {
		balance = balance.Add(accounting.SignedLineAmount(account.AccountType, l.Debit, l.Credit))
		rows[i] = domain.LedgerRow{LedgerLine: l, Balance: balance}
	}

	return &domain.LedgerReport{
		Account:        *account,
		Rows:           rows,
		ClosingBalance: balance,
	}, nil
}

// TrialBalance places each nonzero balance under its natural column; an
// abnormal balance (negative after the sign convention) shows as a positive
// amount on the opposite column.
func (s *reportingServiceImpl) TrialBalance(ctx context.Context, asOf *time.Time) (*domain.TrialBalanceReport, error) {
	totals, err := s.reportingRepo.GetAllAccountTotals(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account totals for trial balance")
		return nil, fmt.Errorf("failed to load account totals: %w", err)
	}

	report := &domain.TrialBalanceReport{
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, t := range totals {
		balance := accounting.BalanceFromTotals(t.AccountType, t.TotalDebit, t.TotalCredit)
		if balance.IsZero() {
			continue
		}

		row := domain.TrialBalanceRow{
			AccountID:   t.AccountID,
			AccountName: t.Name,
			AccountType: t.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		debitSide := t.AccountType.IsDebitNormal()
		if balance.IsNegative() {
			debitSide = !debitSide
			balance = balance.Abs()
		}
		if debitSide {
			row.Debit = balance
			report.TotalDebit = report.TotalDebit.Add(balance)
		} else {
			row.Credit = balance
			report.TotalCredit = report.TotalCredit.Add(balance)
		}
		report.Rows = append(report.Rows, row)
	}

	return report, nil
}

// profitAndLoss computes revenue and expense balances up to asOf. Shared by
// the income statement, the balance sheet (retained profit) and the dashboard.
func (s *reportingServiceImpl) profitAndLoss(totals []domain.AccountTotals) *domain.IncomeStatementReport {
	report := &domain.IncomeStatementReport{
		Revenue:      []domain.AccountAmount{},
		Expenses:     []domain.AccountAmount{},
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, t := range totals {
		balance := accounting.BalanceFromTotals(t.AccountType, t.TotalDebit, t.TotalCredit)
		entry := domain.AccountAmount{AccountID: t.AccountID, Name: t.Name, Amount: balance}
		switch t.AccountType {
		case domain.Revenue:
			report.Revenue = append(report.Revenue, entry)
			report.TotalRevenue = report.TotalRevenue.Add(balance)
		case domain.Expense:
			report.Expenses = append(report.Expenses, entry)
			report.TotalExpense = report.TotalExpense.Add(balance)
		}
	}
	report.NetProfit = report.TotalRevenue.Sub(report.TotalExpense)
	return report
}

func (s *reportingServiceImpl) IncomeStatement(ctx context.Context, asOf *time.Time) (*domain.IncomeStatementReport, error) {
	totals, err := s.reportingRepo.GetAllAccountTotals(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account totals for income statement")
		return nil, fmt.Errorf("failed to load account totals: %w", err)
	}
	return s.profitAndLoss(totals), nil
}

// BalanceSheet folds the net profit for the same cutoff into total equity.
// Total liabilities + equity is reported as computed and is not forced to
// equal total assets.
func (s *reportingServiceImpl) BalanceSheet(ctx context.Context, asOf *time.Time) (*domain.BalanceSheetReport, error) {
	totals, err := s.reportingRepo.GetAllAccountTotals(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account totals for balance sheet")
		return nil, fmt.Errorf("failed to load account totals: %w", err)
	}

	report := &domain.BalanceSheetReport{
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		EquityBase:       decimal.Zero,
	}
	for _, t := range totals {
		balance := accounting.BalanceFromTotals(t.AccountType, t.TotalDebit, t.TotalCredit)
		entry := domain.AccountAmount{AccountID: t.AccountID, Name: t.Name, Amount: balance}
		switch t.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, entry)
			report.TotalAssets = report.TotalAssets.Add(balance)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, entry)
			report.TotalLiabilities = report.TotalLiabilities.Add(balance)
		case domain.Equity:
			report.Equity = append(report.Equity, entry)
			report.EquityBase = report.EquityBase.Add(balance)
		}
	}

	pnl := s.profitAndLoss(totals)
	report.NetProfit = pnl.NetProfit
	report.TotalEquity = report.EquityBase.Add(report.NetProfit)
	report.TotalLiabilitiesAndEquity = report.TotalLiabilities.Add(report.TotalEquity)
	return report, nil
}

// Dashboard summarises current totals plus the expense breakdown for the
// landing view. Only expenses with a positive balance appear in the breakdown.
func (s *reportingServiceImpl) Dashboard(ctx context.Context) (*domain.DashboardReport, error) {
	totals, err := s.reportingRepo.GetAllAccountTotals(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account totals for dashboard")
		return nil, fmt.Errorf("failed to load account totals: %w", err)
	}

	report := &domain.DashboardReport{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalRevenue:     decimal.Zero,
		TotalExpense:     decimal.Zero,
		ExpenseBreakdown: []domain.AccountAmount{},
	}
	for _, t := range totals {
		balance := accounting.BalanceFromTotals(t.AccountType, t.TotalDebit, t.TotalCredit)
		switch t.AccountType {
		case domain.Asset:
			report.TotalAssets = report.TotalAssets.Add(balance)
		case domain.Liability:
			report.TotalLiabilities = report.TotalLiabilities.Add(balance)
		case domain.Revenue:
			report.TotalRevenue = report.TotalRevenue.Add(balance)
		case domain.Expense:
			report.TotalExpense = report.TotalExpense.Add(balance)
			if balance.IsPositive() {
				report.ExpenseBreakdown = append(report.ExpenseBreakdown, domain.AccountAmount{
					AccountID: t.AccountID,
					Name:      t.Name,
					Amount:    balance,
				})
			}
		}
	}
	report.NetProfit = report.TotalRevenue.Sub(report.TotalExpense)
	return report, nil
}
