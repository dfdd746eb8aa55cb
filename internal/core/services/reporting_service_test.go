package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/accuflow/accuflow/internal/apperrors"
	"github.com/accuflow/accuflow/internal/core/domain"
	portssvc "github.com/accuflow/accuflow/internal/core/ports/services"
	"github.com/accuflow/accuflow/internal/core/services"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- Test Suite Setup ---

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockAccountRepo   *MockAccountRepository
	service           portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewReportingServiceImpl(suite.mockReportingRepo, suite.mockAccountRepo)
}

// cashSaleTotals is the classic two-account scenario: 500.00 cash sale.
func cashSaleTotals() []domain.AccountTotals {
	return []domain.AccountTotals{
		{AccountID: "cash", Name: "Cash", AccountType: domain.Asset, TotalDebit: dec("500.00"), TotalCredit: decimal.Zero},
		{AccountID: "sales", Name: "Sales", AccountType: domain.Revenue, TotalDebit: decimal.Zero, TotalCredit: dec("500.00")},
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestTrialBalance_NaturalSides() {
	ctx := context.Background()
	suite.mockReportingRepo.On("GetAllAccountTotals", ctx, (*time.Time)(nil)).Return(cashSaleTotals(), nil).Once()

	report, err := suite.service.TrialBalance(ctx, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 2)

	cash := report.Rows[0]
	suite.Equal("Cash", cash.AccountName)
	suite.True(cash.Debit.Equal(dec("500.00")))
	suite.True(cash.Credit.IsZero())

	sales := report.Rows[1]
	suite.Equal("Sales", sales.AccountName)
	suite.True(sales.Debit.IsZero())
	suite.True(sales.Credit.Equal(dec("500.00")))

	suite.True(report.TotalDebit.Equal(report.TotalCredit))
	suite.True(report.TotalDebit.Equal(dec("500.00")))
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_ZeroBalanceOmitted() {
	ctx := context.Background()
	totals := append(cashSaleTotals(), domain.AccountTotals{
		AccountID: "wash", Name: "Wash", AccountType: domain.Expense,
		TotalDebit: dec("75.00"), TotalCredit: dec("75.00"),
	})
	suite.mockReportingRepo.On("GetAllAccountTotals", ctx, (*time.Time)(nil)).Return(totals, nil).Once()

	report, err := suite.service.TrialBalance(ctx, nil)

	suite.Require().NoError(err)
	suite.Len(report.Rows, 2)
	for _, row := range report.Rows {
		suite.NotEqual("Wash", row.AccountName)
	}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_AbnormalBalanceFlipsSide() {
	ctx := context.Background()
	// An asset driven negative (overdrawn bank) shows on the credit side.
	totals := []domain.AccountTotals{
		{AccountID: "bank", Name: "Bank", AccountType: domain.Asset, TotalDebit: dec("100.00"), TotalCredit: dec("250.00")},
	}
	suite.mockReportingRepo.On("GetAllAccountTotals", ctx, (*time.Time)(nil)).Return(totals, nil).Once()

	report, err := suite.service.TrialBalance(ctx, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	suite.True(report.Rows[0].Debit.IsZero())
	suite.True(report.Rows[0].Credit.Equal(dec("150.00")))
	suite.True(report.TotalCredit.Equal(dec("150.00")))
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_AsOfForwarded() {
	ctx := context.Background()
	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	suite.mockReportingRepo.On("GetAllAccountTotals", ctx, &asOf).Return([]domain.AccountTotals{}, nil).Once()

	report, err := suite.service.TrialBalance(ctx, &asOf)

	suite.Require().NoError(err)
	suite.Empty(report.Rows)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement() {
	ctx := context.Background()
	totals := []domain.AccountTotals{
		{AccountID: "sales", Name: "Sales", AccountType: domain.Revenue, TotalCredit: dec("800.00"), TotalDebit: decimal.Zero},
		{AccountID: "rent", Name: "Rent", AccountType: domain.Expense, TotalDebit: dec("300.00"), TotalCredit: decimal.Zero},
		{AccountID: "cash", Name: "Cash", AccountType: domain.Asset, TotalDebit: dec("500.00"), TotalCredit: decimal.Zero},
	}
	suite.mockReportingRepo.On("GetAllAccountTotals", ctx, (*time.Time)(nil)).Return(totals, nil).Once()

	report, err := suite.service.IncomeStatement(ctx, nil)

	suite.Require().NoError(err)
	suite.Len(report.Revenue, 1)
	suite.Len(report.Expenses, 1)
	suite.True(report.TotalRevenue.Equal(dec("800.00")))
	suite.True(report.TotalExpense.Equal(dec("300.00")))
	suite.True(report.NetProfit.Equal(dec("500.00")))
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_InactiveAccountListedAtZero() {
	ctx := context.Background()
	// The repository returns every account, zero sums included; a revenue
	// account with no posted activity still gets its own row.
	totals := []domain.AccountTotals{
		{AccountID: "sales", Name: "Sales", AccountType: domain.Revenue, TotalCredit: dec("800.00"), TotalDebit: decimal.Zero},
		{AccountID: "interest", Name: "Interest Income", AccountType: domain.Revenue, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero},
	}
	suite.mockReportingRepo.On("GetAllAccountTotals", ctx, (*time.Time)(nil)).Return(totals, nil).Once()

	report, err := suite.service.IncomeStatement(ctx, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.Revenue, 2)
	suite.Equal("Interest Income", report.Revenue[1].Name)
	suite.True(report.Revenue[1].Amount.IsZero())
	suite.True(report.TotalRevenue.Equal(dec("800.00")))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_EquityFoldsInProfit() {
	ctx := context.Background()
	totals := []domain.AccountTotals{
		{AccountID: "cash", Name: "Cash", AccountType: domain.Asset, TotalDebit: dec("1500.00"), TotalCredit: decimal.Zero},
		{AccountID: "loan", Name: "Bank Loan", AccountType: domain.Liability, TotalCredit: dec("400.00"), TotalDebit: decimal.Zero},
		{AccountID: "capital", Name: "Owner Capital", AccountType: domain.Equity, TotalCredit: dec("600.00"), TotalDebit: decimal.Zero},
		{AccountID: "sales", Name: "Sales", AccountType: domain.Revenue, TotalCredit: dec("800.00"), TotalDebit: decimal.Zero},
		{AccountID: "rent", Name: "Rent", AccountType: domain.Expense, TotalDebit: dec("300.00"), TotalCredit: decimal.Zero},
	}
	suite.mockReportingRepo.On("GetAllAccountTotals", ctx, (*time.Time)(nil)).Return(totals, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, nil)

	suite.Require().NoError(err)
	suite.True(report.TotalAssets.Equal(dec("1500.00")))
	suite.True(report.TotalLiabilities.Equal(dec("400.00")))
	suite.True(report.EquityBase.Equal(dec("600.00")))
	suite.True(report.NetProfit.Equal(dec("500.00")))
	suite.True(report.TotalEquity.Equal(dec("1100.00")))
	suite.True(report.TotalLiabilitiesAndEquity.Equal(dec("1500.00")))
	// A fully posted book balances on its own, without forcing.
	suite.True(report.TotalLiabilitiesAndEquity.Equal(report.TotalAssets))
}

func (suite *ReportingServiceTestSuite) TestLedger_RunningBalance() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, Name: "Cash", AccountType: domain.Asset}
	lines := []domain.LedgerLine{
		{JournalID: "j1", JournalDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Description: "Opening", Debit: dec("1000.00")},
		{JournalID: "j2", JournalDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Description: "Rent", Credit: dec("300.00")},
		{JournalID: "j3", JournalDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), Description: "Sale", Debit: dec("500.00")},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockReportingRepo.On("GetLedgerLines", ctx, accountID, (*time.Time)(nil), (*time.Time)(nil)).Return(lines, nil).Once()

	report, err := suite.service.Ledger(ctx, accountID, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 3)
	suite.True(report.Rows[0].Balance.Equal(dec("1000.00")))
	suite.True(report.Rows[1].Balance.Equal(dec("700.00")))
	suite.True(report.Rows[2].Balance.Equal(dec("1200.00")))
	suite.True(report.ClosingBalance.Equal(dec("1200.00")))
}

func (suite *ReportingServiceTestSuite) TestLedger_CreditNormalAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, Name: "Sales", AccountType: domain.Revenue}
	lines := []domain.LedgerLine{
		{JournalID: "j1", JournalDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Credit: dec("500.00")},
		{JournalID: "j2", JournalDate: time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), Debit: dec("50.00")},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockReportingRepo.On("GetLedgerLines", ctx, accountID, (*time.Time)(nil), (*time.Time)(nil)).Return(lines, nil).Once()

	report, err := suite.service.Ledger(ctx, accountID, nil, nil)

	suite.Require().NoError(err)
	suite.True(report.ClosingBalance.Equal(dec("450.00")))
}

func (suite *ReportingServiceTestSuite) TestLedger_AccountNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.Ledger(ctx, accountID, nil, nil)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReportingServiceTestSuite) TestDashboard_ExpenseBreakdown() {
	ctx := context.Background()
	totals := []domain.AccountTotals{
		{AccountID: "cash", Name: "Cash", AccountType: domain.Asset, TotalDebit: dec("900.00"), TotalCredit: decimal.Zero},
		{AccountID: "sales", Name: "Sales", AccountType: domain.Revenue, TotalCredit: dec("900.00"), TotalDebit: decimal.Zero},
		{AccountID: "rent", Name: "Rent", AccountType: domain.Expense, TotalDebit: dec("300.00"), TotalCredit: decimal.Zero},
		// Fully refunded expense carries a zero balance and is excluded.
		{AccountID: "refunded", Name: "Refunded Fees", AccountType: domain.Expense, TotalDebit: dec("40.00"), TotalCredit: dec("40.00")},
	}
	suite.mockReportingRepo.On("GetAllAccountTotals", ctx, (*time.Time)(nil)).Return(totals, nil).Once()

	report, err := suite.service.Dashboard(ctx)

	suite.Require().NoError(err)
	suite.True(report.TotalAssets.Equal(dec("900.00")))
	suite.True(report.TotalRevenue.Equal(dec("900.00")))
	suite.True(report.TotalExpense.Equal(dec("300.00")))
	suite.True(report.NetProfit.Equal(dec("600.00")))
	suite.Require().Len(report.ExpenseBreakdown, 1)
	suite.Equal("Rent", report.ExpenseBreakdown[0].Name)
}

// --- Run Test Suite ---

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
