package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountTotals holds the raw posted debit/credit sums for one account,
// before the type-specific sign convention is applied.
type AccountTotals struct {
	AccountID   string
	Name        string
	AccountType AccountType
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// LedgerLine is one posted transaction line joined with its journal header,
// as replayed by the ledger report.
type LedgerLine struct {
	JournalID   string          `json:"journalID"`
	JournalDate time.Time       `json:"journalDate"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// LedgerRow is a ledger line with the running balance after applying it.
type LedgerRow struct {
	LedgerLine
	Balance decimal.Decimal `json:"balance"`
}

// LedgerReport replays an account's posted lines with a running balance
// seeded at zero.
type LedgerReport struct {
	Account        Account         `json:"account"`
	Rows           []LedgerRow     `json:"rows"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// TrialBalanceRow places one account's balance under its debit or credit
// column per the natural-side convention. Zero-balance accounts are omitted
// from the report.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every nonzero account balance split into
// debit/credit columns. Column totals equal the sum of the emitted rows.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// AccountAmount pairs an account with its computed balance for a report.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomeStatementReport lists revenue and expense balances and their net.
type IncomeStatementReport struct {
	Revenue      []AccountAmount `json:"revenue"`
	Expenses     []AccountAmount `json:"expenses"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetProfit    decimal.Decimal `json:"netProfit"`
}

// BalanceSheetReport lists asset, liability and equity balances. Total equity
// folds in the net profit computed for the same cutoff date; total
// liabilities + equity is reported but not mechanically forced to equal
// total assets.
type BalanceSheetReport struct {
	Assets                    []AccountAmount `json:"assets"`
	Liabilities               []AccountAmount `json:"liabilities"`
	Equity                    []AccountAmount `json:"equity"`
	TotalAssets               decimal.Decimal `json:"totalAssets"`
	TotalLiabilities          decimal.Decimal `json:"totalLiabilities"`
	EquityBase                decimal.Decimal `json:"equityBase"`
	NetProfit                 decimal.Decimal `json:"netProfit"`
	TotalEquity               decimal.Decimal `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
}

// DashboardReport summarises current totals for the landing view.
type DashboardReport struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	ExpenseBreakdown []AccountAmount `json:"expenseBreakdown"`
}
