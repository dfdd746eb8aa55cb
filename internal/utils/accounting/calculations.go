package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/accuflow/accuflow/internal/apperrors"
	"github.com/accuflow/accuflow/internal/core/domain"
)

// BalanceTolerance is the maximum permitted difference between total debits
// and total credits of a posted journal, in currency units.
var BalanceTolerance = decimal.RequireFromString("0.01")

// BalanceFromTotals applies the sign convention for the account type to raw
// debit/credit sums.
// ASSET/EXPENSE carry a normal debit balance: debit - credit.
// LIABILITY/EQUITY/REVENUE/OTHER carry a normal credit balance: credit - debit.
func BalanceFromTotals(accountType domain.AccountType, totalDebit, totalCredit decimal.Decimal) decimal.Decimal {
	if accountType.IsDebitNormal() {
		return totalDebit.Sub(totalCredit)
	}
	return totalCredit.Sub(totalDebit)
}

// SignedLineAmount returns the balance effect of a single line on its account.
func SignedLineAmount(accountType domain.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	return BalanceFromTotals(accountType, debit, credit)
}

// CleanLines drops candidate rows with zero debit and zero credit, with or
// without an account selected. Such rows represent empty entry-form rows and
// are never an error, but they also never count toward the line minimum and
// are never persisted.
func CleanLines(lines []domain.LineCandidate) []domain.LineCandidate {
	cleaned := make([]domain.LineCandidate, 0, len(lines))
	for _, l := range lines {
		if l.IsEmpty() {
			continue
		}
		cleaned = append(cleaned, l)
	}
	return cleaned
}

// ValidateLine checks a single non-blank candidate line.
func ValidateLine(l domain.LineCandidate) error {
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return fmt.Errorf("%w: negative amounts are not allowed", apperrors.ErrInvalidLine)
	}
	if l.Debit.IsPositive() && l.Credit.IsPositive() {
		return fmt.Errorf("%w: enter either debit or credit, not both", apperrors.ErrInvalidLine)
	}
	if l.AccountID == "" {
		return fmt.Errorf("%w: an amount requires an account", apperrors.ErrInvalidLine)
	}
	return nil
}

// SumLines sums debit and credit independently over the given lines.
func SumLines(lines []domain.LineCandidate) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, l := range lines {
		totalDebit = totalDebit.Add(l.Debit)
		totalCredit = totalCredit.Add(l.Credit)
	}
	return totalDebit, totalCredit
}

// CheckBalanced verifies the posting invariant |debits - credits| <= tolerance.
func CheckBalanced(totalDebit, totalCredit decimal.Decimal) error {
	if totalDebit.Sub(totalCredit).Abs().GreaterThan(BalanceTolerance) {
		return fmt.Errorf("%w: total debit is %s, total credit is %s",
			apperrors.ErrUnbalanced, totalDebit.String(), totalCredit.String())
	}
	return nil
}
