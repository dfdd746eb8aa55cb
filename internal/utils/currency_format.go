package utils

import "github.com/shopspring/decimal"

// FormatAmount renders an amount with the configured currency symbol and two
// fractional digits, e.g. symbol "$" and 1234.5 -> "$1234.50".
func FormatAmount(amount decimal.Decimal, symbol string) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Neg().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}
