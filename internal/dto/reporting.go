package dto

import (
	"time"

	"github.com/accuflow/accuflow/internal/core/domain"
	"github.com/accuflow/accuflow/internal/utils"
)

// TrialBalanceResponse wraps the trial balance report with its cutoff date.
type TrialBalanceResponse struct {
	AsOf *string `json:"asOf,omitempty"`
	domain.TrialBalanceReport
}

// IncomeStatementResponse wraps the income statement with its cutoff date.
type IncomeStatementResponse struct {
	AsOf *string `json:"asOf,omitempty"`
	domain.IncomeStatementReport
}

// BalanceSheetResponse wraps the balance sheet with its cutoff date.
type BalanceSheetResponse struct {
	AsOf *string `json:"asOf,omitempty"`
	domain.BalanceSheetReport
}

// DashboardResponse carries the dashboard totals plus display-formatted
// amounts using the configured currency symbol.
type DashboardResponse struct {
	domain.DashboardReport
	FormattedNetProfit   string `json:"formattedNetProfit"`
	FormattedTotalAssets string `json:"formattedTotalAssets"`
}

// FormatDate renders a cutoff date for report responses, nil when absent.
func FormatDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(dateLayout)
	return &s
}

// ToDashboardResponse builds the dashboard DTO, formatting headline figures
// with the configured currency symbol.
func ToDashboardResponse(report *domain.DashboardReport, currencySymbol string) DashboardResponse {
	return DashboardResponse{
		DashboardReport:      *report,
		FormattedNetProfit:   utils.FormatAmount(report.NetProfit, currencySymbol),
		FormattedTotalAssets: utils.FormatAmount(report.TotalAssets, currencySymbol),
	}
}

// CompanySettingsResponse is the read-only branding singleton exposed to the UI.
type CompanySettingsResponse struct {
	CompanyName    string `json:"companyName"`
	Tagline        string `json:"tagline"`
	CurrencySymbol string `json:"currencySymbol"`
}
