package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
	Other     AccountType = "OTHER"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense, Other:
		return true
	}
	return false
}

// IsDebitNormal reports whether the account type carries a normal debit
// balance, i.e. its balance increases with debits.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// Account represents a single entry in the chart of accounts.
// Names are globally unique; the registry rejects duplicates
// case-insensitively before creation.
type Account struct {
	AccountID   string      `json:"accountID"`   // Primary Key (UUID)
	Name        string      `json:"name"`        // User-defined name, unique
	AccountType AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	AuditFields
}
