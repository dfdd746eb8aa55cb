package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/accuflow/accuflow/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating an account.
// The accounttype binding rule is registered at startup.
type CreateAccountRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	AccountType string `json:"accountType" binding:"required,accounttype"`
}

// ListAccountsParams holds query parameters for account listings.
type ListAccountsParams struct {
	// Query free-text matches name or account type.
	Query string
	// OrderBy "name" orders by name alone (selection widgets); the default
	// listing order is (type, name).
	OrderBy string
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string    `json:"accountID"`
	Name        string    `json:"name"`
	AccountType string    `json:"accountType"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AccountWithBalanceResponse is an account row in the listing view, carrying
// its current balance.
type AccountWithBalanceResponse struct {
	AccountResponse
	Balance decimal.Decimal `json:"balance"`
}

// BalanceResponse is the result of a point-in-time balance query.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
	AsOf      *string         `json:"asOf,omitempty"`
}

// ToAccountResponse converts a domain account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		Name:        a.Name,
		AccountType: string(a.AccountType),
		CreatedAt:   a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
