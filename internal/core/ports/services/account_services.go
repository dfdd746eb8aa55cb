package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/accuflow/accuflow/internal/core/domain"
	"github.com/accuflow/accuflow/internal/dto"
)

// AccountService is the account registry plus the balance calculator.
type AccountService interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)

	// ListAccountsWithBalances returns accounts together with their current
	// balances keyed by account ID (the account listing view).
	ListAccountsWithBalances(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, map[string]decimal.Decimal, error)

	// DeleteAccount fails with apperrors.ErrAccountInUse while any
	// transaction line references the account.
	DeleteAccount(ctx context.Context, accountID string) error

	// GetAccountBalance computes the account balance from posted lines only,
	// as of the given cutoff date when provided. Pure read, never cached.
	GetAccountBalance(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, error)
}
