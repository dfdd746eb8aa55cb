package repositories

import (
	"context"

	"github.com/accuflow/accuflow/internal/core/domain"
)

// AccountRepository defines persistence operations for the chart of accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account. Returns apperrors.ErrDuplicateName
	// when the unique name constraint is violated.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByID returns apperrors.ErrNotFound when no account exists.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByName matches the name case-insensitively. Returns
	// apperrors.ErrNotFound when no account matches.
	FindAccountByName(ctx context.Context, name string) (*domain.Account, error)

	// FindAccountsByIDs returns the found accounts keyed by ID; missing IDs
	// are simply absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts returns accounts optionally filtered by a free-text match
	// against name or type. Ordered by (type, name), or by name alone when
	// orderByNameOnly is set (selection widgets).
	ListAccounts(ctx context.Context, query string, orderByNameOnly bool) ([]domain.Account, error)

	// DeleteAccount removes an account. Returns apperrors.ErrAccountInUse
	// when transaction lines still reference it and apperrors.ErrNotFound
	// when it does not exist.
	DeleteAccount(ctx context.Context, accountID string) error

	// CountTransactionLines reports how many journal lines reference the account.
	CountTransactionLines(ctx context.Context, accountID string) (int64, error)
}
