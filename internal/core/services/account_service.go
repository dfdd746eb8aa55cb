package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/accuflow/accuflow/internal/apperrors"
	"github.com/accuflow/accuflow/internal/core/domain"
	portsrepo "github.com/accuflow/accuflow/internal/core/ports/repositories"
	portssvc "github.com/accuflow/accuflow/internal/core/ports/services"
	"github.com/accuflow/accuflow/internal/dto"
	"github.com/accuflow/accuflow/internal/utils/accounting"
)

// accountServiceImpl implements the AccountService interface
type accountServiceImpl struct {
	BaseService
	accountRepo   portsrepo.AccountRepository
	reportingRepo portsrepo.ReportingRepository
}

// NewAccountServiceImpl creates a new account service
func NewAccountServiceImpl(accountRepo portsrepo.AccountRepository, reportingRepo portsrepo.ReportingRepository) portssvc.AccountService {
	return &accountServiceImpl{
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
	}
}

// Ensure accountServiceImpl implements the AccountService interface
var _ portssvc.AccountService = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	accountType := domain.AccountType(req.AccountType)
	if !accountType.IsValid() {
		err := fmt.Errorf("unknown account type %q: %w", req.AccountType, apperrors.ErrValidation)
		s.LogError(ctx, err, "Invalid account type", slog.String("account_type", req.AccountType))
		return nil, err
	}

	// Names are unique case-insensitively, checked before insert so the caller
	// gets a clean duplicate error rather than a constraint violation.
	existing, err := s.accountRepo.FindAccountByName(ctx, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check account name uniqueness", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to check account name: %w", err)
	}
	if existing != nil {
		err := fmt.Errorf("account named %q already exists: %w", existing.Name, apperrors.ErrDuplicateName)
		s.LogError(ctx, err, "Duplicate account name", slog.String("name", req.Name))
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		AccountType: accountType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	orderByNameOnly := params.OrderBy == "name"
	accounts, err := s.accountRepo.ListAccounts(ctx, params.Query, orderByNameOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// ListAccountsWithBalances returns the filtered accounts along with their
// current balances keyed by account ID. Accounts with no posted activity get
// a zero balance.
func (s *accountServiceImpl) ListAccountsWithBalances(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, map[string]decimal.Decimal, error) {
	accounts, err := s.ListAccounts(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	totals, err := s.reportingRepo.GetAllAccountTotals(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account totals")
		return nil, nil, fmt.Errorf("failed to load account totals: %w", err)
	}

	balances := make(map[string]decimal.Decimal, len(accounts))
	for i := range accounts {
		balances[accounts[i].AccountID] = decimal.Zero
	}
	for _, t := range totals {
		if _, ok := balances[t.AccountID]; !ok {
			continue
		}
		balances[t.AccountID] = accounting.BalanceFromTotals(t.AccountType, t.TotalDebit, t.TotalCredit)
	}

	return accounts, balances, nil
}

func (s *accountServiceImpl) DeleteAccount(ctx context.Context, accountID string) error {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to find account for deletion", slog.String("account_id", accountID))
		return fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	// Pre-check for referencing lines so the common case reports cleanly; the
	// FK RESTRICT constraint still backs this up against races.
	count, err := s.accountRepo.CountTransactionLines(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count transaction lines", slog.String("account_id", accountID))
		return fmt.Errorf("failed to count transaction lines for %s: %w", accountID, err)
	}
	if count > 0 {
		err := fmt.Errorf("account is referenced by %d transaction line(s): %w", count, apperrors.ErrAccountInUse)
		s.LogError(ctx, err, "Account deletion blocked", slog.String("account_id", accountID))
		return err
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

// GetAccountBalance computes the balance from posted lines only, restricted
// to journals dated on or before asOf when given.
func (s *accountServiceImpl) GetAccountBalance(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, err
		}
		s.LogError(ctx, err, "Failed to find account for balance", slog.String("account_id", accountID))
		return decimal.Zero, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	totalDebit, totalCredit, err := s.reportingRepo.GetAccountTotals(ctx, accountID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum account totals", slog.String("account_id", accountID))
		return decimal.Zero, fmt.Errorf("failed to sum totals for %s: %w", accountID, err)
	}

	return accounting.BalanceFromTotals(account.AccountType, totalDebit, totalCredit), nil
}
