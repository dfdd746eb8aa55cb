package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/accuflow/accuflow/internal/apperrors"
	"github.com/accuflow/accuflow/internal/core/domain"
	portssvc "github.com/accuflow/accuflow/internal/core/ports/services"
	"github.com/accuflow/accuflow/internal/core/services"
	"github.com/accuflow/accuflow/internal/dto"
)

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo   *MockAccountRepository
	mockReportingRepo *MockReportingRepository
	service           portssvc.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewAccountServiceImpl(suite.mockAccountRepo, suite.mockReportingRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Cash",
		AccountType: "ASSET",
	}

	suite.mockAccountRepo.On("FindAccountByName", ctx, "Cash").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdAccount)
	suite.NotEmpty(createdAccount.AccountID)
	suite.Equal("Cash", createdAccount.Name)
	suite.Equal(domain.Asset, createdAccount.AccountType)
	suite.WithinDuration(time.Now(), createdAccount.CreatedAt, time.Second)

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "cash",
		AccountType: "ASSET",
	}
	existing := &domain.Account{
		AccountID:   uuid.NewString(),
		Name:        "Cash",
		AccountType: domain.Asset,
	}

	// The name lookup is case-insensitive, so "cash" finds "Cash".
	suite.mockAccountRepo.On("FindAccountByName", ctx, "cash").Return(existing, nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrDuplicateName)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Weird",
		AccountType: "SOMETHING",
	}

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_InUse() {
	ctx := context.Background()
	testID := uuid.NewString()
	account := &domain.Account{AccountID: testID, Name: "Cash", AccountType: domain.Asset}

	suite.mockAccountRepo.On("FindAccountByID", ctx, testID).Return(account, nil).Once()
	suite.mockAccountRepo.On("CountTransactionLines", ctx, testID).Return(int64(3), nil).Once()

	err := suite.service.DeleteAccount(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountInUse)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	testID := uuid.NewString()
	account := &domain.Account{AccountID: testID, Name: "Unused", AccountType: domain.Expense}

	suite.mockAccountRepo.On("FindAccountByID", ctx, testID).Return(account, nil).Once()
	suite.mockAccountRepo.On("CountTransactionLines", ctx, testID).Return(int64(0), nil).Once()
	suite.mockAccountRepo.On("DeleteAccount", ctx, testID).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, testID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAccount(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestGetAccountBalance_DebitNormal() {
	ctx := context.Background()
	testID := uuid.NewString()
	account := &domain.Account{AccountID: testID, Name: "Cash", AccountType: domain.Asset}

	suite.mockAccountRepo.On("FindAccountByID", ctx, testID).Return(account, nil).Once()
	suite.mockReportingRepo.On("GetAccountTotals", ctx, testID, (*time.Time)(nil)).
		Return(decimal.RequireFromString("500.00"), decimal.RequireFromString("120.00"), nil).Once()

	balance, err := suite.service.GetAccountBalance(ctx, testID, nil)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.RequireFromString("380.00")), "got %s", balance)
}

func (suite *AccountServiceTestSuite) TestGetAccountBalance_CreditNormal() {
	ctx := context.Background()
	testID := uuid.NewString()
	account := &domain.Account{AccountID: testID, Name: "Sales", AccountType: domain.Revenue}

	suite.mockAccountRepo.On("FindAccountByID", ctx, testID).Return(account, nil).Once()
	suite.mockReportingRepo.On("GetAccountTotals", ctx, testID, (*time.Time)(nil)).
		Return(decimal.Zero, decimal.RequireFromString("500.00"), nil).Once()

	balance, err := suite.service.GetAccountBalance(ctx, testID, nil)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.RequireFromString("500.00")), "got %s", balance)
}

func (suite *AccountServiceTestSuite) TestGetAccountBalance_AsOfForwarded() {
	ctx := context.Background()
	testID := uuid.NewString()
	account := &domain.Account{AccountID: testID, Name: "Cash", AccountType: domain.Asset}
	asOf := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, testID).Return(account, nil).Once()
	suite.mockReportingRepo.On("GetAccountTotals", ctx, testID, &asOf).
		Return(decimal.RequireFromString("200.00"), decimal.Zero, nil).Once()

	balance, err := suite.service.GetAccountBalance(ctx, testID, &asOf)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.RequireFromString("200.00")), "got %s", balance)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccountsWithBalances() {
	ctx := context.Background()
	cashID := uuid.NewString()
	salesID := uuid.NewString()
	idleID := uuid.NewString()
	accounts := []domain.Account{
		{AccountID: cashID, Name: "Cash", AccountType: domain.Asset},
		{AccountID: salesID, Name: "Sales", AccountType: domain.Revenue},
		{AccountID: idleID, Name: "Idle", AccountType: domain.Expense},
	}
	totals := []domain.AccountTotals{
		{AccountID: cashID, Name: "Cash", AccountType: domain.Asset, TotalDebit: decimal.RequireFromString("500.00"), TotalCredit: decimal.Zero},
		{AccountID: salesID, Name: "Sales", AccountType: domain.Revenue, TotalDebit: decimal.Zero, TotalCredit: decimal.RequireFromString("500.00")},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, "", false).Return(accounts, nil).Once()
	suite.mockReportingRepo.On("GetAllAccountTotals", ctx, (*time.Time)(nil)).Return(totals, nil).Once()

	got, balances, err := suite.service.ListAccountsWithBalances(ctx, dto.ListAccountsParams{})

	suite.Require().NoError(err)
	suite.Len(got, 3)
	suite.True(balances[cashID].Equal(decimal.RequireFromString("500.00")))
	suite.True(balances[salesID].Equal(decimal.RequireFromString("500.00")))
	// No posted activity means a zero balance, not a missing entry.
	suite.True(balances[idleID].IsZero())
}

func (suite *AccountServiceTestSuite) TestListAccounts_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockAccountRepo.On("ListAccounts", ctx, "", false).Return(nil, expectedErr).Once()

	accounts, err := suite.service.ListAccounts(ctx, dto.ListAccountsParams{})

	suite.Require().Error(err)
	suite.Nil(accounts)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Test Suite ---

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
