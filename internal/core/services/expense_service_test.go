package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/collectly/backoffice_backend/internal/apperrors"
	"github.com/collectly/backoffice_backend/internal/core/domain"
	portssvc "github.com/collectly/backoffice_backend/internal/core/ports/services"
	"github.com/collectly/backoffice_backend/internal/core/services"
	"github.com/collectly/backoffice_backend/internal/dto"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpensesInRange(ctx context.Context, from, to time.Time) ([]domain.Expense, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expenseID string, updates dto.UpdateExpenseRequest, updatedAt time.Time) error {
	args := m.Called(ctx, expenseID, updates, updatedAt)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindActiveCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockExpenseRepository
	mockRecordSvc *MockMonthlyRecordService
	service       portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.mockRecordSvc = new(MockMonthlyRecordService)
	suite.service = services.NewExpenseService(suite.mockRepo, suite.mockRecordSvc)
}

// The owning monthly record is resolved from the expense date, not from
// any separately supplied month.
func (suite *ExpenseServiceTestSuite) TestCreateExpense_ResolvesRecordFromDate() {
	ctx := context.Background()
	record := &domain.MonthlyRecord{RecordID: uuid.NewString(), Year: 2025, Month: 6, Status: domain.RecordDraft}
	req := dto.CreateExpenseRequest{
		CategoryID: uuid.NewString(),
		Date:       "2025-06-15",
		Amount:     decimal.NewFromInt(120),
	}
	creator := uuid.NewString()

	suite.mockRecordSvc.On("GetOrCreate", ctx, 2025, 6).Return(record, nil).Once()

	var savedID string
	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		savedID = e.ExpenseID
		return e.MonthlyRecordID == record.RecordID &&
			e.CategoryID == req.CategoryID &&
			e.CreatedBy == creator &&
			e.Amount.Equal(req.Amount) &&
			e.Date.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()

	readBack := &domain.Expense{CategoryName: "Rent"}
	suite.mockRepo.On("FindExpenseByID", ctx, mock.AnythingOfType("string")).Return(readBack, nil).Once()

	created, err := suite.service.CreateExpense(ctx, req, creator)

	suite.Require().NoError(err)
	suite.Equal(readBack, created)
	suite.NotEmpty(savedID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRecordSvc.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RejectsBadDate() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{CategoryID: uuid.NewString(), Date: "15/06/2025", Amount: decimal.NewFromInt(10)}

	created, err := suite.service.CreateExpense(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRecordSvc.AssertNotCalled(suite.T(), "GetOrCreate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{CategoryID: uuid.NewString(), Date: "2025-06-15", Amount: decimal.Zero}

	created, err := suite.service.CreateExpense(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_ReadsBackMergedRow() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	newAmount := decimal.NewFromInt(80)
	req := dto.UpdateExpenseRequest{Amount: &newAmount}

	merged := &domain.Expense{ExpenseID: expenseID, Amount: newAmount, CategoryName: "Supplies"}
	suite.mockRepo.On("UpdateExpense", ctx, expenseID, req, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindExpenseByID", ctx, expenseID).Return(merged, nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, expenseID, req)

	suite.Require().NoError(err)
	suite.Equal(merged, updated)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_UnknownIDPropagatesNotFound() {
	ctx := context.Background()
	expenseID := uuid.NewString()

	suite.mockRepo.On("UpdateExpense", ctx, expenseID, mock.Anything, mock.Anything).Return(apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateExpense(ctx, expenseID, dto.UpdateExpenseRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense() {
	ctx := context.Background()
	expenseID := uuid.NewString()

	suite.mockRepo.On("DeleteExpense", ctx, expenseID).Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteExpense(ctx, expenseID))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListCategories_EmptyIsEmptySlice() {
	ctx := context.Background()

	suite.mockRepo.On("FindActiveCategories", ctx).Return(nil, nil).Once()

	categories, err := suite.service.ListCategories(ctx)

	suite.Require().NoError(err)
	suite.NotNil(categories)
	suite.Empty(categories)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
