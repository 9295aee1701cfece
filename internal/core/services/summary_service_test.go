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

	"github.com/collectly/backoffice_backend/internal/core/domain"
	portssvc "github.com/collectly/backoffice_backend/internal/core/ports/services"
	"github.com/collectly/backoffice_backend/internal/core/services"
	"github.com/collectly/backoffice_backend/internal/dto"
)

// --- Mock CollectionService ---
type MockCollectionService struct {
	mock.Mock
}

func (m *MockCollectionService) FetchMonth(ctx context.Context, year, month int) ([]domain.DailyCollection, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyCollection), args.Error(1)
}

func (m *MockCollectionService) SaveMonth(ctx context.Context, year, month int, entries []dto.CollectionEntry) ([]domain.DailyCollection, error) {
	args := m.Called(ctx, year, month, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyCollection), args.Error(1)
}

var _ portssvc.CollectionSvcFacade = (*MockCollectionService)(nil)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) FetchMonth(ctx context.Context, year, month int) ([]domain.Expense, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseService) ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorStaffID string) (*domain.Expense, error) {
	args := m.Called(ctx, req, creatorStaffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock ProductSaleService ---
type MockProductSaleService struct {
	mock.Mock
}

func (m *MockProductSaleService) FetchMonth(ctx context.Context, year, month int) ([]domain.ProductSale, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductSale), args.Error(1)
}

func (m *MockProductSaleService) AddSale(ctx context.Context, req dto.CreateProductSaleRequest) (*domain.ProductSale, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductSale), args.Error(1)
}

func (m *MockProductSaleService) UpdateSale(ctx context.Context, saleID string, req dto.UpdateProductSaleRequest) (*domain.ProductSale, error) {
	args := m.Called(ctx, saleID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductSale), args.Error(1)
}

func (m *MockProductSaleService) DeleteSale(ctx context.Context, saleID string) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

var _ portssvc.ProductSaleSvcFacade = (*MockProductSaleService)(nil)

// --- Test Suite ---
type SummaryServiceTestSuite struct {
	suite.Suite
	mockCollectionSvc *MockCollectionService
	mockExpenseSvc    *MockExpenseService
	mockSaleSvc       *MockProductSaleService
	mockSalarySvc     *MockSalaryService
	service           portssvc.SummarySvcFacade
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockCollectionSvc = new(MockCollectionService)
	suite.mockExpenseSvc = new(MockExpenseService)
	suite.mockSaleSvc = new(MockProductSaleService)
	suite.mockSalarySvc = new(MockSalaryService)
	suite.service = services.NewSummaryService(suite.mockCollectionSvc, suite.mockExpenseSvc, suite.mockSaleSvc, suite.mockSalarySvc)
}

func (suite *SummaryServiceTestSuite) expectFetches(collections []domain.DailyCollection, expenses []domain.Expense, categories []domain.ExpenseCategory, sales []domain.ProductSale) {
	suite.mockCollectionSvc.On("FetchMonth", mock.Anything, 2025, 3).Return(collections, nil).Once()
	suite.mockExpenseSvc.On("FetchMonth", mock.Anything, 2025, 3).Return(expenses, nil).Once()
	suite.mockExpenseSvc.On("ListCategories", mock.Anything).Return(categories, nil).Once()
	suite.mockSaleSvc.On("FetchMonth", mock.Anything, 2025, 3).Return(sales, nil).Once()
	suite.mockSalarySvc.On("FetchMonth", mock.Anything, 2025, 3).Return([]domain.Salary{}, nil).Once()
}

// Totals derive from the fetched sets: salary is half the collection total
// and the final balance is (collections + sales) - (expenses + salary).
func (suite *SummaryServiceTestSuite) TestCompose_DerivesTotals() {
	ctx := context.Background()
	staffID := uuid.NewString()
	catID := uuid.NewString()

	collections := []domain.DailyCollection{
		{StaffID: staffID, Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(600)},
		{StaffID: staffID, Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(400)},
	}
	expenses := []domain.Expense{
		{ExpenseID: uuid.NewString(), CategoryID: catID, Amount: decimal.NewFromInt(200)},
	}
	categories := []domain.ExpenseCategory{{CategoryID: catID, Name: "Rent", IsActive: true}}
	sales := []domain.ProductSale{{SaleID: uuid.NewString(), Amount: decimal.NewFromInt(300)}}

	suite.expectFetches(collections, expenses, categories, sales)

	summary, err := suite.service.Compose(ctx, 2025, 3)

	suite.Require().NoError(err)
	suite.Equal(string(domain.ViewReady), summary.State)
	suite.True(summary.TotalCollection.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.TotalSalary.Equal(decimal.NewFromInt(500)))
	suite.True(summary.TotalExpenses.Equal(decimal.NewFromInt(200)))
	suite.True(summary.ProductSalesTotal.Equal(decimal.NewFromInt(300)))
	// (1000 + 300) - (200 + 500)
	suite.True(summary.FinalBalance.Equal(decimal.NewFromInt(600)))
}

func (suite *SummaryServiceTestSuite) TestCompose_GroupsExpensesWithFallbackLabel() {
	ctx := context.Background()
	rentID := uuid.NewString()
	goneID := uuid.NewString()

	expenses := []domain.Expense{
		{ExpenseID: uuid.NewString(), CategoryID: rentID, Amount: decimal.NewFromInt(100)},
		{ExpenseID: uuid.NewString(), CategoryID: goneID, Amount: decimal.NewFromInt(250)},
		{ExpenseID: uuid.NewString(), CategoryID: rentID, Amount: decimal.NewFromInt(50)},
	}
	categories := []domain.ExpenseCategory{{CategoryID: rentID, Name: "Rent", IsActive: true}}

	suite.expectFetches([]domain.DailyCollection{}, expenses, categories, []domain.ProductSale{})

	summary, err := suite.service.Compose(ctx, 2025, 3)

	suite.Require().NoError(err)
	suite.Require().Len(summary.ExpensesByCategory, 2)
	// Sorted by descending total; the retired category falls back to the
	// Uncategorized label but keeps its own group.
	suite.Equal("Uncategorized", summary.ExpensesByCategory[0].Name)
	suite.True(summary.ExpensesByCategory[0].Total.Equal(decimal.NewFromInt(250)))
	suite.Equal("Rent", summary.ExpensesByCategory[1].Name)
	suite.True(summary.ExpensesByCategory[1].Total.Equal(decimal.NewFromInt(150)))
}

// A category listing failure must not fail the refresh; grouping proceeds
// with the fallback label for every group.
func (suite *SummaryServiceTestSuite) TestRefresh_CategoryFailureIsNonFatal() {
	ctx := context.Background()
	catID := uuid.NewString()
	expenses := []domain.Expense{{ExpenseID: uuid.NewString(), CategoryID: catID, Amount: decimal.NewFromInt(75)}}

	suite.mockCollectionSvc.On("FetchMonth", mock.Anything, 2025, 3).Return([]domain.DailyCollection{}, nil).Once()
	suite.mockExpenseSvc.On("FetchMonth", mock.Anything, 2025, 3).Return(expenses, nil).Once()
	suite.mockExpenseSvc.On("ListCategories", mock.Anything).Return(nil, assert.AnError).Once()
	suite.mockSaleSvc.On("FetchMonth", mock.Anything, 2025, 3).Return([]domain.ProductSale{}, nil).Once()
	suite.mockSalarySvc.On("FetchMonth", mock.Anything, 2025, 3).Return([]domain.Salary{}, nil).Once()

	err := suite.service.Refresh(ctx, 2025, 3)
	suite.Require().NoError(err)

	summary, err := suite.service.Compose(ctx, 2025, 3)
	suite.Require().NoError(err)
	suite.Equal(string(domain.ViewReady), summary.State)
	suite.Require().Len(summary.ExpensesByCategory, 1)
	suite.Equal("Uncategorized", summary.ExpensesByCategory[0].Name)
}

// A failed refresh keeps the previous snapshot's data and surfaces the
// error through the view state.
func (suite *SummaryServiceTestSuite) TestRefresh_FailureKeepsStaleData() {
	ctx := context.Background()
	staffID := uuid.NewString()
	collections := []domain.DailyCollection{
		{StaffID: staffID, Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(80)},
	}

	suite.expectFetches(collections, []domain.Expense{}, []domain.ExpenseCategory{}, []domain.ProductSale{})
	suite.Require().NoError(suite.service.Refresh(ctx, 2025, 3))

	// Second refresh fails on the collection fetch.
	suite.mockCollectionSvc.On("FetchMonth", mock.Anything, 2025, 3).Return(nil, assert.AnError).Once()
	suite.mockExpenseSvc.On("FetchMonth", mock.Anything, 2025, 3).Return([]domain.Expense{}, nil).Maybe()
	suite.mockExpenseSvc.On("ListCategories", mock.Anything).Return([]domain.ExpenseCategory{}, nil).Maybe()
	suite.mockSaleSvc.On("FetchMonth", mock.Anything, 2025, 3).Return([]domain.ProductSale{}, nil).Maybe()
	suite.mockSalarySvc.On("FetchMonth", mock.Anything, 2025, 3).Return([]domain.Salary{}, nil).Maybe()

	err := suite.service.Refresh(ctx, 2025, 3)
	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)

	summary, err := suite.service.Compose(ctx, 2025, 3)
	suite.Require().NoError(err)
	suite.Equal(string(domain.ViewErrored), summary.State)
	suite.NotEmpty(summary.Error)
	// Stale data from the successful refresh is still served.
	suite.True(summary.TotalCollection.Equal(decimal.NewFromInt(80)))
}

func (suite *SummaryServiceTestSuite) TestRefresh_InvalidMonth() {
	err := suite.service.Refresh(context.Background(), 2025, 13)
	suite.Require().Error(err)
	suite.mockCollectionSvc.AssertNotCalled(suite.T(), "FetchMonth", mock.Anything, mock.Anything, mock.Anything)
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
