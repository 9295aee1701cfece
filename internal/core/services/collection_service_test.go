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

	"github.com/collectly/backoffice_backend/internal/apperrors"
	"github.com/collectly/backoffice_backend/internal/core/domain"
	portssvc "github.com/collectly/backoffice_backend/internal/core/ports/services"
	"github.com/collectly/backoffice_backend/internal/core/services"
	"github.com/collectly/backoffice_backend/internal/dto"
)

// --- Mock CollectionRepository ---
type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) FindCollectionsInRange(ctx context.Context, from, to time.Time) ([]domain.DailyCollection, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyCollection), args.Error(1)
}

func (m *MockCollectionRepository) UpsertCollections(ctx context.Context, collections []domain.DailyCollection) error {
	args := m.Called(ctx, collections)
	return args.Error(0)
}

// --- Mock StaffRepository ---
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindAllStaff(ctx context.Context) ([]domain.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindTrackableStaff(ctx context.Context) ([]domain.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

// --- Mock MonthlyRecordService ---
type MockMonthlyRecordService struct {
	mock.Mock
}

func (m *MockMonthlyRecordService) GetOrCreate(ctx context.Context, year, month int) (*domain.MonthlyRecord, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyRecord), args.Error(1)
}

var _ portssvc.MonthlyRecordSvcFacade = (*MockMonthlyRecordService)(nil)

// --- Mock SalaryService ---
type MockSalaryService struct {
	mock.Mock
}

func (m *MockSalaryService) Recompute(ctx context.Context, record *domain.MonthlyRecord, staff []domain.Staff, collections []domain.DailyCollection) ([]domain.Salary, error) {
	args := m.Called(ctx, record, staff, collections)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Salary), args.Error(1)
}

func (m *MockSalaryService) FetchMonth(ctx context.Context, year, month int) ([]domain.Salary, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Salary), args.Error(1)
}

var _ portssvc.SalarySvcFacade = (*MockSalaryService)(nil)

// --- Test Suite ---
type CollectionServiceTestSuite struct {
	suite.Suite
	mockCollectionRepo *MockCollectionRepository
	mockStaffRepo      *MockStaffRepository
	mockRecordSvc      *MockMonthlyRecordService
	mockSalarySvc      *MockSalaryService
	service            portssvc.CollectionSvcFacade
	record             *domain.MonthlyRecord
}

func (suite *CollectionServiceTestSuite) SetupTest() {
	suite.mockCollectionRepo = new(MockCollectionRepository)
	suite.mockStaffRepo = new(MockStaffRepository)
	suite.mockRecordSvc = new(MockMonthlyRecordService)
	suite.mockSalarySvc = new(MockSalaryService)
	suite.service = services.NewCollectionService(suite.mockCollectionRepo, suite.mockStaffRepo, suite.mockRecordSvc, suite.mockSalarySvc)
	suite.record = &domain.MonthlyRecord{RecordID: uuid.NewString(), Year: 2025, Month: 3, Status: domain.RecordDraft}
}

func (suite *CollectionServiceTestSuite) TestFetchMonth_EmptyMonthIsEmptySlice() {
	ctx := context.Background()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.mockCollectionRepo.On("FindCollectionsInRange", ctx, from, to).Return([]domain.DailyCollection{}, nil).Once()

	collections, err := suite.service.FetchMonth(ctx, 2025, 3)

	suite.Require().NoError(err)
	suite.NotNil(collections)
	suite.Empty(collections)
	suite.mockCollectionRepo.AssertExpectations(suite.T())
}

func (suite *CollectionServiceTestSuite) TestFetchMonth_InvalidMonth() {
	ctx := context.Background()

	collections, err := suite.service.FetchMonth(ctx, 2025, 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(collections)
	suite.mockCollectionRepo.AssertNotCalled(suite.T(), "FindCollectionsInRange", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CollectionServiceTestSuite) TestSaveMonth_FiltersNonPositiveAmounts() {
	ctx := context.Background()
	staffID := uuid.NewString()
	entries := []dto.CollectionEntry{
		{StaffID: staffID, Day: 1, Amount: decimal.NewFromInt(100)},
		{StaffID: staffID, Day: 2, Amount: decimal.Zero},
		{StaffID: staffID, Day: 3, Amount: decimal.NewFromInt(-5)},
	}

	suite.mockRecordSvc.On("GetOrCreate", ctx, 2025, 3).Return(suite.record, nil).Once()
	suite.mockCollectionRepo.On("UpsertCollections", ctx, mock.MatchedBy(func(rows []domain.DailyCollection) bool {
		if len(rows) != 1 {
			return false
		}
		row := rows[0]
		return row.StaffID == staffID &&
			row.MonthlyRecordID == suite.record.RecordID &&
			row.Date.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) &&
			row.Amount.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	persisted := []domain.DailyCollection{{
		CollectionID:    uuid.NewString(),
		MonthlyRecordID: suite.record.RecordID,
		StaffID:         staffID,
		Date:            time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(100),
	}}
	suite.mockCollectionRepo.On("FindCollectionsInRange", ctx, mock.Anything, mock.Anything).Return(persisted, nil).Once()

	staff := []domain.Staff{{StaffID: staffID, Name: "Alice", IsActive: true, IsTrackable: true}}
	suite.mockStaffRepo.On("FindTrackableStaff", ctx).Return(staff, nil).Once()
	suite.mockSalarySvc.On("Recompute", ctx, suite.record, staff, persisted).Return([]domain.Salary{}, nil).Once()

	collections, err := suite.service.SaveMonth(ctx, 2025, 3, entries)

	suite.Require().NoError(err)
	suite.Equal(persisted, collections)
	suite.mockCollectionRepo.AssertExpectations(suite.T())
	suite.mockSalarySvc.AssertExpectations(suite.T())
}

// Saving only non-positive entries skips the upsert but still re-fetches
// and recomputes, so an emptied grid converges.
func (suite *CollectionServiceTestSuite) TestSaveMonth_AllNonPositiveSkipsUpsert() {
	ctx := context.Background()
	entries := []dto.CollectionEntry{
		{StaffID: uuid.NewString(), Day: 1, Amount: decimal.Zero},
	}

	suite.mockRecordSvc.On("GetOrCreate", ctx, 2025, 3).Return(suite.record, nil).Once()
	suite.mockCollectionRepo.On("FindCollectionsInRange", ctx, mock.Anything, mock.Anything).Return([]domain.DailyCollection{}, nil).Once()
	suite.mockStaffRepo.On("FindTrackableStaff", ctx).Return([]domain.Staff{}, nil).Once()
	suite.mockSalarySvc.On("Recompute", ctx, suite.record, []domain.Staff{}, []domain.DailyCollection{}).Return([]domain.Salary{}, nil).Once()

	collections, err := suite.service.SaveMonth(ctx, 2025, 3, entries)

	suite.Require().NoError(err)
	suite.Empty(collections)
	suite.mockCollectionRepo.AssertNotCalled(suite.T(), "UpsertCollections", mock.Anything, mock.Anything)
	suite.mockSalarySvc.AssertExpectations(suite.T())
}

func (suite *CollectionServiceTestSuite) TestSaveMonth_RejectsDayPastEndOfMonth() {
	ctx := context.Background()
	entries := []dto.CollectionEntry{
		{StaffID: uuid.NewString(), Day: 31, Amount: decimal.NewFromInt(50)},
	}

	// April has 30 days.
	record := &domain.MonthlyRecord{RecordID: uuid.NewString(), Year: 2025, Month: 4, Status: domain.RecordDraft}
	suite.mockRecordSvc.On("GetOrCreate", ctx, 2025, 4).Return(record, nil).Once()

	collections, err := suite.service.SaveMonth(ctx, 2025, 4, entries)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(collections)
	suite.mockCollectionRepo.AssertNotCalled(suite.T(), "UpsertCollections", mock.Anything, mock.Anything)
}

func (suite *CollectionServiceTestSuite) TestSaveMonth_UpsertFailureAbortsPipeline() {
	ctx := context.Background()
	entries := []dto.CollectionEntry{
		{StaffID: uuid.NewString(), Day: 1, Amount: decimal.NewFromInt(10)},
	}

	suite.mockRecordSvc.On("GetOrCreate", ctx, 2025, 3).Return(suite.record, nil).Once()
	suite.mockCollectionRepo.On("UpsertCollections", ctx, mock.Anything).Return(assert.AnError).Once()

	collections, err := suite.service.SaveMonth(ctx, 2025, 3, entries)

	suite.Require().Error(err)
	suite.Nil(collections)
	suite.mockStaffRepo.AssertNotCalled(suite.T(), "FindTrackableStaff", mock.Anything)
	suite.mockSalarySvc.AssertNotCalled(suite.T(), "Recompute", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCollectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionServiceTestSuite))
}
