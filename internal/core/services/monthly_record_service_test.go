package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/collectly/backoffice_backend/internal/apperrors"
	"github.com/collectly/backoffice_backend/internal/core/domain"
	portssvc "github.com/collectly/backoffice_backend/internal/core/ports/services"
	"github.com/collectly/backoffice_backend/internal/core/services"
)

// --- Mock MonthlyRecordRepository ---
type MockMonthlyRecordRepository struct {
	mock.Mock
}

func (m *MockMonthlyRecordRepository) FindByYearMonth(ctx context.Context, year, month int) (*domain.MonthlyRecord, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyRecord), args.Error(1)
}

func (m *MockMonthlyRecordRepository) CreateMonthlyRecord(ctx context.Context, record domain.MonthlyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// --- Test Suite ---
type MonthlyRecordServiceTestSuite struct {
	suite.Suite
	mockRepo *MockMonthlyRecordRepository
	service  portssvc.MonthlyRecordSvcFacade
}

func (suite *MonthlyRecordServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMonthlyRecordRepository)
	suite.service = services.NewMonthlyRecordService(suite.mockRepo)
}

func (suite *MonthlyRecordServiceTestSuite) TestGetOrCreate_ReturnsExisting() {
	ctx := context.Background()
	existing := &domain.MonthlyRecord{RecordID: uuid.NewString(), Year: 2025, Month: 3, Status: domain.RecordDraft}

	suite.mockRepo.On("FindByYearMonth", ctx, 2025, 3).Return(existing, nil).Once()

	record, err := suite.service.GetOrCreate(ctx, 2025, 3)

	suite.Require().NoError(err)
	suite.Equal(existing, record)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateMonthlyRecord", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MonthlyRecordServiceTestSuite) TestGetOrCreate_CreatesWhenMissing() {
	ctx := context.Background()

	suite.mockRepo.On("FindByYearMonth", ctx, 2025, 3).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CreateMonthlyRecord", ctx, mock.MatchedBy(func(r domain.MonthlyRecord) bool {
		return r.Year == 2025 && r.Month == 3 && r.Status == domain.RecordDraft && r.RecordID != ""
	})).Return(nil).Once()

	record, err := suite.service.GetOrCreate(ctx, 2025, 3)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.Equal(2025, record.Year)
	suite.Equal(3, record.Month)
	suite.Equal(domain.RecordDraft, record.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

// TestGetOrCreate_Idempotent checks that two sequential calls against an
// empty then populated store resolve to the same record.
func (suite *MonthlyRecordServiceTestSuite) TestGetOrCreate_Idempotent() {
	ctx := context.Background()

	var created domain.MonthlyRecord
	suite.mockRepo.On("FindByYearMonth", ctx, 2025, 7).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CreateMonthlyRecord", ctx, mock.AnythingOfType("domain.MonthlyRecord")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(domain.MonthlyRecord)
		}).Return(nil).Once()

	first, err := suite.service.GetOrCreate(ctx, 2025, 7)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindByYearMonth", ctx, 2025, 7).Return(&created, nil).Once()

	second, err := suite.service.GetOrCreate(ctx, 2025, 7)
	suite.Require().NoError(err)
	suite.Equal(first.RecordID, second.RecordID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MonthlyRecordServiceTestSuite) TestGetOrCreate_DuplicateRaceRefetchesWinner() {
	ctx := context.Background()
	winner := &domain.MonthlyRecord{RecordID: uuid.NewString(), Year: 2025, Month: 3, Status: domain.RecordDraft}

	suite.mockRepo.On("FindByYearMonth", ctx, 2025, 3).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CreateMonthlyRecord", ctx, mock.AnythingOfType("domain.MonthlyRecord")).Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("FindByYearMonth", ctx, 2025, 3).Return(winner, nil).Once()

	record, err := suite.service.GetOrCreate(ctx, 2025, 3)

	suite.Require().NoError(err)
	suite.Equal(winner.RecordID, record.RecordID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MonthlyRecordServiceTestSuite) TestGetOrCreate_InvalidMonth() {
	ctx := context.Background()

	record, err := suite.service.GetOrCreate(ctx, 2025, 13)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(record)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindByYearMonth", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MonthlyRecordServiceTestSuite) TestGetOrCreate_LookupErrorPropagates() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindByYearMonth", ctx, 2025, 3).Return(nil, expectedErr).Once()

	record, err := suite.service.GetOrCreate(ctx, 2025, 3)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Nil(record)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateMonthlyRecord", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestMonthlyRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MonthlyRecordServiceTestSuite))
}
