package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	portssvc "github.com/collectly/backoffice_backend/internal/core/ports/services"
	"github.com/collectly/backoffice_backend/internal/dto"
	"github.com/collectly/backoffice_backend/internal/handlers"
	"github.com/collectly/backoffice_backend/internal/middleware"
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

// --- Test Suite ---
type CollectionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCollectionService
	jwtSecret   string
}

func (suite *CollectionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "backoffice-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *CollectionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockCollectionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCollectionRoutes(v1, suite.mockService)
}

func (suite *CollectionHandlerTestSuite) TestListCollections_Success() {
	staffID := uuid.NewString()
	expected := []domain.DailyCollection{
		{
			CollectionID:    uuid.NewString(),
			MonthlyRecordID: uuid.NewString(),
			StaffID:         staffID,
			Date:            time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Amount:          decimal.NewFromInt(120),
		},
	}

	suite.mockService.On("FetchMonth", mock.Anything, 2025, 3).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/collections?year=2025&month=3", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListCollectionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Collections, 1)
	suite.Equal(staffID, resp.Collections[0].StaffID)
	suite.Equal("2025-03-01", resp.Collections[0].Date)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CollectionHandlerTestSuite) TestListCollections_MissingQuery() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/collections", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "FetchMonth", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CollectionHandlerTestSuite) TestListCollections_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/collections?year=2025&month=3", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *CollectionHandlerTestSuite) TestSaveCollections_Success() {
	staffID := uuid.NewString()
	body := dto.SaveCollectionsRequest{
		Year:  2025,
		Month: 3,
		Entries: []dto.CollectionEntry{
			{StaffID: staffID, Day: 1, Amount: decimal.NewFromInt(100)},
		},
	}

	persisted := []domain.DailyCollection{
		{
			CollectionID:    uuid.NewString(),
			MonthlyRecordID: uuid.NewString(),
			StaffID:         staffID,
			Date:            time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Amount:          decimal.NewFromInt(100),
		},
	}

	suite.mockService.On("SaveMonth", mock.Anything, 2025, 3, mock.MatchedBy(func(entries []dto.CollectionEntry) bool {
		return len(entries) == 1 && entries[0].StaffID == staffID && entries[0].Day == 1
	})).Return(persisted, nil).Once()

	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/collections", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListCollectionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Collections, 1)
	suite.True(decimal.NewFromInt(100).Equal(resp.Collections[0].Amount))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CollectionHandlerTestSuite) TestSaveCollections_ServiceError() {
	body := dto.SaveCollectionsRequest{
		Year:  2025,
		Month: 3,
		Entries: []dto.CollectionEntry{
			{StaffID: uuid.NewString(), Day: 1, Amount: decimal.NewFromInt(100)},
		},
	}

	suite.mockService.On("SaveMonth", mock.Anything, 2025, 3, mock.Anything).Return(nil, assert.AnError).Once()

	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/collections", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestCollectionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionHandlerTestSuite))
}
