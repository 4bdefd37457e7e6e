package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/forexapps/forex_data_app/internal/apperrors"
	"github.com/forexapps/forex_data_app/internal/core/domain"
	portssvc "github.com/forexapps/forex_data_app/internal/core/ports/services"
	"github.com/forexapps/forex_data_app/internal/dto"
	"github.com/forexapps/forex_data_app/internal/handlers"
	"github.com/forexapps/forex_data_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ForexService ---
type MockForexService struct {
	mock.Mock
}

func (m *MockForexService) ScrapeAndSaveExchangeRates(ctx context.Context, from, to string, period domain.Period) ([]domain.PersistedForexRate, error) {
	args := m.Called(ctx, from, to, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PersistedForexRate), args.Error(1)
}

func (m *MockForexService) ListForexData(ctx context.Context) ([]domain.PersistedForexRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PersistedForexRate), args.Error(1)
}

func (m *MockForexService) GetForexDataByPairAndDateRange(ctx context.Context, currencyPair string, start, end time.Time) ([]domain.PersistedForexRate, error) {
	args := m.Called(ctx, currencyPair, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PersistedForexRate), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ForexSvcFacade = (*MockForexService)(nil)

// --- Test Suite ---
type ForexHandlerTestSuite struct {
	suite.Suite
	mockService *MockForexService
	router      *gin.Engine
}

func (suite *ForexHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockForexService)

	suite.router = gin.New()
	cfg := &config.Config{IsProduction: true} // no swagger wiring in tests
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{Forex: suite.mockService})
}

func (suite *ForexHandlerTestSuite) doRequest(method, url string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, url, nil)
	suite.Require().NoError(err)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func persistedFixture() []domain.PersistedForexRate {
	return []domain.PersistedForexRate{
		{
			ID: 1,
			ForexRate: domain.ForexRate{
				CurrencyPair: "USDINR=X",
				Date:         time.Date(2024, time.August, 26, 0, 0, 0, 0, time.UTC),
				Open:         decimal.RequireFromString("83.1"),
				High:         decimal.RequireFromString("83.2"),
				Low:          decimal.RequireFromString("83.0"),
				Close:        decimal.RequireFromString("83.15"),
				AdjClose:     decimal.RequireFromString("83.15"),
				Volume:       decimal.Zero,
			},
		},
	}
}

// --- Test Cases ---

func (suite *ForexHandlerTestSuite) TestScrapeForexData_Success() {
	suite.mockService.On("ScrapeAndSaveExchangeRates", mock.Anything, "USD", "INR", domain.PeriodOneWeek).
		Return(persistedFixture(), nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/forex-data?from=USD&to=INR&period=1W")

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.ForexDataResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal(int64(1), body[0].ID)
	suite.Equal("USDINR=X", body[0].CurrencyPair)
	suite.Equal("2024-08-26", body[0].Date)
	suite.True(body[0].Open.Equal(decimal.RequireFromString("83.1")))
	suite.True(body[0].Volume.IsZero())
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ForexHandlerTestSuite) TestScrapeForexData_InvalidPeriod() {
	w := suite.doRequest(http.MethodPost, "/api/v1/forex-data?from=USD&to=INR&period=2W")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"msg":"Invalid input parameters"}`, w.Body.String())
	suite.mockService.AssertNotCalled(suite.T(), "ScrapeAndSaveExchangeRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ForexHandlerTestSuite) TestScrapeForexData_UnknownCurrencyCode() {
	w := suite.doRequest(http.MethodPost, "/api/v1/forex-data?from=ZZZ&to=INR&period=1W")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"msg":"Invalid input parameters"}`, w.Body.String())
	suite.mockService.AssertNotCalled(suite.T(), "ScrapeAndSaveExchangeRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ForexHandlerTestSuite) TestScrapeForexData_MissingParams() {
	w := suite.doRequest(http.MethodPost, "/api/v1/forex-data?from=USD")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"msg":"Invalid input parameters"}`, w.Body.String())
}

func (suite *ForexHandlerTestSuite) TestScrapeForexData_ServiceValidationError() {
	suite.mockService.On("ScrapeAndSaveExchangeRates", mock.Anything, "USD", "INR", domain.PeriodOneWeek).
		Return(nil, apperrors.NewValidationError("invalid currency pair")).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/forex-data?from=USD&to=INR&period=1W")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"msg":"Invalid input parameters"}`, w.Body.String())
}

func (suite *ForexHandlerTestSuite) TestScrapeForexData_EmptyResultIsServerError() {
	suite.mockService.On("ScrapeAndSaveExchangeRates", mock.Anything, "USD", "INR", domain.PeriodOneWeek).
		Return([]domain.PersistedForexRate{}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/forex-data?from=USD&to=INR&period=1W")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"msg":"Failed to scrape data"}`, w.Body.String())
}

func (suite *ForexHandlerTestSuite) TestScrapeForexData_PersistenceFailureIsServerError() {
	suite.mockService.On("ScrapeAndSaveExchangeRates", mock.Anything, "USD", "INR", domain.PeriodOneWeek).
		Return(nil, apperrors.NewAppError(500, "failed to insert forex data", nil)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/forex-data?from=USD&to=INR&period=1W")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"msg":"Failed to scrape data"}`, w.Body.String())
}

func (suite *ForexHandlerTestSuite) TestListForexData_Success() {
	suite.mockService.On("ListForexData", mock.Anything).Return(persistedFixture(), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/forex-data")

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.ForexDataResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 1)
}

func (suite *ForexHandlerTestSuite) TestListForexData_Empty() {
	suite.mockService.On("ListForexData", mock.Anything).Return([]domain.PersistedForexRate{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/forex-data")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *ForexHandlerTestSuite) TestListForexData_ServiceError() {
	suite.mockService.On("ListForexData", mock.Anything).
		Return(nil, apperrors.NewAppError(500, "failed to list forex data", nil)).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/forex-data")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"msg":"Failed to retrieve data"}`, w.Body.String())
}

func (suite *ForexHandlerTestSuite) TestGetForexDataHistory_Success() {
	start := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.August, 26, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("GetForexDataByPairAndDateRange", mock.Anything, "USDINR=X", start, end).
		Return(persistedFixture(), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/forex-data/history?pair=USDINR%3DX&start=2024-08-01&end=2024-08-26")

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.ForexDataResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("USDINR=X", body[0].CurrencyPair)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ForexHandlerTestSuite) TestGetForexDataHistory_MalformedDate() {
	w := suite.doRequest(http.MethodGet, "/api/v1/forex-data/history?pair=USDINR%3DX&start=Aug+1+2024&end=2024-08-26")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"msg":"Invalid input parameters"}`, w.Body.String())
	suite.mockService.AssertNotCalled(suite.T(), "GetForexDataByPairAndDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ForexHandlerTestSuite) TestGetForexDataHistory_EndBeforeStart() {
	w := suite.doRequest(http.MethodGet, "/api/v1/forex-data/history?pair=USDINR%3DX&start=2024-08-26&end=2024-08-01")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"msg":"Invalid input parameters"}`, w.Body.String())
	suite.mockService.AssertNotCalled(suite.T(), "GetForexDataByPairAndDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ForexHandlerTestSuite) TestGetForexDataHistory_ServiceError() {
	suite.mockService.On("GetForexDataByPairAndDateRange", mock.Anything, "USDINR=X", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError(500, "failed to get forex data by pair and date range", nil)).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/forex-data/history?pair=USDINR%3DX&start=2024-08-01&end=2024-08-26")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"msg":"Failed to retrieve data"}`, w.Body.String())
}

func TestForexHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ForexHandlerTestSuite))
}
