package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/forexapps/forex_data_app/internal/apperrors"
	"github.com/forexapps/forex_data_app/internal/core/domain"
	portssvc "github.com/forexapps/forex_data_app/internal/core/ports/services"
	"github.com/forexapps/forex_data_app/internal/dto"
	"github.com/forexapps/forex_data_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// forexHandler handles HTTP requests related to scraped forex data.
type forexHandler struct {
	forexService portssvc.ForexSvcFacade
}

// newForexHandler creates a new forexHandler.
func newForexHandler(fs portssvc.ForexSvcFacade) *forexHandler {
	return &forexHandler{
		forexService: fs,
	}
}

// registerForexRoutes registers routes related to forex data.
func registerForexRoutes(rg *gin.RouterGroup, forexService portssvc.ForexSvcFacade) {
	h := newForexHandler(forexService)

	forex := rg.Group("/forex-data")
	{
		forex.POST("", h.scrapeForexData)
		forex.GET("", h.listForexData)
		forex.GET("/history", h.getForexDataHistory)
	}
}

// scrapeForexData godoc
// @Summary Scrape historical exchange data and store it in the database
// @Description Scrapes historical OHLC and volume data for a currency pair from Yahoo Finance over the requested period and persists it.
// @Tags forex-data
// @Produce json
// @Param from query string true "Source currency code (3 letters)" example(USD)
// @Param to query string true "Target currency code (3 letters)" example(INR)
// @Param period query string true "Historical period" Enums(1W, 1M, 3M, 6M, 9M, 1Y) example(1W)
// @Success 200 {array} dto.ForexDataResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to scrape data"
// @Router /forex-data [post]
func (h *forexHandler) scrapeForexData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ScrapeForexDataRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid scrape request parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: "Invalid input parameters"})
		return
	}

	period, err := domain.ParsePeriod(req.Period)
	if err != nil {
		logger.Warn("Invalid period token", slog.String("period", req.Period))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: "Invalid input parameters"})
		return
	}

	logger = logger.With(slog.String("from", req.From), slog.String("to", req.To), slog.String("period", req.Period))
	logger.Info("Received request to scrape and save exchange rates")

	rates, err := h.forexService.ScrapeAndSaveExchangeRates(c.Request.Context(), req.From, req.To, period)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error scraping exchange rates", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: "Invalid input parameters"})
			return
		}
		logger.Error("Failed to scrape and save exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: "Failed to scrape data"})
		return
	}

	// An empty scrape is reported as a failure: a failed fetch and a
	// genuinely empty window are indistinguishable at this point.
	if len(rates) == 0 {
		logger.Error("No data scraped for the provided parameters")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: "Failed to scrape data"})
		return
	}

	logger.Info("Successfully scraped and saved exchange rates", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListForexDataResponse(rates))
}

// listForexData godoc
// @Summary List all persisted forex data
// @Description Retrieves every scraped record stored in the database, unfiltered.
// @Tags forex-data
// @Produce json
// @Success 200 {array} dto.ForexDataResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve data"
// @Router /forex-data [get]
func (h *forexHandler) listForexData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list forex data")

	rates, err := h.forexService.ListForexData(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list forex data from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: "Failed to retrieve data"})
		return
	}

	logger.Info("Forex data listed successfully", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListForexDataResponse(rates))
}

// getForexDataHistory godoc
// @Summary Get persisted forex data for a pair within a date range
// @Description Retrieves stored records for a currency pair between two dates, both inclusive, newest first.
// @Tags forex-data
// @Produce json
// @Param pair query string true "Currency pair token" example(USDINR=X)
// @Param start query string true "Range start date (YYYY-MM-DD)" example(2024-08-01)
// @Param end query string true "Range end date (YYYY-MM-DD)" example(2024-08-26)
// @Success 200 {array} dto.ForexDataResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve data"
// @Router /forex-data/history [get]
func (h *forexHandler) getForexDataHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.HistoricalForexDataRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid history request parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: "Invalid input parameters"})
		return
	}

	// The datetime binding already guarantees the layout.
	start, _ := time.Parse("2006-01-02", req.Start)
	end, _ := time.Parse("2006-01-02", req.End)
	if end.Before(start) {
		logger.Warn("History range end precedes start", slog.String("start", req.Start), slog.String("end", req.End))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: "Invalid input parameters"})
		return
	}

	logger = logger.With(slog.String("pair", req.Pair), slog.String("start", req.Start), slog.String("end", req.End))
	logger.Info("Received request for stored forex history")

	rates, err := h.forexService.GetForexDataByPairAndDateRange(c.Request.Context(), req.Pair, start, end)
	if err != nil {
		logger.Error("Failed to get forex history from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: "Failed to retrieve data"})
		return
	}

	logger.Info("Forex history retrieved successfully", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListForexDataResponse(rates))
}
