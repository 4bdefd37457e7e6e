package dto

import (
	"github.com/forexapps/forex_data_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ScrapeForexDataRequest carries the query parameters of a scrape request.
// "currency" is a custom binding validation backed by the domain
// allow-list; the period token is checked against the closed set.
type ScrapeForexDataRequest struct {
	From   string `form:"from" binding:"required,currency"`
	To     string `form:"to" binding:"required,currency"`
	Period string `form:"period" binding:"required"`
}

// HistoricalForexDataRequest carries the query parameters of a stored-history
// lookup. Pair is the upstream pair token, e.g. USDINR=X.
type HistoricalForexDataRequest struct {
	Pair  string `form:"pair" binding:"required"`
	Start string `form:"start" binding:"required,datetime=2006-01-02"`
	End   string `form:"end" binding:"required,datetime=2006-01-02"`
}

// ForexDataResponse is the API shape of one persisted record. Date is an
// ISO-8601 date string; the numeric fields serialize as JSON numbers.
type ForexDataResponse struct {
	ID           int64           `json:"id"`
	CurrencyPair string          `json:"currencyPair"`
	Date         string          `json:"date"`
	Open         decimal.Decimal `json:"open"`
	High         decimal.Decimal `json:"high"`
	Low          decimal.Decimal `json:"low"`
	Close        decimal.Decimal `json:"close"`
	AdjClose     decimal.Decimal `json:"adjClose"`
	Volume       decimal.Decimal `json:"volume"`
}

// ErrorResponse is the error body shape of this API.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// ToForexDataResponse converts a domain.PersistedForexRate to a
// ForexDataResponse DTO.
func ToForexDataResponse(rate domain.PersistedForexRate) ForexDataResponse {
	return ForexDataResponse{
		ID:           rate.ID,
		CurrencyPair: rate.CurrencyPair,
		Date:         rate.Date.Format("2006-01-02"),
		Open:         rate.Open,
		High:         rate.High,
		Low:          rate.Low,
		Close:        rate.Close,
		AdjClose:     rate.AdjClose,
		Volume:       rate.Volume,
	}
}

// ToListForexDataResponse converts a slice of persisted records to DTOs.
func ToListForexDataResponse(rates []domain.PersistedForexRate) []ForexDataResponse {
	responses := make([]ForexDataResponse, len(rates))
	for i, rate := range rates {
		responses[i] = ToForexDataResponse(rate)
	}
	return responses
}
