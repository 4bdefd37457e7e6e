package services

import (
	"context"
	"time"

	"github.com/forexapps/forex_data_app/internal/core/domain"
)

// RateSource fetches the upstream history document for a currency pair and
// returns the rows that parsed cleanly inside the window, in document order.
// Implementations must tolerate structural drift in the page by returning
// fewer rows rather than failing.
type RateSource interface {
	FetchHistory(ctx context.Context, currencyPair string, window domain.DateWindow) ([]domain.ForexRate, error)
}

// ForexScraperSvc runs the scrape-parse-filter-persist pipeline.
type ForexScraperSvc interface {
	// ScrapeAndSaveExchangeRates scrapes historical rates for the given
	// currency codes over the period's window, persists whatever was
	// found and returns the persisted records. A failed fetch degrades to
	// an empty result rather than an error.
	ScrapeAndSaveExchangeRates(ctx context.Context, from, to string, period domain.Period) ([]domain.PersistedForexRate, error)
}

// ForexReaderSvc exposes read access to previously persisted records.
type ForexReaderSvc interface {
	ListForexData(ctx context.Context) ([]domain.PersistedForexRate, error)

	// GetForexDataByPairAndDateRange retrieves persisted records for a
	// currency pair inside [start, end], both inclusive.
	GetForexDataByPairAndDateRange(ctx context.Context, currencyPair string, start, end time.Time) ([]domain.PersistedForexRate, error)
}

// ForexSvcFacade combines all forex-related service interfaces.
type ForexSvcFacade interface {
	ForexScraperSvc
	ForexReaderSvc
}
