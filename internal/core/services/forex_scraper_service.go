package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/forexapps/forex_data_app/internal/apperrors"
	"github.com/forexapps/forex_data_app/internal/core/domain"
	portsrepo "github.com/forexapps/forex_data_app/internal/core/ports/repositories"
	portssvc "github.com/forexapps/forex_data_app/internal/core/ports/services"
)

// ForexScraperService orchestrates the scrape-parse-filter-persist
// pipeline. It holds no cross-invocation state; concurrent runs are
// independent.
type ForexScraperService struct {
	forexRepo  portsrepo.ForexDataRepositoryFacade
	rateSource portssvc.RateSource
	logger     *slog.Logger
}

// NewForexScraperService creates a ForexScraperService. A nil logger
// falls back to slog.Default().
func NewForexScraperService(forexRepo portsrepo.ForexDataRepositoryFacade, rateSource portssvc.RateSource, logger *slog.Logger) *ForexScraperService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ForexScraperService{
		forexRepo:  forexRepo,
		rateSource: rateSource,
		logger:     logger,
	}
}

// ScrapeAndSaveExchangeRates resolves the period's date window ending
// today, scrapes the history page for the pair and persists whatever rows
// survived parsing and filtering. A failed fetch is absorbed here: it is
// logged and degrades to an empty result so a flaky upstream never takes
// the caller down. Persistence failures do propagate.
func (s *ForexScraperService) ScrapeAndSaveExchangeRates(ctx context.Context, from, to string, period domain.Period) ([]domain.PersistedForexRate, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if !domain.IsValidCurrencyCode(from) || !domain.IsValidCurrencyCode(to) {
		return nil, fmt.Errorf("%w: invalid currency pair %s/%s", apperrors.ErrValidation, from, to)
	}
	if _, err := domain.ParsePeriod(string(period)); err != nil {
		return nil, err
	}

	currencyPair := domain.PairToken(from, to)
	// Compare trading days, not instants: the window covers whole
	// calendar dates at UTC midnight, same as the parsed row dates.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	window := period.Window(today)

	logger := s.logger.With(
		slog.String("currency_pair", currencyPair),
		slog.String("period", string(period)),
	)

	rates, err := s.rateSource.FetchHistory(ctx, currencyPair, window)
	if err != nil {
		logger.Error("Failed to fetch history from source", slog.String("error", err.Error()))
		return []domain.PersistedForexRate{}, nil
	}

	if len(rates) == 0 {
		logger.Warn("No valid data found in window")
		return []domain.PersistedForexRate{}, nil
	}

	persisted, err := s.forexRepo.SaveAllForexData(ctx, rates)
	if err != nil {
		return nil, fmt.Errorf("failed to save scraped forex data: %w", err)
	}

	logger.Info("Successfully saved scraped records", slog.Int("count", len(persisted)))
	return persisted, nil
}

// ListForexData returns every persisted record, unfiltered.
func (s *ForexScraperService) ListForexData(ctx context.Context) ([]domain.PersistedForexRate, error) {
	rates, err := s.forexRepo.ListForexData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list forex data: %w", err)
	}
	if rates == nil {
		return []domain.PersistedForexRate{}, nil
	}
	return rates, nil
}

// GetForexDataByPairAndDateRange returns persisted records for a currency
// pair inside [start, end], both inclusive.
func (s *ForexScraperService) GetForexDataByPairAndDateRange(ctx context.Context, currencyPair string, start, end time.Time) ([]domain.PersistedForexRate, error) {
	rates, err := s.forexRepo.FindForexDataByPairAndDateRange(ctx, currencyPair, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get forex data by pair and date range: %w", err)
	}
	if rates == nil {
		return []domain.PersistedForexRate{}, nil
	}
	return rates, nil
}
