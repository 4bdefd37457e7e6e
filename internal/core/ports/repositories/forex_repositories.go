package repositories

import (
	"context"
	"time"

	"github.com/forexapps/forex_data_app/internal/core/domain"
)

// ForexDataReader defines read operations for scraped forex data.
type ForexDataReader interface {
	// ListForexData retrieves every persisted record, unfiltered.
	ListForexData(ctx context.Context) ([]domain.PersistedForexRate, error)

	// FindForexDataByPairAndDateRange retrieves records for a currency pair
	// whose trading day falls inside [start, end], both inclusive.
	FindForexDataByPairAndDateRange(ctx context.Context, currencyPair string, start, end time.Time) ([]domain.PersistedForexRate, error)
}

// ForexDataWriter defines write operations for scraped forex data.
type ForexDataWriter interface {
	// SaveAllForexData inserts the given records and returns them with
	// their database-assigned identifiers, in input order.
	SaveAllForexData(ctx context.Context, rates []domain.ForexRate) ([]domain.PersistedForexRate, error)
}

// ForexDataRepositoryFacade combines all forex-data repository interfaces.
type ForexDataRepositoryFacade interface {
	ForexDataReader
	ForexDataWriter
}
