package pgsql

import (
	"context"
	"time"

	"github.com/forexapps/forex_data_app/internal/apperrors"
	"github.com/forexapps/forex_data_app/internal/core/domain"
	"github.com/forexapps/forex_data_app/internal/models"
	"github.com/forexapps/forex_data_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxForexDataRepository implements the ports.ForexDataRepositoryFacade
// interface using pgxpool.
type PgxForexDataRepository struct {
	BaseRepository
}

// NewPgxForexDataRepository creates a new PgxForexDataRepository.
func NewPgxForexDataRepository(db *pgxpool.Pool) *PgxForexDataRepository {
	return &PgxForexDataRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const forexDataColumns = `id, currency_pair, date, open, high, low, close, adj_close, volume`

// SaveAllForexData inserts the given records in one transaction and
// returns them with their assigned identifiers, in input order. There is
// no uniqueness constraint on (currency_pair, date); repeated scrapes of
// overlapping windows insert duplicate rows.
func (r *PgxForexDataRepository) SaveAllForexData(ctx context.Context, rates []domain.ForexRate) ([]domain.PersistedForexRate, error) {
	if len(rates) == 0 {
		return []domain.PersistedForexRate{}, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO forex_data (currency_pair, date, open, high, low, close, adj_close, volume)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`

	persisted := make([]domain.PersistedForexRate, 0, len(rates))
	for _, rate := range rates {
		m := mapping.ToModelForexData(rate)
		err := tx.QueryRow(ctx, query,
			m.CurrencyPair, m.Date, m.Open, m.High, m.Low, m.Close, m.AdjClose, m.Volume,
		).Scan(&m.ID)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return nil, apperrors.NewAppError(500, "failed to insert forex data", err)
		}
		persisted = append(persisted, mapping.ToPersistedForexRate(m))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return persisted, nil
}

// ListForexData retrieves every persisted record, oldest insert first.
func (r *PgxForexDataRepository) ListForexData(ctx context.Context) ([]domain.PersistedForexRate, error) {
	query := `SELECT ` + forexDataColumns + ` FROM forex_data ORDER BY id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list forex data", err)
	}
	defer rows.Close()

	return scanForexDataRows(rows)
}

// FindForexDataByPairAndDateRange retrieves records for a currency pair
// whose trading day falls inside [start, end], both inclusive, most
// recent first.
func (r *PgxForexDataRepository) FindForexDataByPairAndDateRange(ctx context.Context, currencyPair string, start, end time.Time) ([]domain.PersistedForexRate, error) {
	query := `
		SELECT ` + forexDataColumns + `
		FROM forex_data
		WHERE currency_pair = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC;
	`

	rows, err := r.Pool.Query(ctx, query, currencyPair, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find forex data by pair and date range", err)
	}
	defer rows.Close()

	return scanForexDataRows(rows)
}

func scanForexDataRows(rows pgx.Rows) ([]domain.PersistedForexRate, error) {
	rates := []domain.PersistedForexRate{}
	for rows.Next() {
		var m models.ForexData
		err := rows.Scan(
			&m.ID, &m.CurrencyPair, &m.Date,
			&m.Open, &m.High, &m.Low, &m.Close, &m.AdjClose, &m.Volume,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan forex data", err)
		}
		rates = append(rates, mapping.ToPersistedForexRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating forex data", err)
	}
	return rates, nil
}
