package mapping

import (
	"github.com/forexapps/forex_data_app/internal/core/domain"
	"github.com/forexapps/forex_data_app/internal/models"
)

// ToModelForexData converts a domain ForexRate to a model ForexData.
// The ID stays zero; the database assigns it on insert.
func ToModelForexData(d domain.ForexRate) models.ForexData {
	return models.ForexData{
		CurrencyPair: d.CurrencyPair,
		Date:         d.Date,
		Open:         d.Open,
		High:         d.High,
		Low:          d.Low,
		Close:        d.Close,
		AdjClose:     d.AdjClose,
		Volume:       d.Volume,
	}
}

// ToPersistedForexRate converts a model ForexData to a domain
// PersistedForexRate.
func ToPersistedForexRate(m models.ForexData) domain.PersistedForexRate {
	return domain.PersistedForexRate{
		ID: m.ID,
		ForexRate: domain.ForexRate{
			CurrencyPair: m.CurrencyPair,
			Date:         m.Date,
			Open:         m.Open,
			High:         m.High,
			Low:          m.Low,
			Close:        m.Close,
			AdjClose:     m.AdjClose,
			Volume:       m.Volume,
		},
	}
}
