package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForexRate is one day of scraped exchange-rate history for a currency
// pair. Values are immutable once parsed; Date carries a calendar date at
// UTC midnight.
type ForexRate struct {
	CurrencyPair string
	Date         time.Time
	Open         decimal.Decimal
	High         decimal.Decimal
	Low          decimal.Decimal
	Close        decimal.Decimal
	AdjClose     decimal.Decimal
	Volume       decimal.Decimal
}

// PersistedForexRate is a ForexRate that has been stored, together with
// its database identity. The scraped value itself stays untouched.
type PersistedForexRate struct {
	ID int64
	ForexRate
}

// PairToken builds the upstream symbol for a currency pair, e.g.
// PairToken("USD", "INR") == "USDINR=X". Codes are expected uppercase.
func PairToken(from, to string) string {
	return from + to + "=X"
}
