package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForexData is the database row for one scraped trading day.
// Price columns are numeric(10,5); volume is numeric(20,5) to tolerate
// large traded volumes.
type ForexData struct {
	ID           int64           `db:"id"`
	CurrencyPair string          `db:"currency_pair"`
	Date         time.Time       `db:"date"`
	Open         decimal.Decimal `db:"open"`
	High         decimal.Decimal `db:"high"`
	Low          decimal.Decimal `db:"low"`
	Close        decimal.Decimal `db:"close"`
	AdjClose     decimal.Decimal `db:"adj_close"`
	Volume       decimal.Decimal `db:"volume"`
}
