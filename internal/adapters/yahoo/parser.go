package yahoo

import (
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/forexapps/forex_data_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// historyDateLayout matches the date column of the history table,
// e.g. "Aug 26, 2024".
const historyDateLayout = "Jan 2, 2006"

// historyColumns is the expected cell count of a data row:
// date, open, high, low, close, adj close, volume.
const historyColumns = 7

type skipReason string

const (
	skipShortRow    skipReason = "too few cells"
	skipBadDate     skipReason = "unparsable date"
	skipOutOfWindow skipReason = "outside requested window"
)

// rowOutcome is the tagged result of parsing one table row: either a
// record or a reason it was dropped. Keeping this explicit keeps the
// row-level fault isolation testable.
type rowOutcome struct {
	rate *domain.ForexRate
	skip skipReason
}

// parseHistory walks the data rows of the first history table in the
// document. A missing table simply yields zero records; the page layout
// is not under our control and structural drift must degrade, not crash.
// Malformed rows are logged and skipped, out-of-window rows are dropped
// silently.
func (c *Client) parseHistory(doc *goquery.Document, currencyPair string, window domain.DateWindow) []domain.ForexRate {
	rates := []domain.ForexRate{}

	doc.Find("table tbody tr").Each(func(i int, row *goquery.Selection) {
		outcome := parseRow(row, currencyPair, window)
		switch {
		case outcome.rate != nil:
			rates = append(rates, *outcome.rate)
		case outcome.skip != skipOutOfWindow:
			c.logger.Warn("Skipping history row",
				slog.Int("row", i),
				slog.String("reason", string(outcome.skip)),
				slog.String("text", strings.TrimSpace(row.Text())),
			)
		}
	})

	return rates
}

// parseRow extracts the seven positional cells of one row. The date must
// parse and fall inside the window; the numeric cells can never reject
// the row on their own since they default to zero.
func parseRow(row *goquery.Selection, currencyPair string, window domain.DateWindow) rowOutcome {
	cells := row.Find("td")
	if cells.Length() < historyColumns {
		return rowOutcome{skip: skipShortRow}
	}

	date, err := time.Parse(historyDateLayout, strings.TrimSpace(cells.Eq(0).Text()))
	if err != nil {
		return rowOutcome{skip: skipBadDate}
	}
	if !window.Contains(date) {
		return rowOutcome{skip: skipOutOfWindow}
	}

	rate := domain.ForexRate{
		CurrencyPair: currencyPair,
		Date:         date,
		Open:         parseDecimal(cells.Eq(1).Text()),
		High:         parseDecimal(cells.Eq(2).Text()),
		Low:          parseDecimal(cells.Eq(3).Text()),
		Close:        parseDecimal(cells.Eq(4).Text()),
		AdjClose:     parseDecimal(cells.Eq(5).Text()),
		Volume:       parseDecimal(cells.Eq(6).Text()),
	}
	return rowOutcome{rate: &rate}
}

// parseDecimal converts locale-formatted cell text into a decimal. Blank
// cells and the "-" placeholder mean "no data" and map to zero; so does
// malformed text, so a single bad cell never costs us the whole row.
func parseDecimal(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}
