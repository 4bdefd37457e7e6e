package domain

import (
	"fmt"
	"time"

	"github.com/forexapps/forex_data_app/internal/apperrors"
)

// Period is a closed set of historical lookback tokens.
type Period string

const (
	PeriodOneWeek     Period = "1W"
	PeriodOneMonth    Period = "1M"
	PeriodThreeMonths Period = "3M"
	PeriodSixMonths   Period = "6M"
	PeriodNineMonths  Period = "9M"
	PeriodOneYear     Period = "1Y"
)

// ParsePeriod validates a raw token against the closed period set. Tokens
// are case-sensitive.
func ParsePeriod(raw string) (Period, error) {
	switch p := Period(raw); p {
	case PeriodOneWeek, PeriodOneMonth, PeriodThreeMonths,
		PeriodSixMonths, PeriodNineMonths, PeriodOneYear:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown period %q", apperrors.ErrValidation, raw)
	}
}

// DateWindow is an inclusive range of calendar dates.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the window, boundaries included.
func (w DateWindow) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// StartDate resolves the window start for a period ending today. Calendar
// arithmetic, so month lengths are respected.
func (p Period) StartDate(today time.Time) time.Time {
	switch p {
	case PeriodOneWeek:
		return today.AddDate(0, 0, -7)
	case PeriodOneMonth:
		return today.AddDate(0, -1, 0)
	case PeriodThreeMonths:
		return today.AddDate(0, -3, 0)
	case PeriodSixMonths:
		return today.AddDate(0, -6, 0)
	case PeriodNineMonths:
		return today.AddDate(0, -9, 0)
	case PeriodOneYear:
		return today.AddDate(-1, 0, 0)
	default:
		return today
	}
}

// Window builds the inclusive date window for a period ending today.
func (p Period) Window(today time.Time) DateWindow {
	return DateWindow{Start: p.StartDate(today), End: today}
}
