package domain_test

import (
	"testing"
	"time"

	"github.com/forexapps/forex_data_app/internal/apperrors"
	"github.com/forexapps/forex_data_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParsePeriod_ValidTokens(t *testing.T) {
	for _, token := range []string{"1W", "1M", "3M", "6M", "9M", "1Y"} {
		p, err := domain.ParsePeriod(token)
		require.NoError(t, err, "token %s", token)
		assert.Equal(t, domain.Period(token), p)
	}
}

func TestParsePeriod_InvalidTokens(t *testing.T) {
	for _, token := range []string{"", "2W", "1w", "12M", "1D", "week"} {
		_, err := domain.ParsePeriod(token)
		require.Error(t, err, "token %q", token)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestPeriod_StartDate(t *testing.T) {
	today := date(2024, time.August, 15)

	tests := []struct {
		period domain.Period
		want   time.Time
	}{
		{domain.PeriodOneWeek, date(2024, time.August, 8)},
		{domain.PeriodOneMonth, date(2024, time.July, 15)},
		{domain.PeriodThreeMonths, date(2024, time.May, 15)},
		{domain.PeriodSixMonths, date(2024, time.February, 15)},
		{domain.PeriodNineMonths, date(2023, time.November, 15)},
		{domain.PeriodOneYear, date(2023, time.August, 15)},
	}

	for _, tt := range tests {
		got := tt.period.StartDate(today)
		assert.Equal(t, tt.want, got, "period %s", tt.period)
		assert.True(t, got.Before(today), "start must precede today for %s", tt.period)
	}
}

func TestPeriod_Window(t *testing.T) {
	today := date(2024, time.August, 15)
	w := domain.PeriodOneWeek.Window(today)

	assert.Equal(t, date(2024, time.August, 8), w.Start)
	assert.Equal(t, today, w.End)
}

func TestDateWindow_ContainsIsInclusive(t *testing.T) {
	w := domain.DateWindow{
		Start: date(2024, time.August, 8),
		End:   date(2024, time.August, 15),
	}

	assert.True(t, w.Contains(date(2024, time.August, 8)), "start boundary")
	assert.True(t, w.Contains(date(2024, time.August, 15)), "end boundary")
	assert.True(t, w.Contains(date(2024, time.August, 12)))
	assert.False(t, w.Contains(date(2024, time.August, 7)))
	assert.False(t, w.Contains(date(2024, time.August, 16)))
}
