package domain_test

import (
	"testing"

	"github.com/forexapps/forex_data_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsValidCurrencyCode(t *testing.T) {
	assert.True(t, domain.IsValidCurrencyCode("USD"))
	assert.True(t, domain.IsValidCurrencyCode("INR"))
	assert.True(t, domain.IsValidCurrencyCode("EUR"))
	assert.True(t, domain.IsValidCurrencyCode("gbp"), "lookup is case-insensitive")

	assert.False(t, domain.IsValidCurrencyCode(""))
	assert.False(t, domain.IsValidCurrencyCode("US"))
	assert.False(t, domain.IsValidCurrencyCode("USDT"), "only 3-letter codes")
	assert.False(t, domain.IsValidCurrencyCode("XXX"), "not in allow-list")
	assert.False(t, domain.IsValidCurrencyCode("123"))
}

func TestPairToken(t *testing.T) {
	assert.Equal(t, "USDINR=X", domain.PairToken("USD", "INR"))
	assert.Equal(t, "GBPEUR=X", domain.PairToken("GBP", "EUR"))
}
