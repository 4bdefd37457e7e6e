package domain

import "strings"

// validCurrencyCodes is the static allow-list of ISO 4217 codes the
// scraper accepts. Yahoo serves many more pairs; this mirrors the set the
// original deployment recognized.
var validCurrencyCodes = map[string]struct{}{
	"AED": {}, "ARS": {}, "AUD": {}, "BDT": {}, "BGN": {}, "BHD": {},
	"BRL": {}, "CAD": {}, "CHF": {}, "CLP": {}, "CNY": {}, "COP": {},
	"CZK": {}, "DKK": {}, "EGP": {}, "EUR": {}, "GBP": {}, "HKD": {},
	"HUF": {}, "IDR": {}, "ILS": {}, "INR": {}, "JPY": {}, "KES": {},
	"KRW": {}, "KWD": {}, "LKR": {}, "MAD": {}, "MXN": {}, "MYR": {},
	"NGN": {}, "NOK": {}, "NZD": {}, "OMR": {}, "PEN": {}, "PHP": {},
	"PKR": {}, "PLN": {}, "QAR": {}, "RON": {}, "RUB": {}, "SAR": {},
	"SEK": {}, "SGD": {}, "THB": {}, "TRY": {}, "TWD": {}, "UAH": {},
	"USD": {}, "VND": {}, "ZAR": {},
}

// IsValidCurrencyCode reports whether code is a recognized 3-letter
// currency code. Comparison is case-insensitive.
func IsValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	_, ok := validCurrencyCodes[strings.ToUpper(code)]
	return ok
}
