package domain

import "strings"

// CurrencyCode is an ISO 4217 code from the storefront's closed currency set.
type CurrencyCode string

const (
	INR CurrencyCode = "INR"
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	AED CurrencyCode = "AED"
)

// ReferenceCurrency is the currency rate snapshots are fetched relative to.
// It is also the fallback display currency.
const ReferenceCurrency = INR

// Currency describes how a supported currency is displayed.
type Currency struct {
	CurrencyCode CurrencyCode `json:"currencyCode"`
	Symbol       string       `json:"symbol"`
	Name         string       `json:"name"`
	Precision    int          `json:"precision"`   // Decimal places shown when formatting
	SymbolAfter  bool         `json:"symbolAfter"` // Symbol trails the number, separated by a space
	Locale       string       `json:"locale"`      // BCP 47 tag used for digit grouping
}

// SupportedCurrencies is the closed set of display currencies, in display order.
var SupportedCurrencies = []Currency{
	{CurrencyCode: INR, Symbol: "₹", Name: "Indian Rupee", Precision: 0, Locale: "en-IN"},
	{CurrencyCode: USD, Symbol: "$", Name: "US Dollar", Precision: 2, Locale: "en-US"},
	{CurrencyCode: EUR, Symbol: "€", Name: "Euro", Precision: 2, Locale: "en-US"},
	{CurrencyCode: GBP, Symbol: "£", Name: "British Pound", Precision: 2, Locale: "en-GB"},
	{CurrencyCode: AED, Symbol: "د.إ", Name: "UAE Dirham", Precision: 2, SymbolAfter: true, Locale: "en-US"},
}

// LookupCurrency returns the display metadata for code.
func LookupCurrency(code CurrencyCode) (Currency, bool) {
	for _, c := range SupportedCurrencies {
		if c.CurrencyCode == code {
			return c, true
		}
	}
	return Currency{}, false
}

// IsSupportedCurrency reports whether code belongs to the supported set.
func IsSupportedCurrency(code CurrencyCode) bool {
	_, ok := LookupCurrency(code)
	return ok
}

// ParseCurrencyCode normalizes s and checks it against the supported set.
func ParseCurrencyCode(s string) (CurrencyCode, bool) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	return code, IsSupportedCurrency(code)
}
