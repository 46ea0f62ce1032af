package money

import (
	"strings"

	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PriceRangeSeparator joins the two bounds of a formatted price range.
const PriceRangeSeparator = " - "

// Format renders amount in currency with locale digit grouping and the currency's
// precision. Unknown codes are formatted with two decimals and the code as suffix.
// Example: 1000 INR -> "₹1,000", 10.5 USD -> "$10.50", 12 AED -> "12.00 د.إ"
func Format(amount decimal.Decimal, currency domain.CurrencyCode) string {
	info, ok := domain.LookupCurrency(currency)
	if !ok {
		info = domain.Currency{CurrencyCode: currency, Symbol: string(currency), Precision: 2, SymbolAfter: true, Locale: "en"}
	}

	digits := FormatWithPrecision(amount, info.Precision, info.Locale)
	if info.SymbolAfter {
		return digits + " " + info.Symbol
	}
	return info.Symbol + digits
}

// FormatWithPrecision groups digits for locale and pads to exactly precision decimals.
// The amount is rounded half away from zero before it reaches the printer.
func FormatWithPrecision(amount decimal.Decimal, precision int, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	rounded := amount.Round(int32(precision)).InexactFloat64()
	p := message.NewPrinter(tag)
	return strings.TrimSpace(p.Sprintf("%v", number.Decimal(rounded, number.Scale(precision))))
}

// FormatPriceRange converts both bounds from base to target independently,
// formats each and joins them with PriceRangeSeparator.
func FormatPriceRange(min, max decimal.Decimal, base, target domain.CurrencyCode, snapshot domain.ExchangeRateSnapshot) string {
	low := Format(Convert(min, base, target, snapshot), target)
	high := Format(Convert(max, base, target, snapshot), target)
	return low + PriceRangeSeparator + high
}
