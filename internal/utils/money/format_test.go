package money

import (
	"strings"
	"testing"

	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat_INRHasNoDecimals(t *testing.T) {
	got := Format(decimal.NewFromInt(1000), domain.INR)
	assert.Equal(t, "₹1,000", got)
	assert.NotContains(t, got, ".")
}

func TestFormat_INRRoundsToWholeRupees(t *testing.T) {
	assert.Equal(t, "₹500", Format(decimal.RequireFromString("499.5"), domain.INR))
}

func TestFormat_TwoDecimalCurrencies(t *testing.T) {
	assert.Equal(t, "$10.50", Format(decimal.RequireFromString("10.5"), domain.USD))
	assert.Equal(t, "€1,234.00", Format(decimal.NewFromInt(1234), domain.EUR))
	assert.Equal(t, "£0.99", Format(decimal.RequireFromString("0.99"), domain.GBP))
}

func TestFormat_AEDSymbolAfterNumber(t *testing.T) {
	got := Format(decimal.NewFromInt(12), domain.AED)
	assert.Equal(t, "12.00 د.إ", got)
}

func TestFormat_DecimalCountPerCurrency(t *testing.T) {
	amount := decimal.RequireFromString("10.5")
	for _, c := range domain.SupportedCurrencies {
		got := Format(amount, c.CurrencyCode)
		assert.Contains(t, got, c.Symbol)

		digits := strings.TrimSpace(strings.ReplaceAll(got, c.Symbol, ""))
		dot := strings.LastIndex(digits, ".")
		if c.Precision == 0 {
			assert.Equal(t, -1, dot, "%s should have no decimal point: %q", c.CurrencyCode, got)
			continue
		}
		assert.Equal(t, c.Precision, len(digits)-dot-1, "%s decimals in %q", c.CurrencyCode, got)
	}
}

func TestFormatPriceRange(t *testing.T) {
	got := FormatPriceRange(decimal.NewFromInt(100), decimal.NewFromInt(250), domain.INR, domain.USD, storeSnapshot())
	assert.Equal(t, "$1.20 - $3.00", got)
}

func TestFormatPriceRange_SameCurrency(t *testing.T) {
	got := FormatPriceRange(decimal.NewFromInt(1500), decimal.NewFromInt(2500), domain.INR, domain.INR, storeSnapshot())
	assert.Equal(t, "₹1,500 - ₹2,500", got)
}
