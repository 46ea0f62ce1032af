package services

import (
	"context"

	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines cache-aware access to exchange rate snapshots.
// Neither method returns an error: failures degrade to cached or fallback data.
type ExchangeRateReaderSvc interface {
	// FetchRates asks the provider for live rates and refreshes the local cache.
	FetchRates(ctx context.Context) domain.ExchangeRateSnapshot

	// GetRates returns the cached snapshot while fresh, otherwise fetches.
	GetRates(ctx context.Context) domain.ExchangeRateSnapshot
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
}

// CurrencyConverterSvc defines conversion and display formatting of amounts
type CurrencyConverterSvc interface {
	// Convert converts amount using snapshot, returning amount unchanged when a rate is missing.
	Convert(ctx context.Context, amount decimal.Decimal, from, to domain.CurrencyCode, snapshot domain.ExchangeRateSnapshot) decimal.Decimal

	// FormatPrice renders amount with the symbol and precision of currency.
	FormatPrice(amount decimal.Decimal, currency domain.CurrencyCode) string

	// FormatPriceRange converts and formats both bounds, joined by " - ".
	FormatPriceRange(ctx context.Context, min, max decimal.Decimal, base, target domain.CurrencyCode, snapshot domain.ExchangeRateSnapshot) string
}

// CurrencyPreferenceSvc defines access to the persisted display currency
type CurrencyPreferenceSvc interface {
	// GetPreferredCurrency returns the stored code, or the reference currency when unset or invalid.
	GetPreferredCurrency(ctx context.Context) domain.CurrencyCode

	// SetPreferredCurrency validates and persists code.
	SetPreferredCurrency(ctx context.Context, code string) (domain.CurrencyCode, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyConverterSvc
	CurrencyPreferenceSvc
}
