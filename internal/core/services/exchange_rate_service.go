package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	"github.com/SscSPs/grace_blooms_backend/internal/core/ports"
	portssvc "github.com/SscSPs/grace_blooms_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const (
	// RatesCacheKey is the local storage key holding the serialized snapshot.
	RatesCacheKey = "grace_blooms_exchange_rates"

	// DefaultRatesCacheTTL is how long a cached snapshot is served without refetching.
	DefaultRatesCacheTTL = 24 * time.Hour
)

var errNoRatesProvider = errors.New("no rates provider configured")

// exchangeRateService implements the ExchangeRateSvcFacade interface
type exchangeRateService struct {
	BaseService
	provider ports.RatesProvider
	store    ports.LocalStore
	cacheTTL time.Duration
}

// ExchangeRateOption is a functional option for configuring the exchange rate service
type ExchangeRateOption func(*exchangeRateService)

// WithRatesCache enables the local snapshot cache. Without it the service runs headless.
func WithRatesCache(store ports.LocalStore) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.store = store
	}
}

// WithRatesCacheTTL overrides DefaultRatesCacheTTL.
func WithRatesCacheTTL(ttl time.Duration) ExchangeRateOption {
	return func(s *exchangeRateService) {
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithRatesClock overrides the time source used for timestamps and freshness.
func WithRatesClock(now func() time.Time) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.Now = now
	}
}

// NewExchangeRateService creates a new exchange rate service with the provided options
func NewExchangeRateService(provider ports.RatesProvider, options ...ExchangeRateOption) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		provider: provider,
		cacheTTL: DefaultRatesCacheTTL,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// FetchRates builds a snapshot of the supported currencies from the provider.
// Currencies the provider omits keep their fallback rate. Any provider failure
// yields the fallback snapshot; only a successful fetch is written to the cache.
func (s *exchangeRateService) FetchRates(ctx context.Context) domain.ExchangeRateSnapshot {
	if s.provider == nil {
		s.LogWarn(ctx, errNoRatesProvider, "Using fallback exchange rates")
		return domain.FallbackSnapshot(s.now())
	}

	live, err := s.provider.FetchLatest(ctx, string(domain.ReferenceCurrency))
	if err != nil {
		s.LogWarn(ctx, err, "Exchange rate fetch failed, using fallback rates")
		return domain.FallbackSnapshot(s.now())
	}

	rates := make(map[domain.CurrencyCode]decimal.Decimal, len(domain.FallbackRates))
	for code, fallback := range domain.FallbackRates {
		if v, ok := live[string(code)]; ok && v > 0 {
			rates[code] = decimal.NewFromFloat(v)
		} else {
			rates[code] = fallback
		}
	}
	snapshot := domain.NewExchangeRateSnapshot(domain.ReferenceCurrency, rates, s.now())

	if s.store != nil {
		s.writeCache(ctx, snapshot)
	}

	s.LogDebug(ctx, "Fetched exchange rates", slog.Int64("timestamp", snapshot.Timestamp()))
	return snapshot
}

// GetRates serves the cached snapshot while it is fresh and fetches otherwise.
// Headless callers always get the fallback snapshot without a network call.
func (s *exchangeRateService) GetRates(ctx context.Context) domain.ExchangeRateSnapshot {
	if s.store == nil {
		return domain.FallbackSnapshot(s.now())
	}

	raw, found, err := s.store.Get(ctx, RatesCacheKey)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to read exchange rate cache")
		return s.FetchRates(ctx)
	}
	if !found {
		return s.FetchRates(ctx)
	}

	var cached domain.ExchangeRateSnapshot
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		s.LogWarn(ctx, err, "Discarding unreadable exchange rate cache")
		if delErr := s.store.Delete(ctx, RatesCacheKey); delErr != nil {
			s.LogWarn(ctx, delErr, "Failed to delete exchange rate cache")
		}
		return s.FetchRates(ctx)
	}

	if cached.IsFresh(s.now(), s.cacheTTL) {
		return cached
	}

	s.LogDebug(ctx, "Cached exchange rates are stale", slog.Int64("timestamp", cached.Timestamp()))
	return s.FetchRates(ctx)
}

func (s *exchangeRateService) writeCache(ctx context.Context, snapshot domain.ExchangeRateSnapshot) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to encode exchange rate snapshot")
		return
	}
	if err := s.store.Set(ctx, RatesCacheKey, string(payload)); err != nil {
		s.LogWarn(ctx, err, "Failed to write exchange rate cache")
	}
}
