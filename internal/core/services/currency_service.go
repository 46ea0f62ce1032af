package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/grace_blooms_backend/internal/apperrors"
	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	"github.com/SscSPs/grace_blooms_backend/internal/core/ports"
	portssvc "github.com/SscSPs/grace_blooms_backend/internal/core/ports/services"
	"github.com/SscSPs/grace_blooms_backend/internal/utils/money"
	"github.com/shopspring/decimal"
)

// PreferredCurrencyKey is the local storage key holding the display currency code.
const PreferredCurrencyKey = "preferred_currency"

type currencyService struct {
	BaseService
	store ports.LocalStore
}

// NewCurrencyService creates a currency service. A nil store means headless:
// the preference always reads as the reference currency and writes are dropped.
func NewCurrencyService(store ports.LocalStore) portssvc.CurrencySvcFacade {
	return &currencyService{store: store}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.CurrencyCode, snapshot domain.ExchangeRateSnapshot) decimal.Decimal {
	converted, err := money.ConvertStrict(amount, from, to, snapshot)
	if err != nil {
		s.LogWarn(ctx, err, "Returning unconverted amount",
			slog.String("from", string(from)),
			slog.String("to", string(to)))
	}
	return converted
}

func (s *currencyService) FormatPrice(amount decimal.Decimal, currency domain.CurrencyCode) string {
	return money.Format(amount, currency)
}

func (s *currencyService) FormatPriceRange(ctx context.Context, min, max decimal.Decimal, base, target domain.CurrencyCode, snapshot domain.ExchangeRateSnapshot) string {
	low := s.Convert(ctx, min, base, target, snapshot)
	high := s.Convert(ctx, max, base, target, snapshot)
	return money.Format(low, target) + money.PriceRangeSeparator + money.Format(high, target)
}

func (s *currencyService) GetPreferredCurrency(ctx context.Context) domain.CurrencyCode {
	if s.store == nil {
		return domain.ReferenceCurrency
	}

	raw, found, err := s.store.Get(ctx, PreferredCurrencyKey)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to read currency preference")
		return domain.ReferenceCurrency
	}
	if !found {
		return domain.ReferenceCurrency
	}

	code, ok := domain.ParseCurrencyCode(raw)
	if !ok {
		s.LogDebug(ctx, "Ignoring unsupported stored currency", slog.String("value", raw))
		return domain.ReferenceCurrency
	}
	return code
}

func (s *currencyService) SetPreferredCurrency(ctx context.Context, code string) (domain.CurrencyCode, error) {
	parsed, ok := domain.ParseCurrencyCode(code)
	if !ok {
		return "", fmt.Errorf("%w: unsupported currency code '%s'", apperrors.ErrValidation, code)
	}

	if s.store == nil {
		s.LogDebug(ctx, "No local store configured, currency preference not persisted", slog.String("currency", string(parsed)))
		return parsed, nil
	}

	if err := s.store.Set(ctx, PreferredCurrencyKey, string(parsed)); err != nil {
		s.LogError(ctx, err, "Failed to persist currency preference", slog.String("currency", string(parsed)))
		return "", fmt.Errorf("failed to persist currency preference: %w", err)
	}

	s.LogInfo(ctx, "Currency preference updated", slog.String("currency", string(parsed)))
	return parsed, nil
}
