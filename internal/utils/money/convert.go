// Package money converts and formats storefront amounts over exchange rate snapshots.
package money

import (
	"fmt"

	"github.com/SscSPs/grace_blooms_backend/internal/apperrors"
	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ResultPrecision is the number of decimal places a converted amount is rounded to.
const ResultPrecision = 2

// ConvertStrict converts amount from one currency to another through snapshot.
// Identical currencies return amount untouched. Otherwise the result is rounded
// half away from zero to two places, once, at the end. A missing target rate or a
// missing/zero source rate yields apperrors.ErrMissingRate along with the original amount.
func ConvertStrict(amount decimal.Decimal, from, to domain.CurrencyCode, snapshot domain.ExchangeRateSnapshot) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	toRate, ok := snapshot.Rate(to)
	if !ok {
		return amount, fmt.Errorf("%w: no rate for %s in %s snapshot", apperrors.ErrMissingRate, to, snapshot.Base())
	}

	if snapshot.Base() == from {
		return amount.Mul(toRate).Round(ResultPrecision), nil
	}

	fromRate, ok := snapshot.Rate(from)
	if !ok || fromRate.IsZero() {
		return amount, fmt.Errorf("%w: no usable rate for %s in %s snapshot", apperrors.ErrMissingRate, from, snapshot.Base())
	}

	// amount/fromRate is the amount in the snapshot base; multiplying first keeps it exact.
	return amount.Mul(toRate).Div(fromRate).Round(ResultPrecision), nil
}

// Convert is ConvertStrict with the silent-degrade policy: on a missing rate the
// original amount is returned unconverted.
func Convert(amount decimal.Decimal, from, to domain.CurrencyCode, snapshot domain.ExchangeRateSnapshot) decimal.Decimal {
	converted, _ := ConvertStrict(amount, from, to, snapshot)
	return converted
}
