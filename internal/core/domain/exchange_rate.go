package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FallbackRates are approximate INR-relative factors used when the provider is unreachable.
var FallbackRates = map[CurrencyCode]decimal.Decimal{
	INR: decimal.NewFromInt(1),
	USD: decimal.RequireFromString("0.012"),
	EUR: decimal.RequireFromString("0.011"),
	GBP: decimal.RequireFromString("0.0095"),
	AED: decimal.RequireFromString("0.044"),
}

// ExchangeRateSnapshot is an immutable point-in-time set of conversion factors.
// One unit of Base converts to Rate(code) units of code.
type ExchangeRateSnapshot struct {
	base      CurrencyCode
	rates     map[CurrencyCode]decimal.Decimal
	timestamp int64
}

// NewExchangeRateSnapshot copies rates and pins rates[base] to 1.
func NewExchangeRateSnapshot(base CurrencyCode, rates map[CurrencyCode]decimal.Decimal, capturedAt time.Time) ExchangeRateSnapshot {
	copied := make(map[CurrencyCode]decimal.Decimal, len(rates)+1)
	for code, rate := range rates {
		copied[code] = rate
	}
	copied[base] = decimal.NewFromInt(1)
	return ExchangeRateSnapshot{
		base:      base,
		rates:     copied,
		timestamp: capturedAt.UnixMilli(),
	}
}

// FallbackSnapshot returns the hardcoded snapshot stamped with capturedAt.
func FallbackSnapshot(capturedAt time.Time) ExchangeRateSnapshot {
	return NewExchangeRateSnapshot(ReferenceCurrency, FallbackRates, capturedAt)
}

func (s ExchangeRateSnapshot) Base() CurrencyCode { return s.base }

// Timestamp is the capture time in epoch milliseconds.
func (s ExchangeRateSnapshot) Timestamp() int64 { return s.timestamp }

// Rate returns the factor for code and whether the snapshot carries one.
func (s ExchangeRateSnapshot) Rate(code CurrencyCode) (decimal.Decimal, bool) {
	rate, ok := s.rates[code]
	return rate, ok
}

// Rates returns a copy of the factor table.
func (s ExchangeRateSnapshot) Rates() map[CurrencyCode]decimal.Decimal {
	out := make(map[CurrencyCode]decimal.Decimal, len(s.rates))
	for code, rate := range s.rates {
		out[code] = rate
	}
	return out
}

// IsFresh reports whether the snapshot is younger than ttl at now.
func (s ExchangeRateSnapshot) IsFresh(now time.Time, ttl time.Duration) bool {
	return now.UnixMilli()-s.timestamp < ttl.Milliseconds()
}

type snapshotJSON struct {
	Base      CurrencyCode                 `json:"base"`
	Rates     map[CurrencyCode]json.Number `json:"rates"`
	Timestamp int64                        `json:"timestamp"`
}

// MarshalJSON writes rates as plain JSON numbers.
func (s ExchangeRateSnapshot) MarshalJSON() ([]byte, error) {
	out := snapshotJSON{
		Base:      s.base,
		Rates:     make(map[CurrencyCode]json.Number, len(s.rates)),
		Timestamp: s.timestamp,
	}
	for code, rate := range s.rates {
		out.Rates[code] = json.Number(rate.String())
	}
	return json.Marshal(out)
}

// UnmarshalJSON rejects payloads without a base or rates table.
func (s *ExchangeRateSnapshot) UnmarshalJSON(data []byte) error {
	var in snapshotJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Base == "" || len(in.Rates) == 0 {
		return fmt.Errorf("snapshot missing base or rates")
	}
	rates := make(map[CurrencyCode]decimal.Decimal, len(in.Rates))
	for code, raw := range in.Rates {
		rate, err := decimal.NewFromString(raw.String())
		if err != nil {
			return fmt.Errorf("rate for %s: %w", code, err)
		}
		rates[code] = rate
	}
	s.base = in.Base
	s.rates = rates
	s.rates[in.Base] = decimal.NewFromInt(1)
	s.timestamp = in.Timestamp
	return nil
}
