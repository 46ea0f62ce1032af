package dto

import (
	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertQuery binds the query string of a conversion request.
type ConvertQuery struct {
	Amount string `form:"amount" binding:"required,numeric"`
	From   string `form:"from" binding:"required,supported_currency"`
	To     string `form:"to" binding:"required,supported_currency"`
}

// ConvertResponse reports a converted and formatted amount.
type ConvertResponse struct {
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Converted decimal.Decimal `json:"converted" swaggertype:"string"`
	Formatted string          `json:"formatted"`
	RatesAt   int64           `json:"ratesTimestamp"`
}

// PriceRangeQuery binds the query string of a price range request.
// Target is optional and defaults to the stored display preference.
type PriceRangeQuery struct {
	Min    string `form:"min" binding:"required,numeric"`
	Max    string `form:"max" binding:"required,numeric"`
	Base   string `form:"base" binding:"required,supported_currency"`
	Target string `form:"target" binding:"omitempty,supported_currency"`
}

// PriceRangeResponse carries a formatted range such as "$1.20 - $2.40".
type PriceRangeResponse struct {
	Target    string `json:"target"`
	Formatted string `json:"formatted"`
}

// SetPreferenceRequest changes the display currency.
type SetPreferenceRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,len=3"`
}

// PreferenceResponse reports the display currency with its metadata.
type PreferenceResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	Currency     domain.Currency `json:"currency"`
}

// ToPreferenceResponse builds a PreferenceResponse for code.
func ToPreferenceResponse(code domain.CurrencyCode) PreferenceResponse {
	currency, _ := domain.LookupCurrency(code)
	return PreferenceResponse{CurrencyCode: string(code), Currency: currency}
}
