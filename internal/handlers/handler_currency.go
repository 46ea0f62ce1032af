package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	portssvc "github.com/SscSPs/grace_blooms_backend/internal/core/ports/services"
	"github.com/SscSPs/grace_blooms_backend/internal/dto"
	"github.com/SscSPs/grace_blooms_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// currencyHandler handles HTTP requests for rates, conversion and the display preference.
type currencyHandler struct {
	rateService     portssvc.ExchangeRateSvcFacade
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(rs portssvc.ExchangeRateSvcFacade, cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		rateService:     rs,
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(rateService, currencyService)

	currency := rg.Group("/currency")
	{
		currency.GET("/rates", h.getRates)
		currency.GET("/convert", h.convert)
		currency.GET("/price-range", h.priceRange)
		currency.GET("/preference", h.getPreference)
		currency.PUT("/preference", h.setPreference)
	}
}

// getRates godoc
// @Summary Get exchange rates
// @Description Returns the cached INR-based rate table, refreshing it when stale. Falls back to built-in rates when the provider is unavailable.
// @Tags currency
// @Produce  json
// @Success 200 {object} map[string]interface{} "base, rates and timestamp (epoch ms)"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /currency/rates [get]
func (h *currencyHandler) getRates(c *gin.Context) {
	snapshot := h.rateService.GetRates(c.Request.Context())
	c.JSON(http.StatusOK, snapshot)
}

// convert godoc
// @Summary Convert an amount
// @Description Converts an amount between two supported currencies using the current rates
// @Tags currency
// @Produce  json
// @Param   amount query string true "Amount"
// @Param   from query string true "Source currency" Enums(INR, USD, EUR, GBP, AED)
// @Param   to query string true "Target currency" Enums(INR, USD, EUR, GBP, AED)
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid amount or unsupported currency"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /currency/convert [get]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.ConvertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	amount, from, to, ok := parseConversion(c, q.Amount, q.From, q.To)
	if !ok {
		return
	}

	snapshot := h.rateService.GetRates(c.Request.Context())
	converted := h.currencyService.Convert(c.Request.Context(), amount, from, to, snapshot)

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:    amount,
		From:      string(from),
		To:        string(to),
		Converted: converted,
		Formatted: h.currencyService.FormatPrice(converted, to),
		RatesAt:   snapshot.Timestamp(),
	})
}

// priceRange godoc
// @Summary Format a price range
// @Description Converts both bounds of a price range and formats them in the target currency
// @Tags currency
// @Produce  json
// @Param   min query string true "Lower bound"
// @Param   max query string true "Upper bound"
// @Param   base query string true "Currency of the bounds" Enums(INR, USD, EUR, GBP, AED)
// @Param   target query string false "Display currency (defaults to the saved preference)" Enums(INR, USD, EUR, GBP, AED)
// @Success 200 {object} dto.PriceRangeResponse
// @Failure 400 {object} map[string]string "Invalid bounds or unsupported currency"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /currency/price-range [get]
func (h *currencyHandler) priceRange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.PriceRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query for PriceRange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	target := h.currencyService.GetPreferredCurrency(c.Request.Context())
	if q.Target != "" {
		target = domain.CurrencyCode(q.Target)
	}

	low, base, target, ok := parseConversion(c, q.Min, q.Base, string(target))
	if !ok {
		return
	}
	high, err := decimal.NewFromString(q.Max)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max amount"})
		return
	}
	if high.LessThan(low) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max must not be less than min"})
		return
	}

	snapshot := h.rateService.GetRates(c.Request.Context())
	c.JSON(http.StatusOK, dto.PriceRangeResponse{
		Target:    string(target),
		Formatted: h.currencyService.FormatPriceRange(c.Request.Context(), low, high, base, target, snapshot),
	})
}

// getPreference godoc
// @Summary Get the display currency
// @Description Returns the saved display currency, INR when none is saved
// @Tags currency
// @Produce  json
// @Success 200 {object} dto.PreferenceResponse
// @Router /currency/preference [get]
func (h *currencyHandler) getPreference(c *gin.Context) {
	code := h.currencyService.GetPreferredCurrency(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToPreferenceResponse(code))
}

// setPreference godoc
// @Summary Set the display currency
// @Description Saves the display currency
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   preference body dto.SetPreferenceRequest true "Currency code"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 400 {object} map[string]string "Unsupported currency"
// @Failure 500 {object} map[string]string "Failed to save currency preference"
// @Router /currency/preference [put]
func (h *currencyHandler) setPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetPreference", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	code, err := h.currencyService.SetPreferredCurrency(c.Request.Context(), req.CurrencyCode)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to save currency preference")
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferenceResponse(code))
}

// parseConversion validates an amount and a currency pair, writing a 400 when invalid.
func parseConversion(c *gin.Context, rawAmount, rawFrom, rawTo string) (decimal.Decimal, domain.CurrencyCode, domain.CurrencyCode, bool) {
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return decimal.Zero, "", "", false
	}
	from, ok := domain.ParseCurrencyCode(rawFrom)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported currency: " + rawFrom})
		return decimal.Zero, "", "", false
	}
	to, ok := domain.ParseCurrencyCode(rawTo)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported currency: " + rawTo})
		return decimal.Zero, "", "", false
	}
	return amount, from, to, true
}
