package handlers

import (
	"sync"

	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by request DTOs:
//
//	supported_currency: value parses to one of domain.SupportedCurrencies
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("supported_currency", func(fl validator.FieldLevel) bool {
			_, ok := domain.ParseCurrencyCode(fl.Field().String())
			return ok
		})
	})
}
