package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/grace_blooms_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service error to a status code and writes it.
// An AppError carrying a 4xx code is reported with that code.
// Internal errors are logged and reported with failMsg only.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflicting write", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &appErr) && appErr.Code >= http.StatusBadRequest && appErr.Code < http.StatusInternalServerError:
		logger.Warn("Request rejected", slog.Int("status", appErr.Code), slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}
