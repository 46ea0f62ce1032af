package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/grace_blooms_backend/internal/core/ports/services"
	"github.com/SscSPs/grace_blooms_backend/internal/dto"
	"github.com/SscSPs/grace_blooms_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type botSettingsHandler struct {
	settingsService portssvc.BotSettingsSvcFacade
}

func registerBotSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.BotSettingsSvcFacade) {
	h := &botSettingsHandler{settingsService: settingsService}

	rg.GET("/settings", h.getSettings)
	rg.PUT("/settings", h.updateSettings)
}

// getSettings godoc
// @Summary Get bot settings
// @Description Retrieves the assistant settings, or the defaults when none were saved
// @Tags settings
// @Produce  json
// @Success 200 {object} domain.BotSettings
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load bot settings"
// @Security BearerAuth
// @Router /ai/settings [get]
func (h *botSettingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetBotSettings(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load bot settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// updateSettings godoc
// @Summary Update bot settings
// @Description Applies the provided fields to the assistant settings
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateBotSettingsRequest true "Fields to change"
// @Success 200 {object} domain.BotSettings
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to update bot settings"
// @Security BearerAuth
// @Router /ai/settings [put]
func (h *botSettingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateBotSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBotSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if callerID, ok := middleware.GetUserIDFromContext(c); ok {
		logger = logger.With(slog.String("updated_by", callerID))
	}

	settings, err := h.settingsService.UpdateBotSettings(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update bot settings")
		return
	}

	logger.Info("Bot settings updated via API")
	c.JSON(http.StatusOK, settings)
}
