package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/grace_blooms_backend/internal/core/ports/services"
	"github.com/SscSPs/grace_blooms_backend/internal/dto"
	"github.com/SscSPs/grace_blooms_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type knowledgeHandler struct {
	knowledgeService portssvc.KnowledgeSvcFacade
}

func registerKnowledgeRoutes(rg *gin.RouterGroup, knowledgeService portssvc.KnowledgeSvcFacade) {
	h := &knowledgeHandler{knowledgeService: knowledgeService}

	knowledge := rg.Group("/knowledge")
	{
		knowledge.POST("", h.storeKnowledge)
		knowledge.GET("", h.listKnowledge)
		knowledge.GET("/:sourceID", h.getKnowledgeBySource)
	}
}

// storeKnowledge godoc
// @Summary Store a knowledge entry
// @Description Inserts a knowledge entry, or updates content and embedding of the entry with the same source id
// @Tags knowledge
// @Accept  json
// @Produce  json
// @Param   entry body dto.StoreKnowledgeRequest true "Knowledge entry"
// @Success 200 {object} dto.StoreKnowledgeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to store knowledge"
// @Security BearerAuth
// @Router /ai/knowledge [post]
func (h *knowledgeHandler) storeKnowledge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StoreKnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for StoreKnowledge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	id, err := h.knowledgeService.StoreKnowledge(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("source_id", req.SourceID)), err, "Failed to store knowledge")
		return
	}

	c.JSON(http.StatusOK, dto.StoreKnowledgeResponse{KnowledgeID: id})
}

// listKnowledge godoc
// @Summary List knowledge entries
// @Description Lists knowledge entries, most recently updated first
// @Tags knowledge
// @Produce  json
// @Param   sourceType query string false "Only entries of this source type"
// @Success 200 {array} dto.KnowledgeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list knowledge"
// @Security BearerAuth
// @Router /ai/knowledge [get]
func (h *knowledgeHandler) listKnowledge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var sourceType *string
	if raw, ok := c.GetQuery("sourceType"); ok && raw != "" {
		sourceType = &raw
	}

	entries, err := h.knowledgeService.GetKnowledge(c.Request.Context(), sourceType)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list knowledge")
		return
	}

	c.JSON(http.StatusOK, dto.ToListKnowledgeResponse(entries))
}

// getKnowledgeBySource godoc
// @Summary Get a knowledge entry by source
// @Description Retrieves the knowledge entry stored for a source id
// @Tags knowledge
// @Produce  json
// @Param   sourceID path string true "Source ID"
// @Success 200 {object} dto.KnowledgeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Knowledge entry not found"
// @Failure 500 {object} map[string]string "Failed to get knowledge"
// @Security BearerAuth
// @Router /ai/knowledge/{sourceID} [get]
func (h *knowledgeHandler) getKnowledgeBySource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sourceID := c.Param("sourceID")

	entry, err := h.knowledgeService.GetKnowledgeBySource(c.Request.Context(), sourceID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("source_id", sourceID)), err, "Failed to get knowledge")
		return
	}

	c.JSON(http.StatusOK, dto.ToKnowledgeResponse(*entry))
}
