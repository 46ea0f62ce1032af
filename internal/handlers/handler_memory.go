package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/grace_blooms_backend/internal/core/ports/services"
	"github.com/SscSPs/grace_blooms_backend/internal/dto"
	"github.com/SscSPs/grace_blooms_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// memoryHandler handles HTTP requests for per-user assistant memory.
type memoryHandler struct {
	memoryService portssvc.MemorySvcFacade
}

func newMemoryHandler(ms portssvc.MemorySvcFacade) *memoryHandler {
	return &memoryHandler{memoryService: ms}
}

func registerMemoryRoutes(rg *gin.RouterGroup, memoryService portssvc.MemorySvcFacade) {
	h := newMemoryHandler(memoryService)

	memory := rg.Group("/memory")
	{
		memory.POST("/:userID", h.storeMemory)
		memory.GET("/:userID", h.getUserMemory)
		memory.DELETE("/:userID", h.clearUserMemory)
	}
}

// storeMemory godoc
// @Summary Store a memory chunk
// @Description Stores a memory chunk for a user, evicting the user's oldest chunk when the configured cap is reached
// @Tags memory
// @Accept  json
// @Produce  json
// @Param   userID path string true "User ID"
// @Param   chunk body dto.StoreMemoryRequest true "Memory chunk"
// @Success 201 {object} dto.StoreMemoryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to store memory"
// @Security BearerAuth
// @Router /ai/memory/{userID} [post]
func (h *memoryHandler) storeMemory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	var req dto.StoreMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for StoreMemory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	chunkID, err := h.memoryService.StoreMemory(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("user_id", userID)), err, "Failed to store memory")
		return
	}

	c.JSON(http.StatusCreated, dto.StoreMemoryResponse{ChunkID: chunkID})
}

// getUserMemory godoc
// @Summary List a user's memory
// @Description Lists a user's memory chunks, newest first
// @Tags memory
// @Produce  json
// @Param   userID path string true "User ID"
// @Param   limit query int false "Maximum number of chunks (default 20)" minimum(1)
// @Success 200 {array} dto.MemoryChunkResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve memory"
// @Security BearerAuth
// @Router /ai/memory/{userID} [get]
func (h *memoryHandler) getUserMemory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	chunks, err := h.memoryService.GetUserMemory(c.Request.Context(), userID, limit)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("user_id", userID)), err, "Failed to retrieve memory")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMemoryChunkResponse(chunks))
}

// clearUserMemory godoc
// @Summary Clear a user's memory
// @Description Deletes every memory chunk of a user
// @Tags memory
// @Produce  json
// @Param   userID path string true "User ID"
// @Success 200 {object} dto.ClearMemoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to clear memory"
// @Security BearerAuth
// @Router /ai/memory/{userID} [delete]
func (h *memoryHandler) clearUserMemory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	deleted, err := h.memoryService.ClearUserMemory(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("user_id", userID)), err, "Failed to clear memory")
		return
	}

	c.JSON(http.StatusOK, dto.ClearMemoryResponse{Deleted: deleted})
}
