package dto

import (
	"time"

	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
)

// StoreMemoryRequest defines the structure for storing one memory chunk.
type StoreMemoryRequest struct {
	Content   string    `json:"content" binding:"required"`
	Category  string    `json:"category" binding:"required,max=64"`
	Embedding []float32 `json:"embedding,omitempty"`
}

// StoreMemoryResponse returns the id assigned to a new chunk.
type StoreMemoryResponse struct {
	ChunkID string `json:"chunkID"`
}

// ClearMemoryResponse reports how many chunks a clear removed.
type ClearMemoryResponse struct {
	Deleted int `json:"deleted"`
}

// MemoryChunkResponse defines the API shape of a memory chunk.
type MemoryChunkResponse struct {
	ChunkID   string    `json:"chunkID"`
	UserID    string    `json:"userID"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Embedding []float32 `json:"embedding,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToMemoryChunkResponse converts a domain.MemoryChunk to its response DTO
func ToMemoryChunkResponse(chunk domain.MemoryChunk) MemoryChunkResponse {
	return MemoryChunkResponse{
		ChunkID:   chunk.ChunkID,
		UserID:    chunk.UserID,
		Content:   chunk.Content,
		Category:  chunk.Category,
		Embedding: chunk.Embedding,
		CreatedAt: chunk.CreatedAt,
	}
}

// ToListMemoryChunkResponse converts chunks preserving order; never returns nil.
func ToListMemoryChunkResponse(chunks []domain.MemoryChunk) []MemoryChunkResponse {
	responses := make([]MemoryChunkResponse, len(chunks))
	for i, chunk := range chunks {
		responses[i] = ToMemoryChunkResponse(chunk)
	}
	return responses
}
