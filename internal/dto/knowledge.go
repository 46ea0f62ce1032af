package dto

import (
	"time"

	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
)

// StoreKnowledgeRequest defines the structure for upserting a knowledge entry.
type StoreKnowledgeRequest struct {
	SourceType string    `json:"sourceType" binding:"required,max=64"`
	SourceID   string    `json:"sourceID" binding:"required"`
	Content    string    `json:"content" binding:"required"`
	Embedding  []float32 `json:"embedding,omitempty"`
}

// StoreKnowledgeResponse returns the id of the stored entry.
type StoreKnowledgeResponse struct {
	KnowledgeID string `json:"knowledgeID"`
}

// KnowledgeResponse defines the API shape of a knowledge entry.
type KnowledgeResponse struct {
	KnowledgeID string    `json:"knowledgeID"`
	SourceType  string    `json:"sourceType"`
	SourceID    string    `json:"sourceID"`
	Content     string    `json:"content"`
	Embedding   []float32 `json:"embedding,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToKnowledgeResponse converts a domain entry to its API shape.
func ToKnowledgeResponse(e domain.KnowledgeEntry) KnowledgeResponse {
	return KnowledgeResponse{
		KnowledgeID: e.KnowledgeID,
		SourceType:  e.SourceType,
		SourceID:    e.SourceID,
		Content:     e.Content,
		Embedding:   e.Embedding,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToListKnowledgeResponse converts entries preserving order; never returns nil.
func ToListKnowledgeResponse(entries []domain.KnowledgeEntry) []KnowledgeResponse {
	responses := make([]KnowledgeResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToKnowledgeResponse(e)
	}
	return responses
}
