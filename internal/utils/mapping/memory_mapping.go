package mapping

import (
	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	"github.com/SscSPs/grace_blooms_backend/internal/models"
)

// ToModelMemoryChunk converts a domain MemoryChunk to a model MemoryChunk
func ToModelMemoryChunk(d domain.MemoryChunk) models.MemoryChunk {
	return models.MemoryChunk{
		ChunkID:   d.ChunkID,
		UserID:    d.UserID,
		Content:   d.Content,
		Category:  d.Category,
		Embedding: d.Embedding,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainMemoryChunk converts a model MemoryChunk to a domain MemoryChunk
func ToDomainMemoryChunk(m models.MemoryChunk) domain.MemoryChunk {
	return domain.MemoryChunk{
		ChunkID:   m.ChunkID,
		UserID:    m.UserID,
		Content:   m.Content,
		Category:  m.Category,
		Embedding: m.Embedding,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainMemoryChunkSlice converts a slice of model MemoryChunks to domain MemoryChunks
func ToDomainMemoryChunkSlice(ms []models.MemoryChunk) []domain.MemoryChunk {
	ds := make([]domain.MemoryChunk, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMemoryChunk(m)
	}
	return ds
}
