package repositories

import (
	"context"

	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
)

// MemoryChunkReader defines read operations for per-user memory chunks
type MemoryChunkReader interface {
	// ListChunksByUser returns every chunk owned by userID, in no particular order.
	ListChunksByUser(ctx context.Context, userID string) ([]domain.MemoryChunk, error)

	// ListRecentChunksByUser returns up to limit chunks for userID, newest first.
	ListRecentChunksByUser(ctx context.Context, userID string, limit int) ([]domain.MemoryChunk, error)
}

// MemoryChunkWriter defines write operations for per-user memory chunks
type MemoryChunkWriter interface {
	// SaveChunk inserts a new chunk.
	SaveChunk(ctx context.Context, chunk domain.MemoryChunk) error

	// DeleteChunk removes a single chunk by id.
	DeleteChunk(ctx context.Context, chunkID string) error

	// DeleteChunksByUser removes all chunks owned by userID and returns how many were removed.
	DeleteChunksByUser(ctx context.Context, userID string) (int, error)
}

// MemoryChunkRepositoryFacade combines all memory chunk repository interfaces
type MemoryChunkRepositoryFacade interface {
	MemoryChunkReader
	MemoryChunkWriter
}
