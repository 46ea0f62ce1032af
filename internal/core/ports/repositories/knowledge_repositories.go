package repositories

import (
	"context"

	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
)

// KnowledgeReader defines read operations for the global knowledge base
type KnowledgeReader interface {
	// FindKnowledgeBySourceID returns apperrors.ErrNotFound when no entry exists.
	FindKnowledgeBySourceID(ctx context.Context, sourceID string) (*domain.KnowledgeEntry, error)

	// ListKnowledge returns all entries, optionally restricted to one source type.
	ListKnowledge(ctx context.Context, sourceType *string) ([]domain.KnowledgeEntry, error)
}

// KnowledgeWriter defines write operations for the global knowledge base
type KnowledgeWriter interface {
	// UpsertKnowledge inserts entry, or patches content, embedding and updatedAt of
	// the entry that already has entry.SourceID. It returns the stored id and whether
	// a new row was created.
	UpsertKnowledge(ctx context.Context, entry domain.KnowledgeEntry) (string, bool, error)
}

// KnowledgeRepositoryFacade combines all knowledge repository interfaces
type KnowledgeRepositoryFacade interface {
	KnowledgeReader
	KnowledgeWriter
}
