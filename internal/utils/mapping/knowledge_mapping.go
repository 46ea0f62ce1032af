package mapping

import (
	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	"github.com/SscSPs/grace_blooms_backend/internal/models"
)

// ToModelKnowledgeEntry converts a domain KnowledgeEntry to a model row.
// A new row's CreatedAt is its first UpdatedAt.
func ToModelKnowledgeEntry(d domain.KnowledgeEntry) models.KnowledgeEntry {
	return models.KnowledgeEntry{
		KnowledgeID: d.KnowledgeID,
		SourceType:  d.SourceType,
		SourceID:    d.SourceID,
		Content:     d.Content,
		Embedding:   d.Embedding,
		CreatedAt:   d.UpdatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func ToDomainKnowledgeEntry(m models.KnowledgeEntry) domain.KnowledgeEntry {
	return domain.KnowledgeEntry{
		KnowledgeID: m.KnowledgeID,
		SourceType:  m.SourceType,
		SourceID:    m.SourceID,
		Content:     m.Content,
		Embedding:   m.Embedding,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToDomainKnowledgeEntrySlice(ms []models.KnowledgeEntry) []domain.KnowledgeEntry {
	ds := make([]domain.KnowledgeEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainKnowledgeEntry(m)
	}
	return ds
}
