package domain

import "time"

// KnowledgeEntry is a global RAG document, unique by SourceID.
type KnowledgeEntry struct {
	KnowledgeID string    `json:"knowledgeID"`
	SourceType  string    `json:"sourceType"` // e.g. "product", "faq"
	SourceID    string    `json:"sourceID"`
	Content     string    `json:"content"`
	Embedding   []float32 `json:"embedding,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
