package models

import "time"

// KnowledgeEntry is the knowledge_entries row. SourceID carries a unique constraint.
type KnowledgeEntry struct {
	KnowledgeID string    `json:"knowledgeID"` // Primary Key (UUID)
	SourceType  string    `json:"sourceType"`
	SourceID    string    `json:"sourceID"`
	Content     string    `json:"content"`
	Embedding   []float32 `json:"embedding"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
