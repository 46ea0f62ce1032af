package models

import "time"

// MemoryChunk is the memory_chunks row.
type MemoryChunk struct {
	ChunkID   string    `json:"chunkID"` // Primary Key (UUIDv7)
	UserID    string    `json:"userID"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Embedding []float32 `json:"embedding"` // real[], NULL when absent
	CreatedAt time.Time `json:"createdAt"`
}
