package domain

import "time"

// DefaultMemoryLimit is the number of chunks returned when a caller gives no limit.
const DefaultMemoryLimit = 20

// MemoryChunk is one unit of persisted conversational memory for a single end user.
type MemoryChunk struct {
	ChunkID   string    `json:"chunkID"` // UUIDv7, so lexical order follows insertion order
	UserID    string    `json:"userID"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Embedding []float32 `json:"embedding,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// OlderThan orders chunks by creation time, then by id for identical timestamps.
func (c MemoryChunk) OlderThan(other MemoryChunk) bool {
	if !c.CreatedAt.Equal(other.CreatedAt) {
		return c.CreatedAt.Before(other.CreatedAt)
	}
	return c.ChunkID < other.ChunkID
}
