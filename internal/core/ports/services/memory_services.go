package services

import (
	"context"

	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	"github.com/SscSPs/grace_blooms_backend/internal/dto"
)

// MemoryReaderSvc defines read operations for per-user assistant memory
type MemoryReaderSvc interface {
	// GetUserMemory returns up to limit chunks, newest first. limit <= 0 means the default.
	GetUserMemory(ctx context.Context, userID string, limit int) ([]domain.MemoryChunk, error)
}

// MemoryWriterSvc defines write operations for per-user assistant memory
type MemoryWriterSvc interface {
	// StoreMemory inserts a chunk, evicting the oldest one first when the user is at the cap.
	StoreMemory(ctx context.Context, userID string, req dto.StoreMemoryRequest) (string, error)

	// ClearUserMemory deletes every chunk owned by userID and returns the count.
	ClearUserMemory(ctx context.Context, userID string) (int, error)
}

// MemorySvcFacade combines all memory-related service interfaces
type MemorySvcFacade interface {
	MemoryReaderSvc
	MemoryWriterSvc
}

// KnowledgeSvcFacade defines operations on the global knowledge base
type KnowledgeSvcFacade interface {
	// StoreKnowledge upserts by source id and returns the entry id.
	StoreKnowledge(ctx context.Context, req dto.StoreKnowledgeRequest) (string, error)

	// GetKnowledge lists entries, optionally filtered by source type.
	GetKnowledge(ctx context.Context, sourceType *string) ([]domain.KnowledgeEntry, error)

	// GetKnowledgeBySource returns the entry for sourceID or apperrors.ErrNotFound.
	GetKnowledgeBySource(ctx context.Context, sourceID string) (*domain.KnowledgeEntry, error)
}

// BotSettingsReaderSvc defines read access to the assistant settings singleton
type BotSettingsReaderSvc interface {
	// GetBotSettings returns the stored settings or the defaults when none exist.
	GetBotSettings(ctx context.Context) (domain.BotSettings, error)
}

// BotSettingsWriterSvc defines write access to the assistant settings singleton
type BotSettingsWriterSvc interface {
	// UpdateBotSettings patches the singleton, creating it with defaults on first use.
	UpdateBotSettings(ctx context.Context, req dto.UpdateBotSettingsRequest) (domain.BotSettings, error)
}

// BotSettingsSvcFacade combines all settings-related service interfaces
type BotSettingsSvcFacade interface {
	BotSettingsReaderSvc
	BotSettingsWriterSvc
}
