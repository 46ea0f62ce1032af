package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/grace_blooms_backend/internal/apperrors"
	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/grace_blooms_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/grace_blooms_backend/internal/core/ports/services"
	"github.com/SscSPs/grace_blooms_backend/internal/dto"
	"github.com/google/uuid"
)

// memoryService implements the MemorySvcFacade interface
type memoryService struct {
	BaseService
	chunkRepo portsrepo.MemoryChunkRepositoryFacade
	settings  portssvc.BotSettingsReaderSvc
}

// MemoryServiceOption is a functional option for configuring the memory service
type MemoryServiceOption func(*memoryService)

// WithMemoryClock overrides the time source used for chunk timestamps.
func WithMemoryClock(now func() time.Time) MemoryServiceOption {
	return func(s *memoryService) {
		s.Now = now
	}
}

// NewMemoryService creates a memory service. settings supplies the per-user cap;
// a nil reader means the default settings apply.
func NewMemoryService(repo portsrepo.MemoryChunkRepositoryFacade, settings portssvc.BotSettingsReaderSvc, options ...MemoryServiceOption) portssvc.MemorySvcFacade {
	svc := &memoryService{
		chunkRepo: repo,
		settings:  settings,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.MemorySvcFacade = (*memoryService)(nil)

// StoreMemory enforces the cap before inserting: when the user already holds
// cap or more chunks, exactly one (the oldest) is deleted. Read, evict and insert
// are separate store calls, so concurrent callers can leave the user one over
// the cap until a later insert evicts again.
func (s *memoryService) StoreMemory(ctx context.Context, userID string, req dto.StoreMemoryRequest) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("%w: user ID is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Content) == "" {
		return "", fmt.Errorf("%w: memory content cannot be empty", apperrors.ErrValidation)
	}

	limit := s.memoryCap(ctx)

	existing, err := s.chunkRepo.ListChunksByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list memory chunks", slog.String("user_id", userID))
		return "", fmt.Errorf("failed to list memory chunks in service: %w", err)
	}

	if len(existing) >= limit {
		oldest := existing[0]
		for _, chunk := range existing[1:] {
			if chunk.OlderThan(oldest) {
				oldest = chunk
			}
		}
		if err := s.chunkRepo.DeleteChunk(ctx, oldest.ChunkID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to evict oldest memory chunk", slog.String("chunk_id", oldest.ChunkID))
				return "", fmt.Errorf("failed to evict memory chunk in service: %w", err)
			}
			// Another writer evicted it first.
			s.LogDebug(ctx, "Oldest memory chunk already gone", slog.String("chunk_id", oldest.ChunkID))
		} else {
			s.LogDebug(ctx, "Evicted oldest memory chunk",
				slog.String("user_id", userID),
				slog.String("chunk_id", oldest.ChunkID),
				slog.Int("cap", limit))
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate chunk id: %w", err)
	}

	chunk := domain.MemoryChunk{
		ChunkID:   id.String(),
		UserID:    userID,
		Content:   req.Content,
		Category:  req.Category,
		Embedding: req.Embedding,
		CreatedAt: s.now(),
	}
	if err := s.chunkRepo.SaveChunk(ctx, chunk); err != nil {
		s.LogError(ctx, err, "Failed to save memory chunk", slog.String("user_id", userID))
		return "", fmt.Errorf("failed to save memory chunk in service: %w", err)
	}

	s.LogInfo(ctx, "Memory chunk stored",
		slog.String("user_id", userID),
		slog.String("chunk_id", chunk.ChunkID),
		slog.String("category", chunk.Category))
	return chunk.ChunkID, nil
}

func (s *memoryService) GetUserMemory(ctx context.Context, userID string, limit int) ([]domain.MemoryChunk, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", apperrors.ErrValidation)
	}
	if limit <= 0 {
		limit = domain.DefaultMemoryLimit
	}

	chunks, err := s.chunkRepo.ListRecentChunksByUser(ctx, userID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent memory chunks", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user memory in service: %w", err)
	}
	if chunks == nil {
		return []domain.MemoryChunk{}, nil
	}
	return chunks, nil
}

func (s *memoryService) ClearUserMemory(ctx context.Context, userID string) (int, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, fmt.Errorf("%w: user ID is required", apperrors.ErrValidation)
	}

	deleted, err := s.chunkRepo.DeleteChunksByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to clear memory", slog.String("user_id", userID))
		return 0, fmt.Errorf("failed to clear user memory in service: %w", err)
	}

	s.LogInfo(ctx, "User memory cleared", slog.String("user_id", userID), slog.Int("deleted", deleted))
	return deleted, nil
}

// memoryCap reads the configured cap, degrading to the default when settings are unavailable.
func (s *memoryService) memoryCap(ctx context.Context) int {
	if s.settings == nil {
		return domain.DefaultBotSettings().MemoryCap()
	}
	settings, err := s.settings.GetBotSettings(ctx)
	if err != nil {
		s.LogWarn(ctx, err, "Using default memory cap")
		return domain.DefaultBotSettings().MemoryCap()
	}
	return settings.MemoryCap()
}
