// Package memory provides map-backed repositories for local development and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/grace_blooms_backend/internal/apperrors"
	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/grace_blooms_backend/internal/core/ports/repositories"
)

// Store keeps memory chunks, knowledge entries and settings in process memory.
// It satisfies every repository facade, so one Store can back a whole RepositoryProvider.
type Store struct {
	mu        sync.RWMutex
	chunks    map[string]domain.MemoryChunk
	knowledge map[string]domain.KnowledgeEntry // keyed by SourceID
	settings  map[string]domain.BotSettings
}

var (
	_ portsrepo.MemoryChunkRepositoryFacade = (*Store)(nil)
	_ portsrepo.KnowledgeRepositoryFacade   = (*Store)(nil)
	_ portsrepo.BotSettingsRepositoryFacade = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		chunks:    make(map[string]domain.MemoryChunk),
		knowledge: make(map[string]domain.KnowledgeEntry),
		settings:  make(map[string]domain.BotSettings),
	}
}

// NewRepositoryProvider wires a single Store into every repository slot.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	store := NewStore()
	return portsrepo.RepositoryProvider{
		MemoryChunkRepo: store,
		KnowledgeRepo:   store,
		BotSettingsRepo: store,
	}
}

// Memory chunk methods

func (s *Store) ListChunksByUser(ctx context.Context, userID string) ([]domain.MemoryChunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.MemoryChunk, 0)
	for _, chunk := range s.chunks {
		if chunk.UserID == userID {
			out = append(out, chunk)
		}
	}
	return out, nil
}

func (s *Store) ListRecentChunksByUser(ctx context.Context, userID string, limit int) ([]domain.MemoryChunk, error) {
	chunks, err := s.ListChunksByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(chunks, func(i, j int) bool {
		return chunks[j].OlderThan(chunks[i])
	})
	if limit > 0 && len(chunks) > limit {
		chunks = chunks[:limit]
	}
	return chunks, nil
}

func (s *Store) SaveChunk(ctx context.Context, chunk domain.MemoryChunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.chunks[chunk.ChunkID]; exists {
		return apperrors.ErrDuplicate
	}
	s.chunks[chunk.ChunkID] = chunk
	return nil
}

func (s *Store) DeleteChunk(ctx context.Context, chunkID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.chunks[chunkID]; !exists {
		return apperrors.NewNotFoundError("memory chunk " + chunkID + " not found")
	}
	delete(s.chunks, chunkID)
	return nil
}

func (s *Store) DeleteChunksByUser(ctx context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for id, chunk := range s.chunks {
		if chunk.UserID == userID {
			delete(s.chunks, id)
			deleted++
		}
	}
	return deleted, nil
}

// Knowledge methods

func (s *Store) FindKnowledgeBySourceID(ctx context.Context, sourceID string) (*domain.KnowledgeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.knowledge[sourceID]
	if !exists {
		return nil, apperrors.NewNotFoundError("knowledge for source " + sourceID + " not found")
	}
	return &entry, nil
}

// ListKnowledge returns entries most recently updated first.
func (s *Store) ListKnowledge(ctx context.Context, sourceType *string) ([]domain.KnowledgeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.KnowledgeEntry, 0, len(s.knowledge))
	for _, entry := range s.knowledge {
		if sourceType != nil && entry.SourceType != *sourceType {
			continue
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].SourceID < out[j].SourceID
	})
	return out, nil
}

func (s *Store) UpsertKnowledge(ctx context.Context, entry domain.KnowledgeEntry) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, exists := s.knowledge[entry.SourceID]; exists {
		existing.Content = entry.Content
		existing.Embedding = entry.Embedding
		existing.UpdatedAt = entry.UpdatedAt
		s.knowledge[entry.SourceID] = existing
		return existing.KnowledgeID, false, nil
	}

	s.knowledge[entry.SourceID] = entry
	return entry.KnowledgeID, true, nil
}

// Settings methods

func (s *Store) FindBotSettings(ctx context.Context, key string) (*domain.BotSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings, exists := s.settings[key]
	if !exists {
		return nil, apperrors.NewNotFoundError("settings " + key + " not found")
	}
	return &settings, nil
}

func (s *Store) UpsertBotSettings(ctx context.Context, key string, patch domain.BotSettingsPatch, updatedAt time.Time) (*domain.BotSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.settings[key]
	if !exists {
		current = domain.DefaultBotSettings()
	}
	updated := patch.Apply(current)
	updated.UpdatedAt = updatedAt
	s.settings[key] = updated
	return &updated, nil
}
