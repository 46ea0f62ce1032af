package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/grace_blooms_backend/internal/apperrors"
	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/grace_blooms_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/grace_blooms_backend/internal/core/ports/services"
	"github.com/SscSPs/grace_blooms_backend/internal/dto"
	"github.com/google/uuid"
)

type knowledgeService struct {
	BaseService
	knowledgeRepo portsrepo.KnowledgeRepositoryFacade
}

func NewKnowledgeService(repo portsrepo.KnowledgeRepositoryFacade) portssvc.KnowledgeSvcFacade {
	return &knowledgeService{knowledgeRepo: repo}
}

var _ portssvc.KnowledgeSvcFacade = (*knowledgeService)(nil)

func (s *knowledgeService) StoreKnowledge(ctx context.Context, req dto.StoreKnowledgeRequest) (string, error) {
	if strings.TrimSpace(req.SourceID) == "" {
		return "", fmt.Errorf("%w: sourceID is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.SourceType) == "" {
		return "", fmt.Errorf("%w: sourceType is required", apperrors.ErrValidation)
	}

	entry := domain.KnowledgeEntry{
		KnowledgeID: uuid.NewString(),
		SourceType:  req.SourceType,
		SourceID:    req.SourceID,
		Content:     req.Content,
		Embedding:   req.Embedding,
		UpdatedAt:   s.now(),
	}

	id, created, err := s.knowledgeRepo.UpsertKnowledge(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to store knowledge", slog.String("source_id", req.SourceID))
		return "", fmt.Errorf("failed to store knowledge in service: %w", err)
	}

	s.LogInfo(ctx, "Knowledge stored",
		slog.String("knowledge_id", id),
		slog.String("source_id", req.SourceID),
		slog.Bool("created", created))
	return id, nil
}

func (s *knowledgeService) GetKnowledge(ctx context.Context, sourceType *string) ([]domain.KnowledgeEntry, error) {
	if sourceType != nil && strings.TrimSpace(*sourceType) == "" {
		sourceType = nil
	}

	entries, err := s.knowledgeRepo.ListKnowledge(ctx, sourceType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list knowledge")
		return nil, fmt.Errorf("failed to get knowledge in service: %w", err)
	}
	if entries == nil {
		return []domain.KnowledgeEntry{}, nil
	}
	return entries, nil
}

func (s *knowledgeService) GetKnowledgeBySource(ctx context.Context, sourceID string) (*domain.KnowledgeEntry, error) {
	if strings.TrimSpace(sourceID) == "" {
		return nil, fmt.Errorf("%w: sourceID is required", apperrors.ErrValidation)
	}

	entry, err := s.knowledgeRepo.FindKnowledgeBySourceID(ctx, sourceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Knowledge not found", slog.String("source_id", sourceID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get knowledge", slog.String("source_id", sourceID))
		return nil, fmt.Errorf("failed to get knowledge in service: %w", err)
	}
	return entry, nil
}
