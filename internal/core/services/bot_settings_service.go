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
)

type botSettingsService struct {
	BaseService
	settingsRepo portsrepo.BotSettingsRepositoryFacade
}

// NewBotSettingsService creates the service for the assistant settings singleton.
func NewBotSettingsService(repo portsrepo.BotSettingsRepositoryFacade) portssvc.BotSettingsSvcFacade {
	return &botSettingsService{settingsRepo: repo}
}

var _ portssvc.BotSettingsSvcFacade = (*botSettingsService)(nil)

// GetBotSettings never reports absence as an error: a missing row reads as the defaults.
func (s *botSettingsService) GetBotSettings(ctx context.Context) (domain.BotSettings, error) {
	settings, err := s.settingsRepo.FindBotSettings(ctx, domain.BotSettingsKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.DefaultBotSettings(), nil
		}
		s.LogError(ctx, err, "Failed to load bot settings")
		return domain.DefaultBotSettings(), fmt.Errorf("failed to get bot settings in service: %w", err)
	}
	return *settings, nil
}

func (s *botSettingsService) UpdateBotSettings(ctx context.Context, req dto.UpdateBotSettingsRequest) (domain.BotSettings, error) {
	if req.MaxMemoryChunks != nil && *req.MaxMemoryChunks < 1 {
		return domain.BotSettings{}, apperrors.NewValidationError("maxMemoryChunks must be at least 1")
	}
	if req.Tone != nil && strings.TrimSpace(*req.Tone) == "" {
		return domain.BotSettings{}, apperrors.NewValidationError("tone cannot be blank")
	}

	updated, err := s.settingsRepo.UpsertBotSettings(ctx, domain.BotSettingsKey, req.ToPatch(), s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to update bot settings")
		return domain.BotSettings{}, fmt.Errorf("failed to update bot settings in service: %w", err)
	}

	s.LogInfo(ctx, "Bot settings updated",
		slog.Bool("enabled", updated.Enabled),
		slog.String("tone", updated.Tone),
		slog.Int("max_memory_chunks", updated.MaxMemoryChunks))
	return *updated, nil
}
