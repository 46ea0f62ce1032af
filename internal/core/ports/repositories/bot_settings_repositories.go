package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
)

// BotSettingsReader defines read operations for keyed settings rows
type BotSettingsReader interface {
	// FindBotSettings returns apperrors.ErrNotFound when the row has never been written.
	FindBotSettings(ctx context.Context, key string) (*domain.BotSettings, error)
}

// BotSettingsWriter defines write operations for keyed settings rows
type BotSettingsWriter interface {
	// UpsertBotSettings patches the row for key, or inserts the defaults overlaid
	// with patch when no row exists. It returns the stored settings.
	UpsertBotSettings(ctx context.Context, key string, patch domain.BotSettingsPatch, updatedAt time.Time) (*domain.BotSettings, error)
}

// BotSettingsRepositoryFacade combines all settings repository interfaces
type BotSettingsRepositoryFacade interface {
	BotSettingsReader
	BotSettingsWriter
}
