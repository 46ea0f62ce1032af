package mapping

import (
	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	"github.com/SscSPs/grace_blooms_backend/internal/models"
)

// ToModelBotSettings converts domain settings to the row stored under key
func ToModelBotSettings(key string, d domain.BotSettings) models.BotSettings {
	return models.BotSettings{
		SettingsKey:     key,
		Enabled:         d.Enabled,
		SystemPrompt:    d.SystemPrompt,
		Tone:            d.Tone,
		MaxMemoryChunks: d.MaxMemoryChunks,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ToDomainBotSettings converts a settings row to domain settings
func ToDomainBotSettings(m models.BotSettings) domain.BotSettings {
	return domain.BotSettings{
		Enabled:         m.Enabled,
		SystemPrompt:    m.SystemPrompt,
		Tone:            m.Tone,
		MaxMemoryChunks: m.MaxMemoryChunks,
		UpdatedAt:       m.UpdatedAt,
	}
}
