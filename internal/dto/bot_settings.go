package dto

import "github.com/SscSPs/grace_blooms_backend/internal/core/domain"

// UpdateBotSettingsRequest patches the assistant settings. Omitted fields are left unchanged.
type UpdateBotSettingsRequest struct {
	Enabled         *bool   `json:"enabled"`
	SystemPrompt    *string `json:"systemPrompt"`
	Tone            *string `json:"tone" binding:"omitempty,max=32"`
	MaxMemoryChunks *int    `json:"maxMemoryChunks" binding:"omitempty,min=1"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateBotSettingsRequest) ToPatch() domain.BotSettingsPatch {
	return domain.BotSettingsPatch{
		Enabled:         r.Enabled,
		SystemPrompt:    r.SystemPrompt,
		Tone:            r.Tone,
		MaxMemoryChunks: r.MaxMemoryChunks,
	}
}
