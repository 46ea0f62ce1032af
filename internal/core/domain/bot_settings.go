package domain

import "time"

// BotSettingsKey identifies the singleton settings record.
const BotSettingsKey = "bot"

const (
	DefaultBotTone         = "friendly"
	DefaultMaxMemoryChunks = 50
)

// BotSettings configures the storefront assistant and its memory cap.
type BotSettings struct {
	Enabled         bool      `json:"enabled"`
	SystemPrompt    string    `json:"systemPrompt"`
	Tone            string    `json:"tone"`
	MaxMemoryChunks int       `json:"maxMemoryChunks"`
	UpdatedAt       time.Time `json:"updatedAt,omitzero"`
}

// DefaultBotSettings is what readers see before any settings row exists.
func DefaultBotSettings() BotSettings {
	return BotSettings{
		Enabled:         true,
		SystemPrompt:    "",
		Tone:            DefaultBotTone,
		MaxMemoryChunks: DefaultMaxMemoryChunks,
	}
}

// MemoryCap returns MaxMemoryChunks, falling back to the default for non-positive values.
func (s BotSettings) MemoryCap() int {
	if s.MaxMemoryChunks <= 0 {
		return DefaultMaxMemoryChunks
	}
	return s.MaxMemoryChunks
}

// BotSettingsPatch carries the fields an update call wants to change.
type BotSettingsPatch struct {
	Enabled         *bool
	SystemPrompt    *string
	Tone            *string
	MaxMemoryChunks *int
}

// Apply returns s with every non-nil patch field overwritten.
func (p BotSettingsPatch) Apply(s BotSettings) BotSettings {
	if p.Enabled != nil {
		s.Enabled = *p.Enabled
	}
	if p.SystemPrompt != nil {
		s.SystemPrompt = *p.SystemPrompt
	}
	if p.Tone != nil {
		s.Tone = *p.Tone
	}
	if p.MaxMemoryChunks != nil {
		s.MaxMemoryChunks = *p.MaxMemoryChunks
	}
	return s
}
