package models

import "time"

// BotSettings is the bot_settings row, keyed by SettingsKey.
type BotSettings struct {
	SettingsKey     string    `json:"settingsKey"` // Primary Key
	Enabled         bool      `json:"enabled"`
	SystemPrompt    string    `json:"systemPrompt"`
	Tone            string    `json:"tone"`
	MaxMemoryChunks int       `json:"maxMemoryChunks"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
