package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestToModelKnowledgeEntry_CreatedAtFollowsUpdatedAt(t *testing.T) {
	at := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	m := ToModelKnowledgeEntry(domain.KnowledgeEntry{KnowledgeID: "k", SourceID: "p1", UpdatedAt: at})

	assert.Equal(t, at, m.CreatedAt)
	assert.Equal(t, at, m.UpdatedAt)
}

func TestBotSettingsMapping_KeepsKey(t *testing.T) {
	m := ToModelBotSettings(domain.BotSettingsKey, domain.DefaultBotSettings())

	assert.Equal(t, "bot", m.SettingsKey)
	assert.Equal(t, domain.DefaultBotSettings(), ToDomainBotSettings(m))
}
