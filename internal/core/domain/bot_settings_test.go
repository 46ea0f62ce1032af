package domain_test

import (
	"testing"

	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBotSettingsPatch_Apply(t *testing.T) {
	tone := "warm"
	limit := 10

	got := domain.BotSettingsPatch{Tone: &tone, MaxMemoryChunks: &limit}.Apply(domain.DefaultBotSettings())

	assert.True(t, got.Enabled)
	assert.Empty(t, got.SystemPrompt)
	assert.Equal(t, "warm", got.Tone)
	assert.Equal(t, 10, got.MaxMemoryChunks)
}

func TestBotSettings_MemoryCap(t *testing.T) {
	assert.Equal(t, 50, domain.DefaultBotSettings().MemoryCap())
	assert.Equal(t, 50, domain.BotSettings{MaxMemoryChunks: 0}.MemoryCap())
	assert.Equal(t, 3, domain.BotSettings{MaxMemoryChunks: 3}.MemoryCap())
}

func TestMemoryChunk_OlderThan(t *testing.T) {
	a := domain.MemoryChunk{ChunkID: "a"}
	b := domain.MemoryChunk{ChunkID: "b"}
	assert.True(t, a.OlderThan(b))
	assert.False(t, b.OlderThan(a))

	b.CreatedAt = a.CreatedAt.Add(-1)
	assert.True(t, b.OlderThan(a))
}
