package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/grace_blooms_backend/internal/apperrors"
	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/grace_blooms_backend/internal/core/ports/repositories"
	"github.com/SscSPs/grace_blooms_backend/internal/models"
	"github.com/SscSPs/grace_blooms_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBotSettingsRepository struct {
	BaseRepository
}

func newPgxBotSettingsRepository(pool *pgxpool.Pool) portsrepo.BotSettingsRepositoryFacade {
	return &PgxBotSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BotSettingsRepositoryFacade = (*PgxBotSettingsRepository)(nil)

func (r *PgxBotSettingsRepository) FindBotSettings(ctx context.Context, key string) (*domain.BotSettings, error) {
	return findBotSettings(ctx, r.Pool.QueryRow, key, false)
}

// UpsertBotSettings locks the row, overlays patch and writes it back. A missing
// row is created from the defaults overlaid with patch.
func (r *PgxBotSettingsRepository) UpsertBotSettings(ctx context.Context, key string, patch domain.BotSettingsPatch, updatedAt time.Time) (*domain.BotSettings, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	current, err := findBotSettings(ctx, tx.QueryRow, key, true)
	exists := err == nil
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		defaults := domain.DefaultBotSettings()
		current = &defaults
	}

	updated := patch.Apply(*current)
	updated.UpdatedAt = updatedAt
	m := mapping.ToModelBotSettings(key, updated)

	if exists {
		_, err = tx.Exec(ctx, `
			UPDATE bot_settings
			SET enabled = $1, system_prompt = $2, tone = $3, max_memory_chunks = $4, updated_at = $5
			WHERE settings_key = $6`,
			m.Enabled, m.SystemPrompt, m.Tone, m.MaxMemoryChunks, m.UpdatedAt, m.SettingsKey,
		)
	} else {
		_, err = tx.Exec(ctx, `
			INSERT INTO bot_settings (settings_key, enabled, system_prompt, tone, max_memory_chunks, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			m.SettingsKey, m.Enabled, m.SystemPrompt, m.Tone, m.MaxMemoryChunks, m.UpdatedAt,
		)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: settings %s were created concurrently", apperrors.ErrDuplicate, key)
		}
		return nil, fmt.Errorf("failed to save settings %s: %w", key, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &updated, nil
}

type queryRowFunc func(ctx context.Context, sql string, args ...any) pgx.Row

func findBotSettings(ctx context.Context, queryRow queryRowFunc, key string, forUpdate bool) (*domain.BotSettings, error) {
	query := `
		SELECT settings_key, enabled, system_prompt, tone, max_memory_chunks, updated_at
		FROM bot_settings
		WHERE settings_key = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var m models.BotSettings
	err := queryRow(ctx, query, key).Scan(&m.SettingsKey, &m.Enabled, &m.SystemPrompt, &m.Tone, &m.MaxMemoryChunks, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("settings " + key + " not found")
		}
		return nil, fmt.Errorf("failed to find settings %s: %w", key, err)
	}

	settings := mapping.ToDomainBotSettings(m)
	return &settings, nil
}
