package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/grace_blooms_backend/internal/apperrors"
	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/grace_blooms_backend/internal/core/ports/repositories"
	"github.com/SscSPs/grace_blooms_backend/internal/models"
	"github.com/SscSPs/grace_blooms_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const knowledgeColumns = `knowledge_id, source_type, source_id, content, embedding, created_at, updated_at`

type PgxKnowledgeRepository struct {
	BaseRepository
}

func newPgxKnowledgeRepository(pool *pgxpool.Pool) portsrepo.KnowledgeRepositoryFacade {
	return &PgxKnowledgeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.KnowledgeRepositoryFacade = (*PgxKnowledgeRepository)(nil)

func (r *PgxKnowledgeRepository) FindKnowledgeBySourceID(ctx context.Context, sourceID string) (*domain.KnowledgeEntry, error) {
	query := `SELECT ` + knowledgeColumns + ` FROM knowledge_entries WHERE source_id = $1;`

	var m models.KnowledgeEntry
	err := r.Pool.QueryRow(ctx, query, sourceID).Scan(
		&m.KnowledgeID, &m.SourceType, &m.SourceID, &m.Content, &m.Embedding, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("knowledge for source " + sourceID + " not found")
		}
		return nil, fmt.Errorf("failed to find knowledge for source %s: %w", sourceID, err)
	}

	entry := mapping.ToDomainKnowledgeEntry(m)
	return &entry, nil
}

// ListKnowledge returns entries most recently updated first.
func (r *PgxKnowledgeRepository) ListKnowledge(ctx context.Context, sourceType *string) ([]domain.KnowledgeEntry, error) {
	query := `
		SELECT ` + knowledgeColumns + `
		FROM knowledge_entries
		WHERE ($1::text IS NULL OR source_type = $1)
		ORDER BY updated_at DESC, source_id;
	`
	rows, err := r.Pool.Query(ctx, query, sourceType)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge: %w", err)
	}
	defer rows.Close()

	var entries []models.KnowledgeEntry
	for rows.Next() {
		var m models.KnowledgeEntry
		if err := rows.Scan(&m.KnowledgeID, &m.SourceType, &m.SourceID, &m.Content, &m.Embedding, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan knowledge row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating knowledge rows: %w", err)
	}
	return mapping.ToDomainKnowledgeEntrySlice(entries), nil
}

// UpsertKnowledge patches the row holding entry.SourceID or inserts a new one.
// source_type and knowledge_id of an existing row are left untouched.
func (r *PgxKnowledgeRepository) UpsertKnowledge(ctx context.Context, entry domain.KnowledgeEntry) (string, bool, error) {
	m := mapping.ToModelKnowledgeEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return "", false, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var existingID string
	err = tx.QueryRow(ctx,
		`SELECT knowledge_id FROM knowledge_entries WHERE source_id = $1 FOR UPDATE`,
		m.SourceID,
	).Scan(&existingID)

	created := false
	switch {
	case err == nil:
		_, err = tx.Exec(ctx, `
			UPDATE knowledge_entries
			SET content = $1, embedding = $2, updated_at = $3
			WHERE knowledge_id = $4`,
			m.Content, m.Embedding, m.UpdatedAt, existingID,
		)
	case errors.Is(err, pgx.ErrNoRows):
		existingID = m.KnowledgeID
		created = true
		_, err = tx.Exec(ctx, `
			INSERT INTO knowledge_entries (`+knowledgeColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			m.KnowledgeID, m.SourceType, m.SourceID, m.Content, m.Embedding, m.CreatedAt, m.UpdatedAt,
		)
		if isUniqueViolation(err) {
			err = fmt.Errorf("%w: knowledge for source %s was created concurrently", apperrors.ErrDuplicate, m.SourceID)
		}
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to upsert knowledge for source %s: %w", m.SourceID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", false, err
	}
	return existingID, created, nil
}
