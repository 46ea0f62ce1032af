package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/grace_blooms_backend/internal/apperrors"
	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/grace_blooms_backend/internal/core/ports/repositories"
	"github.com/SscSPs/grace_blooms_backend/internal/models"
	"github.com/SscSPs/grace_blooms_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const memoryChunkColumns = `chunk_id, user_id, content, category, embedding, created_at`

type PgxMemoryChunkRepository struct {
	BaseRepository
}

func newPgxMemoryChunkRepository(pool *pgxpool.Pool) portsrepo.MemoryChunkRepositoryFacade {
	return &PgxMemoryChunkRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MemoryChunkRepositoryFacade = (*PgxMemoryChunkRepository)(nil)

func (r *PgxMemoryChunkRepository) SaveChunk(ctx context.Context, chunk domain.MemoryChunk) error {
	m := mapping.ToModelMemoryChunk(chunk)

	query := `
		INSERT INTO memory_chunks (` + memoryChunkColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.ChunkID, m.UserID, m.Content, m.Category, m.Embedding, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: memory chunk %s already exists", apperrors.ErrDuplicate, m.ChunkID)
		}
		return fmt.Errorf("failed to save memory chunk %s: %w", m.ChunkID, err)
	}
	return nil
}

func (r *PgxMemoryChunkRepository) ListChunksByUser(ctx context.Context, userID string) ([]domain.MemoryChunk, error) {
	query := `SELECT ` + memoryChunkColumns + ` FROM memory_chunks WHERE user_id = $1;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memory chunks for user %s: %w", userID, err)
	}
	return collectChunks(rows)
}

// ListRecentChunksByUser orders by created_at, then chunk_id, both descending.
func (r *PgxMemoryChunkRepository) ListRecentChunksByUser(ctx context.Context, userID string, limit int) ([]domain.MemoryChunk, error) {
	query := `
		SELECT ` + memoryChunkColumns + `
		FROM memory_chunks
		WHERE user_id = $1
		ORDER BY created_at DESC, chunk_id DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent memory chunks for user %s: %w", userID, err)
	}
	return collectChunks(rows)
}

func (r *PgxMemoryChunkRepository) DeleteChunk(ctx context.Context, chunkID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM memory_chunks WHERE chunk_id = $1;`, chunkID)
	if err != nil {
		return fmt.Errorf("failed to delete memory chunk %s: %w", chunkID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("memory chunk " + chunkID + " not found")
	}
	return nil
}

func (r *PgxMemoryChunkRepository) DeleteChunksByUser(ctx context.Context, userID string) (int, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM memory_chunks WHERE user_id = $1;`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete memory chunks for user %s: %w", userID, err)
	}
	return int(tag.RowsAffected()), nil
}

func collectChunks(rows pgx.Rows) ([]domain.MemoryChunk, error) {
	defer rows.Close()

	var chunks []models.MemoryChunk
	for rows.Next() {
		var m models.MemoryChunk
		if err := rows.Scan(&m.ChunkID, &m.UserID, &m.Content, &m.Category, &m.Embedding, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan memory chunk row: %w", err)
		}
		chunks = append(chunks, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating memory chunk rows: %w", err)
	}
	return mapping.ToDomainMemoryChunkSlice(chunks), nil
}
