package pgsql

import (
	portsrepo "github.com/SscSPs/grace_blooms_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MemoryChunkRepo: newPgxMemoryChunkRepository(dbPool),
		KnowledgeRepo:   newPgxKnowledgeRepository(dbPool),
		BotSettingsRepo: newPgxBotSettingsRepository(dbPool),
	}
}
