package services

import (
	"github.com/SscSPs/grace_blooms_backend/internal/core/ports"
	portsrepo "github.com/SscSPs/grace_blooms_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/grace_blooms_backend/internal/core/ports/services"
	"github.com/SscSPs/grace_blooms_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// localStore may be nil, in which case rates and the currency preference run headless.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, provider ports.RatesProvider, localStore ports.LocalStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	rateOptions := []ExchangeRateOption{WithRatesCacheTTL(cfg.RatesCacheTTL)}
	if localStore != nil {
		rateOptions = append(rateOptions, WithRatesCache(localStore))
	}
	container.ExchangeRate = NewExchangeRateService(provider, rateOptions...)
	container.Currency = NewCurrencyService(localStore)

	// Settings come first: the memory service reads its cap through them.
	container.BotSettings = NewBotSettingsService(repos.BotSettingsRepo)
	container.Memory = NewMemoryService(repos.MemoryChunkRepo, container.BotSettings)
	container.Knowledge = NewKnowledgeService(repos.KnowledgeRepo)

	return container
}
