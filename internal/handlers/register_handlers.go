package handlers

import (
	"net/http"

	"github.com/SscSPs/grace_blooms_backend/cmd/docs"
	portssvc "github.com/SscSPs/grace_blooms_backend/internal/core/ports/services"
	"github.com/SscSPs/grace_blooms_backend/internal/middleware"
	"github.com/SscSPs/grace_blooms_backend/internal/platform/config"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// publicMiddleware (rate limiting) is applied to the health check and the currency API.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	publicMiddleware ...gin.HandlerFunc,
) {
	registerValidators()

	public := r.Group("", publicMiddleware...)

	// Add health check route
	public.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	v1 := r.Group("/api/v1")
	registerCurrencyRoutes(v1.Group("", publicMiddleware...), services.ExchangeRate, services.Currency)

	setupAIRoutes(v1, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupAIRoutes configures the admin-only /api/v1/ai group behind AuthMiddleware
func setupAIRoutes(
	v1 *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	ai := v1.Group("/ai", middleware.AuthMiddleware(cfg.JWTSecret))

	registerMemoryRoutes(ai, services.Memory)
	registerKnowledgeRoutes(ai, services.Knowledge)
	registerBotSettingsRoutes(ai, services.BotSettings)
}
