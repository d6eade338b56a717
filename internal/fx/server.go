package fx

import (
	"context"

	"BudgetBuddy/config"
	"BudgetBuddy/internal/logger"
	"BudgetBuddy/internal/middleware"
	"BudgetBuddy/internal/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	rateLimiter *middleware.RateLimiter,
	healthScoreHandler *routes.HealthScoreHandler,
) {
	router.Use(middleware.CORSMiddleware())

	api := router.Group("/api")
	api.Use(middleware.RateLimit(rateLimiter))
	api.Use(middleware.UserContext())
	{
		api.GET("/health-score", healthScoreHandler.GetHealthScore)
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
