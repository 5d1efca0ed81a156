package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/lovecontract/internal/api/handlers"
	"github.com/linskybing/lovecontract/internal/api/middleware"
	"github.com/linskybing/lovecontract/internal/config"
	"github.com/linskybing/lovecontract/internal/metrics"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linskybing/lovecontract/docs"
)

// NewRouter builds the engine with the middleware chain and every route.
func NewRouter(cfg *config.Config, h *handlers.Handlers, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(log),
		middleware.LoggingMiddleware(log),
		middleware.Recovery(log),
		middleware.CORSMiddleware(cfg.AllowedOrigins),
	)
	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.GET("/healthz", h.Health.Healthz)
	r.GET("/readyz", h.Health.Readyz)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	contracts := r.Group("/contracts")
	{
		contracts.GET("/template", h.Contract.GetTemplate)
		contracts.POST("", h.Contract.CreateContract)
		contracts.GET("/:id", h.Contract.GetContract)
		contracts.POST("/:id/signatures", h.Contract.SignContract)
		contracts.GET("/:id/celebration", h.Contract.GetCelebration)
	}

	r.GET("/ws/contracts/:id", h.Watch.WatchContract)
}
