package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-busca-boletins/internal/api/handlers"
	middlewares "github.com/prefeitura-rio/app-busca-boletins/internal/middleware"
	"github.com/prefeitura-rio/app-busca-boletins/internal/search"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// SetupRouter monta o roteador. limiter nil desabilita o limite por IP.
func SetupRouter(service *search.Service, limiter *middlewares.IPRateLimiter, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.RequestTracing())
	r.Use(corsMiddleware())

	searchHandler := handlers.NewSearchHandler(service)
	healthHandler := handlers.NewHealthHandler(service)

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	if limiter != nil {
		api.Use(limiter.RateLimit())
	}
	api.Use(middlewares.ExtractUserContext())
	{
		api.POST("/busca", searchHandler.Search)
		api.GET("/boletins/:numero", searchHandler.GetBulletin)
		api.GET("/arquivo/health", searchHandler.ArchiveHealth)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID, X-Session-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
