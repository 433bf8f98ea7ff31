package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/prefeitura-rio/app-busca-boletins/docs"
	"github.com/prefeitura-rio/app-busca-boletins/internal/api/routes"
	"github.com/prefeitura-rio/app-busca-boletins/internal/archive"
	"github.com/prefeitura-rio/app-busca-boletins/internal/config"
	middlewares "github.com/prefeitura-rio/app-busca-boletins/internal/middleware"
	"github.com/prefeitura-rio/app-busca-boletins/internal/observability"
	"github.com/prefeitura-rio/app-busca-boletins/internal/search"
	"go.uber.org/zap"
)

// @title           Busca de Boletins de Ocorrência API
// @version         1.0
// @description     API para localizar boletins de ocorrência no arquivo por número ou por termos combinados com AND/OR

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Erro ao inicializar logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)

	observability.InitTracer(cfg, logger)
	defer observability.ShutdownTracer(logger)

	sequencer, redisClient, err := search.NewSequencerFromConfig(cfg)
	if err != nil {
		logger.Fatal("erro ao criar sequenciador", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis indisponível na inicialização", zap.Error(err))
		}
		cancel()
	}

	service := search.NewService(
		archive.NewFromConfig(cfg, logger),
		sequencer,
		search.NewNormalizer(time.Now),
		observability.NewSearchMetrics(),
		logger,
	)

	var limiter *middlewares.IPRateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middlewares.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, logger)
	}

	r := routes.SetupRouter(service, limiter, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("servidor iniciado", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("erro ao iniciar servidor", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("encerrando servidor")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("erro ao encerrar servidor", zap.Error(err))
	}
}
