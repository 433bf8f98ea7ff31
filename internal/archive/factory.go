package archive

import (
	"context"

	"github.com/prefeitura-rio/app-busca-boletins/internal/config"
	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
	"go.uber.org/zap"
)

// Transport é implementado pelo Client real e pelo MockClient
type Transport interface {
	Search(ctx context.Context, req *models.RemoteSearchRequest) (*models.RemoteSearchResponse, error)
	Health(ctx context.Context) *models.ArchiveHealth
}

// NewFromConfig escolhe entre o arquivo real e o mock conforme ARCHIVE_MOCK
func NewFromConfig(cfg *config.Config, logger *zap.Logger) Transport {
	if cfg.ArchiveMock {
		logger.Warn("usando arquivo fictício (ARCHIVE_MOCK=true)")
		return NewMockClient(cfg.ArchiveMockLatency)
	}
	return NewClient(Options{
		BaseURL:         cfg.ArchiveBaseURL,
		Timeout:         cfg.ArchiveTimeout,
		BreakerFailures: uint32(cfg.ArchiveBreakerFailures),
		BreakerTimeout:  cfg.ArchiveBreakerTimeout,
	}, logger)
}
