package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
	"github.com/prefeitura-rio/app-busca-boletins/internal/utils"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const (
	searchPath = "/search"
	healthPath = "/health"

	maxResponseBytes = 8 << 20
)

// Options configura o cliente do arquivo
type Options struct {
	BaseURL         string
	Timeout         time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// Client encapsula as chamadas HTTP ao serviço de arquivo de boletins
type Client struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

// NewClient cria um novo cliente para o serviço de arquivo
func NewClient(opts Options, logger *zap.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = 5
	}
	if opts.BreakerTimeout <= 0 {
		opts.BreakerTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	failures := opts.BreakerFailures
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "archive",
		MaxRequests: 1,
		Timeout:     opts.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// Cancelamento pelo chamador não conta como falha do arquivo
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker mudou de estado",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    opts.BaseURL,
		breaker:    breaker,
		logger:     logger,
	}
}

// Search envia a requisição ao endpoint /search e devolve o corpo decodificado
func (c *Client) Search(ctx context.Context, req *models.RemoteSearchRequest) (*models.RemoteSearchResponse, error) {
	ctx, span := otel.Tracer("archive").Start(ctx, "archive.search")
	defer span.End()

	span.SetAttributes(
		attribute.Bool("archive.bulletin_lookup", req.IsBulletinLookup()),
		attribute.Int("archive.search_terms", len(req.SearchTerms)),
		attribute.Bool("archive.require_all_terms", req.RequireAllTerms),
		attribute.Bool("archive.date_filter", req.DateFilter != nil),
	)

	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doSearch(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = &TransportError{Op: "search", Err: fmt.Errorf("%w: %v", ErrArchiveUnavailable, err)}
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "archive search failed")
		return nil, err
	}

	resp := out.(*models.RemoteSearchResponse)
	if resp.TotalMatches != nil {
		span.SetAttributes(attribute.Int("archive.total_matches", *resp.TotalMatches))
	}
	span.SetStatus(codes.Ok, "archive search succeeded")
	return resp, nil
}

func (c *Client) doSearch(ctx context.Context, req *models.RemoteSearchRequest) (*models.RemoteSearchResponse, error) {
	endpoint, err := utils.EndpointURL(c.baseURL, searchPath)
	if err != nil {
		return nil, &TransportError{Op: "search", Err: err}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Op: "search", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json; charset=utf-8")
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug("requisição ao arquivo", zap.ByteString("body", body))

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: "search", Err: err}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(httpResp.Body, maxResponseBytes))
		return nil, &TransportError{Op: "search", StatusCode: httpResp.StatusCode}
	}

	var resp models.RemoteSearchResponse
	if err := json.NewDecoder(io.LimitReader(httpResp.Body, maxResponseBytes)).Decode(&resp); err != nil {
		return nil, &TransportError{Op: "search", Err: fmt.Errorf("%w: %v", ErrInvalidResponse, err)}
	}

	return &resp, nil
}

// Health consulta o endpoint /health do arquivo. Qualquer falha vira status "error".
func (c *Client) Health(ctx context.Context) *models.ArchiveHealth {
	ctx, span := otel.Tracer("archive").Start(ctx, "archive.health")
	defer span.End()

	health, err := c.doHealth(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "archive health failed")
		c.logger.Warn("erro ao verificar status do arquivo", zap.Error(err))
		return &models.ArchiveHealth{Status: "error", Message: err.Error()}
	}
	return health
}

func (c *Client) doHealth(ctx context.Context) (*models.ArchiveHealth, error) {
	endpoint, err := utils.EndpointURL(c.baseURL, healthPath)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, fmt.Errorf("health check do arquivo falhou: status %d", httpResp.StatusCode)
	}

	var health models.ArchiveHealth
	if err := json.NewDecoder(io.LimitReader(httpResp.Body, maxResponseBytes)).Decode(&health); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if health.Status == "" {
		health.Status = "unknown"
	}
	return &health, nil
}
