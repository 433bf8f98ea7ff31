package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-busca-boletins/internal/archive"
	middlewares "github.com/prefeitura-rio/app-busca-boletins/internal/middleware"
	"github.com/prefeitura-rio/app-busca-boletins/internal/search"
	"go.uber.org/zap"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := search.NewService(
		archive.NewMockClient(0),
		search.NewMemorySequencer(time.Minute, 10),
		search.NewNormalizer(nil),
		nil,
		zap.NewNop(),
	)
	r := SetupRouter(service, nil, zap.NewNop())

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "liveness", method: http.MethodGet, path: "/liveness", wantStatus: http.StatusOK},
		{name: "readiness", method: http.MethodGet, path: "/readiness", wantStatus: http.StatusOK},
		{name: "métricas", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "preflight CORS", method: http.MethodOptions, path: "/api/v1/busca", wantStatus: http.StatusNoContent},
		{name: "busca", method: http.MethodPost, path: "/api/v1/busca", body: `{"boNumber":"123456"}`, wantStatus: http.StatusOK},
		{name: "boletim", method: http.MethodGet, path: "/api/v1/boletins/123456", wantStatus: http.StatusOK},
		{name: "status do arquivo", method: http.MethodGet, path: "/api/v1/arquivo/health", wantStatus: http.StatusOK},
		{name: "rota inexistente", method: http.MethodGet, path: "/api/v1/nada", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("X-Request-ID ausente")
			}
		})
	}
}

func TestSetupRouterRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := search.NewService(archive.NewMockClient(0), nil, nil, nil, nil)
	r := SetupRouter(service, middlewares.NewIPRateLimiter(0.001, 1, nil), zap.NewNop())

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/arquivo/health", nil))
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("status = %v, want [200 429]", codes)
	}

	// probes ficam fora do limite
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/liveness", nil))
	if w.Code != http.StatusOK {
		t.Errorf("liveness status = %d, want 200", w.Code)
	}
}
