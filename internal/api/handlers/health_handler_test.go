package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
)

type staticChecker struct {
	health *models.ArchiveHealth
}

func (s staticChecker) Health(context.Context) *models.ArchiveHealth {
	return s.health
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		path       string
		health     *models.ArchiveHealth
		wantCode   int
		wantStatus string
		wantCheck  string
	}{
		{name: "liveness não consulta o arquivo", path: "/liveness", health: nil, wantCode: http.StatusOK, wantStatus: "alive"},
		{name: "readiness ok", path: "/readiness", health: &models.ArchiveHealth{Status: "healthy"}, wantCode: http.StatusOK, wantStatus: "ready", wantCheck: "ok"},
		{name: "readiness com arquivo fora", path: "/readiness", health: &models.ArchiveHealth{Status: "error", Message: "timeout"}, wantCode: http.StatusServiceUnavailable, wantStatus: "not_ready", wantCheck: "failed"},
		{name: "health ok", path: "/health", health: &models.ArchiveHealth{Status: "healthy"}, wantCode: http.StatusOK, wantStatus: "healthy", wantCheck: "ok"},
		{name: "health sem resposta", path: "/health", health: nil, wantCode: http.StatusServiceUnavailable, wantStatus: "unhealthy", wantCheck: "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(staticChecker{health: tt.health})
			r := gin.New()
			r.GET("/liveness", handler.Liveness)
			r.GET("/readiness", handler.Readiness)
			r.GET("/health", handler.Health)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			var resp HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("resposta inválida: %v", err)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if tt.wantCheck != "" && resp.Checks["archive"] != tt.wantCheck {
				t.Errorf("checks[archive] = %q, want %q", resp.Checks["archive"], tt.wantCheck)
			}
		})
	}
}
