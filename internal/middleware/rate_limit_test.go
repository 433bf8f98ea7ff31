package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestIPRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewIPRateLimiter(0.001, 2, nil)
	r := gin.New()
	r.Use(limiter.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("10.0.0.1:1000"); code != http.StatusOK {
			t.Fatalf("requisição %d: status = %d, want 200", i, code)
		}
	}
	if code := do("10.0.0.1:1000"); code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", code)
	}

	// outro IP tem seu próprio limite
	if code := do("10.0.0.2:1000"); code != http.StatusOK {
		t.Errorf("outro IP: status = %d, want 200", code)
	}
}

func TestIPRateLimiterSweepsIdleIPs(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1, nil)
	clock := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return clock }
	limiter.lastSweep = clock

	limiter.getLimiter("10.0.0.1")
	limiter.getLimiter("10.0.0.2")
	if size := limiter.Size(); size != 2 {
		t.Fatalf("Size() = %d, want 2", size)
	}

	// 10.0.0.2 continua ativo; 10.0.0.1 fica ocioso
	clock = clock.Add(idleTTL / 2)
	limiter.getLimiter("10.0.0.2")

	clock = clock.Add(idleTTL/2 + time.Second)
	limiter.getLimiter("10.0.0.3")

	if size := limiter.Size(); size != 2 {
		t.Errorf("Size() = %d, want 2 após descartar IP ocioso", size)
	}
	limiter.mu.Lock()
	_, idle := limiter.limiters["10.0.0.1"]
	_, active := limiter.limiters["10.0.0.2"]
	limiter.mu.Unlock()
	if idle {
		t.Error("limitador de 10.0.0.1 deveria ter sido descartado")
	}
	if !active {
		t.Error("limitador de 10.0.0.2 deveria continuar")
	}
}
