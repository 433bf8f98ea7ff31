package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boletins_search_requests_total",
			Help: "Total de buscas de boletins enviadas ao arquivo",
		},
		[]string{"mode"},
	)

	searchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "boletins_search_duration_seconds",
			Help:    "Duração da chamada ao arquivo em segundos",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"mode"},
	)

	searchResultsCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "boletins_search_results_count",
			Help:    "Número de boletins retornados por busca",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 500},
		},
	)

	searchErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boletins_search_errors_total",
			Help: "Total de buscas com erro, por categoria",
		},
		[]string{"category"},
	)

	searchSupersededTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boletins_search_superseded_total",
			Help: "Respostas descartadas porque uma busca mais recente foi submetida",
		},
	)
)

// SearchMetrics registra métricas de busca. Um ponteiro nil é válido e não registra nada.
type SearchMetrics struct{}

// NewSearchMetrics cria o registrador de métricas de busca
func NewSearchMetrics() *SearchMetrics {
	return &SearchMetrics{}
}

func (m *SearchMetrics) RecordRequest(mode string, duration time.Duration) {
	if m == nil {
		return
	}
	searchRequestsTotal.WithLabelValues(mode).Inc()
	searchDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

func (m *SearchMetrics) RecordResults(count int) {
	if m == nil {
		return
	}
	searchResultsCount.Observe(float64(count))
}

func (m *SearchMetrics) RecordError(category string) {
	if m == nil {
		return
	}
	searchErrorsTotal.WithLabelValues(category).Inc()
}

func (m *SearchMetrics) RecordSuperseded() {
	if m == nil {
		return
	}
	searchSupersededTotal.Inc()
}
