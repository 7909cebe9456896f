package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "starchart_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "starchart_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	favoriteOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "starchart_favorite_operations_total",
		Help: "Count of favorite mutations by action and result",
	}, []string{"action", "result"})

	catalogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "starchart_catalog_size",
		Help: "Number of constellation records in the catalog",
	})

	favoritesStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "starchart_favorites_stored",
		Help: "Number of favorites currently stored across all users",
	})
)

// ObserveHTTPRequest records an HTTP request metric.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveFavoriteOp increments the favorite mutation counter.
func ObserveFavoriteOp(action, result string) {
	favoriteOperations.WithLabelValues(action, result).Inc()
}

// SetCatalogSize sets the catalog size gauge.
func SetCatalogSize(count int) {
	catalogSize.Set(float64(count))
}

// SetFavoritesStored sets the stored-favorites gauge.
func SetFavoritesStored(count int) {
	if count < 0 {
		count = 0
	}
	favoritesStored.Set(float64(count))
}
