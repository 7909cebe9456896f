package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/yourorg/starchart/internal/domain"
	"github.com/yourorg/starchart/internal/observability/metrics"
)

// StatsWorker periodically refreshes the store-level gauges so the metrics
// endpoint reflects catalog size and stored favorites without touching the
// request path.
type StatsWorker struct {
	store    domain.Store
	logger   *slog.Logger
	interval time.Duration
}

// NewStatsWorker creates a stats worker.
func NewStatsWorker(store domain.Store, logger *slog.Logger, interval time.Duration) *StatsWorker {
	return &StatsWorker{
		store:    store,
		logger:   logger,
		interval: interval,
	}
}

// Start runs the refresh loop until the context is canceled. One refresh
// happens immediately so gauges aren't zero until the first tick.
func (w *StatsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("stats worker started", slog.Duration("interval", w.interval))
	w.refresh()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stats worker stopped")
			return
		case <-ticker.C:
			w.refresh()
		}
	}
}

func (w *StatsWorker) refresh() {
	constellations, err := w.store.GetAllConstellations()
	if err != nil {
		w.logger.Error("failed to read catalog for stats", slog.String("error", err.Error()))
	} else {
		metrics.SetCatalogSize(len(constellations))
	}

	count, err := w.store.CountFavorites()
	if err != nil {
		w.logger.Error("failed to count favorites for stats", slog.String("error", err.Error()))
		return
	}
	metrics.SetFavoritesStored(count)
}
