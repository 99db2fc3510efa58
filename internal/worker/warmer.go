// Package worker runs the background prefetcher that keeps the club's
// Chess.com data warm in cache, so leaderboard requests rarely have to
// fan out to the upstream API cold.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/Avazbek22/magnus-bot/internal/models"
	"github.com/Avazbek22/magnus-bot/internal/roster"
)

// Prometheus metrics
var (
	warmCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "magnusbot_warm_cycles_total",
		Help: "Total number of completed cache warm cycles",
	})

	warmFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "magnusbot_warm_failures_total",
		Help: "Total number of member fetches that failed during warming",
	})

	warmCycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "magnusbot_warm_cycle_duration_seconds",
		Help:    "Duration of one cache warm cycle",
		Buckets: prometheus.DefBuckets,
	})
)

// ArchiveSource is the client slice the warmer drives. Fetching through the
// caching client is what fills the cache.
type ArchiveSource interface {
	LatestGames(ctx context.Context, username string) (models.MonthlyGames, error)
}

// WarmerConfig configures the cache warmer.
type WarmerConfig struct {
	Source   ArchiveSource
	Roster   []roster.Entry
	Interval time.Duration
	Timeout  time.Duration
	Logger   *zap.Logger
}

// Warmer periodically fetches every club member's latest monthly archive.
// Members are fetched one at a time under a shared per-cycle timeout.
type Warmer struct {
	source   ArchiveSource
	roster   []roster.Entry
	interval time.Duration
	timeout  time.Duration
	logger   *zap.SugaredLogger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWarmer creates a cache warmer.
func NewWarmer(cfg WarmerConfig) *Warmer {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}

	return &Warmer{
		source:   cfg.Source,
		roster:   cfg.Roster,
		interval: cfg.Interval,
		timeout:  cfg.Timeout,
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the warm loop. The first cycle runs immediately.
func (w *Warmer) Start(ctx context.Context) {
	w.ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(1)
	go w.run()

	w.logger.Infow("Cache warmer started", "interval", w.interval, "members", len(w.roster))
}

// Stop shuts the warm loop down and waits for any in-flight cycle.
func (w *Warmer) Stop() {
	w.cancel()
	w.wg.Wait()
	w.logger.Info("Cache warmer stopped")
}

func (w *Warmer) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.warm(w.ctx)
	for {
		select {
		case <-ticker.C:
			w.warm(w.ctx)
		case <-w.ctx.Done():
			return
		}
	}
}

// warm fetches each member's latest archive. A failed member is logged and
// skipped; the cycle counts as complete only when the loop was not cut short
// by cancellation.
func (w *Warmer) warm(parent context.Context) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(parent, w.timeout)
	defer cancel()

	for _, member := range w.roster {
		if ctx.Err() != nil {
			return
		}
		if _, err := w.source.LatestGames(ctx, member.Username); err != nil {
			warmFailures.Inc()
			w.logger.Warnw("Failed to warm member archive", "username", member.Username, "error", err)
		}
	}

	warmCycles.Inc()
	warmCycleDuration.Observe(time.Since(start).Seconds())
}
