// Package refresh coordinates feed fetches: one on startup, optional
// periodic polling, and manually triggered refreshes from the API, with at
// most one fetch in flight at a time.
package refresh

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/quake-data-dashboard/internal/domain"
	"github.com/couchcryptid/quake-data-dashboard/internal/observability"
	"github.com/couchcryptid/quake-data-dashboard/internal/store"
)

// EventFetcher fetches the current feed contents.
type EventFetcher interface {
	FetchEvents(ctx context.Context) ([]domain.Event, error)
}

// SnapshotPublisher forwards a refreshed batch to a downstream sink.
type SnapshotPublisher interface {
	PublishBatch(ctx context.Context, events []domain.Event) error
}

// Refresher owns the fetch lifecycle and writes results into the store.
type Refresher struct {
	fetcher   EventFetcher
	store     *store.Store
	publisher SnapshotPublisher // nil when publishing is disabled
	logger    *slog.Logger
	metrics   *observability.Metrics
	interval  time.Duration // 0 disables periodic polling

	trigger  chan struct{}
	inFlight atomic.Bool
	ready    atomic.Bool
}

// New creates a Refresher. A nil publisher disables snapshot publishing;
// a zero interval disables the poll ticker, leaving startup and manual
// triggers as the only refresh sources.
func New(fetcher EventFetcher, st *store.Store, publisher SnapshotPublisher, logger *slog.Logger, metrics *observability.Metrics, interval time.Duration) *Refresher {
	return &Refresher{
		fetcher:   fetcher,
		store:     st,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		interval:  interval,
		trigger:   make(chan struct{}, 1),
	}
}

// Run performs an initial refresh, then serves the poll ticker and manual
// triggers until the context is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	r.refresh(ctx)

	var tick <-chan time.Time
	if r.interval > 0 {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("refresh loop stopping")
			return
		case <-tick:
			r.refresh(ctx)
		case <-r.trigger:
			r.refresh(ctx)
		}
	}
}

// Trigger requests a refresh. It reports false and leaves the state
// untouched when a refresh is already running or queued, so repeated
// refresh clicks collapse into one fetch.
func (r *Refresher) Trigger() bool {
	if r.inFlight.Load() {
		r.metrics.RefreshIgnored.Inc()
		return false
	}
	select {
	case r.trigger <- struct{}{}:
		return true
	default:
		r.metrics.RefreshIgnored.Inc()
		return false
	}
}

// CheckReadiness reports whether at least one fetch attempt has completed,
// successfully or not. The dashboard can render an error state, so a failed
// first fetch still counts as ready.
func (r *Refresher) CheckReadiness() bool {
	return r.ready.Load()
}

func (r *Refresher) refresh(ctx context.Context) {
	r.inFlight.Store(true)
	defer r.inFlight.Store(false)

	start := time.Now()
	events, err := r.fetcher.FetchEvents(ctx)
	r.metrics.FetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return
		}
		r.store.RecordFailure(err)
		r.metrics.FetchRequests.WithLabelValues("error").Inc()
		r.metrics.SnapshotStale.Set(1)
		r.ready.Store(true)
		r.logger.Error("feed refresh failed", "error", err)
		return
	}

	r.store.ReplaceAll(events, time.Now().UTC())
	r.metrics.FetchRequests.WithLabelValues("success").Inc()
	r.metrics.SnapshotEvents.Set(float64(len(events)))
	r.metrics.SnapshotStale.Set(0)
	r.ready.Store(true)
	r.logger.Info("feed refreshed", "events", len(events))

	if r.publisher != nil {
		if err := r.publisher.PublishBatch(ctx, events); err != nil {
			r.metrics.PublishErrors.Inc()
			r.logger.Error("snapshot publish failed", "error", err)
			return
		}
		r.metrics.EventsPublished.Add(float64(len(events)))
	}
}
