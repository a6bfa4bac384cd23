package jobs

import (
	"context"
	"log/slog"
	"sync"

	"kitchen/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatsRefreshJob recomputes the current-day kitchen statistics once per
// minute and caches the snapshot for cheap reads. The cache is a
// convenience: statistics are always recomputable from the history log, and
// the stats endpoint computes fresh numbers for explicit windows.
type StatsRefreshJob struct {
	handler queries.GetKitchenStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger

	mu       sync.RWMutex
	snapshot *queries.GetKitchenStatsQueryResponse
}

// NewStatsRefreshJob creates the statistics refresh job.
// Uses GetKitchenStatsQueryHandler to recompute the day window every minute.
func NewStatsRefreshJob(handler queries.GetKitchenStatsQueryHandler, logger *slog.Logger) *StatsRefreshJob {
	return &StatsRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stats_refresh_job"),
	}
}

// Start begins the statistics refresh job to run every minute.
// The first snapshot is computed immediately so reads never wait a full
// interval after startup.
func (j *StatsRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.refresh(context.Background())
	})

	if err != nil {
		return err
	}

	j.refresh(context.Background())
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats refresh job started (running every minute)")
	return nil
}

// Stop stops the statistics refresh job.
func (j *StatsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats refresh job stopped")
}

// Snapshot returns the most recent cached day-window statistics, or nil if
// no refresh has succeeded yet.
func (j *StatsRefreshJob) Snapshot() *queries.GetKitchenStatsQueryResponse {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if j.snapshot == nil {
		return nil
	}
	snapshot := *j.snapshot
	return &snapshot
}

func (j *StatsRefreshJob) refresh(ctx context.Context) {
	query, err := queries.NewGetKitchenStatsQuery(nil, nil, nil)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stats refresh failed to build query", "error", err)
		return
	}

	response, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stats refresh failed", "error", err)
		return
	}

	j.mu.Lock()
	j.snapshot = &response
	j.mu.Unlock()
}
