package jobs

import (
	"fmt"
	"log/slog"

	"kitchen/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	timingMonitorJob *TimingMonitorJob
	statsRefreshJob  *StatsRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers and the overdue notifier as dependencies.
func NewJobManager(
	activeOrdersHandler queries.GetActiveOrdersQueryHandler,
	statsHandler queries.GetKitchenStatsQueryHandler,
	notifier OverdueNotifier,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		timingMonitorJob: NewTimingMonitorJob(activeOrdersHandler, notifier, logger),
		statsRefreshJob:  NewStatsRefreshJob(statsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.timingMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start timing monitor job: %w", err)
	}

	if err := jm.statsRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.timingMonitorJob.Stop()
		return fmt.Errorf("failed to start stats refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.timingMonitorJob.Stop()
	jm.statsRefreshJob.Stop()
}

// StatsSnapshot exposes the cached day-window statistics for cheap reads.
func (jm *JobManager) StatsSnapshot() *queries.GetKitchenStatsQueryResponse {
	return jm.statsRefreshJob.Snapshot()
}
