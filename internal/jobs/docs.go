// Package jobs provides scheduled background tasks for the kitchen system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the kitchen service.
//
// # Available Jobs
//
// 1. TimingMonitorJob - Runs every second to re-evaluate preparing orders and raise one-time overdue alerts
// 2. StatsRefreshJob - Runs every minute to recompute and cache the current-day statistics snapshot
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(activeOrdersHandler, statsHandler, notifier, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The timing monitor uses the cron expression "* * * * * *" (every second)
// so overdue alerts land within a second of the SLA being crossed. The stats
// refresh uses "0 * * * * *" (every minute) since derived metrics do not
// need sub-minute freshness.
//
// # Error Handling
//
// - The timing monitor logs tick failures and keeps running; a failed tick
//   is retried implicitly on the next second
// - Overdue alerts are dispatched on separate goroutines so a slow notifier
//   cannot stall the schedule
// - Failed job starts stop any already running jobs
package jobs
