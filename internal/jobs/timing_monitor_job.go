package jobs

import (
	"context"
	"log/slog"
	"sync"

	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// TimingMonitorJob re-evaluates every preparing order once per second and
// raises an overdue alert the first time an order exceeds its estimate.
// The evaluation is read-only: an overdue order stays in Preparing until a
// staff member transitions it, and the alert fires at most once per order.
type TimingMonitorJob struct {
	handler  queries.GetActiveOrdersQueryHandler
	notifier OverdueNotifier
	cron     *cron.Cron
	logger   *slog.Logger

	mu       sync.Mutex
	notified map[string]struct{}
}

// NewTimingMonitorJob creates the timing monitor.
// Uses GetActiveOrdersQueryHandler to evaluate preparing orders every second.
func NewTimingMonitorJob(
	handler queries.GetActiveOrdersQueryHandler,
	notifier OverdueNotifier,
	logger *slog.Logger,
) *TimingMonitorJob {
	return &TimingMonitorJob{
		handler:  handler,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "timing_monitor_job"),
		notified: make(map[string]struct{}),
	}
}

// Start begins the timing monitor job to run every second.
func (j *TimingMonitorJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.tick(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Timing monitor tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Timing monitor job started (running every second)")
	return nil
}

// Stop stops the timing monitor job.
func (j *TimingMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Timing monitor job stopped")
}

// tick evaluates all preparing orders against the current instant.
// Alerts are dispatched on separate goroutines so a slow notifier cannot
// stall the next tick.
func (j *TimingMonitorJob) tick(ctx context.Context) error {
	query, err := queries.NewGetActiveOrdersQueryWithStatus(order.Preparing)
	if err != nil {
		return err
	}

	views, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	preparing := make(map[string]struct{}, len(views))
	for _, view := range views {
		id := view.ID.String()
		preparing[id] = struct{}{}

		if view.Timing.ClockAnomaly {
			j.logger.WarnContext(ctx, "Clock anomaly while evaluating order",
				"order_id", id, "order_number", view.OrderNumber)
		}

		if !view.Timing.IsOverdue {
			continue
		}
		if !j.markNotified(id) {
			continue
		}

		go j.notifier.NotifyOverdue(ctx, view.Timing, view.OrderNumber)
	}

	j.forget(preparing)
	return nil
}

// markNotified records the alert for an order.
// Returns false if the order was already alerted.
func (j *TimingMonitorJob) markNotified(id string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if _, seen := j.notified[id]; seen {
		return false
	}
	j.notified[id] = struct{}{}
	return true
}

// forget drops dedupe entries for orders that left Preparing, so the set
// cannot grow without bound.
func (j *TimingMonitorJob) forget(preparing map[string]struct{}) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for id := range j.notified {
		if _, still := preparing[id]; !still {
			delete(j.notified, id)
		}
	}
}
