package jobs

import (
	"context"
	"log/slog"

	"kitchen/internal/core/domain/services"
)

// OverdueNotifier receives overdue alerts from the timing monitor.
// Implementations must tolerate slow or failing delivery channels; the
// monitor never blocks its tick on a notifier.
type OverdueNotifier interface {
	NotifyOverdue(ctx context.Context, view services.TimingView, orderNumber string)
}

// SlogOverdueNotifier is the default notifier: it writes overdue alerts to
// the structured log. Deployments with a pager or kitchen display system
// swap in their own implementation.
type SlogOverdueNotifier struct {
	logger *slog.Logger
}

// NewSlogOverdueNotifier creates a log-backed overdue notifier.
func NewSlogOverdueNotifier(logger *slog.Logger) *SlogOverdueNotifier {
	return &SlogOverdueNotifier{
		logger: logger.With("component", "overdue_notifier"),
	}
}

// NotifyOverdue logs one overdue alert.
func (n *SlogOverdueNotifier) NotifyOverdue(ctx context.Context, view services.TimingView, orderNumber string) {
	n.logger.WarnContext(ctx, "Order is overdue",
		"order_id", view.OrderID.String(),
		"order_number", orderNumber,
		"elapsed_minutes", view.ElapsedMinutes,
	)
}
