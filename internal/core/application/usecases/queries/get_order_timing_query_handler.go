package queries

import (
	"context"

	"kitchen/internal/core/domain/services"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/clock"
)

// GetOrderTimingQueryHandler evaluates one active order's timing on demand.
// Archived orders are gone from the active store, so querying a served and
// archived order yields errs.ObjectNotFoundError.
type GetOrderTimingQueryHandler struct {
	orderRepository ports.OrderRepository
	timing          services.TimingCalculator
	clock           clock.Clock
}

// NewGetOrderTimingQueryHandler creates a handler for single-order timing queries.
func NewGetOrderTimingQueryHandler(
	orderRepository ports.OrderRepository,
	timing services.TimingCalculator,
	clk clock.Clock,
) GetOrderTimingQueryHandler {
	return GetOrderTimingQueryHandler{
		orderRepository: orderRepository,
		timing:          timing,
		clock:           clk,
	}
}

// Handle loads the order and computes its timing view against the current
// instant. The evaluation is transient; nothing is persisted.
func (h GetOrderTimingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTimingQuery,
) (services.TimingView, error) {
	if err := query.Validate(); err != nil {
		return services.TimingView{}, err
	}

	aggregate, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return services.TimingView{}, err
	}

	return h.timing.ComputeTiming(aggregate, h.clock.Now())
}
