package queries

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/clock"
)

// GetActiveOrdersQueryHandler retrieves the active order board: every
// non-archived order, each with a freshly computed timing view. Unlike the
// raw-SQL read handlers, it goes through the repository so the timing
// calculator can work on full aggregates.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(repo, services.NewTimingCalculator(), clock.System())
//	board, err := handler.Handle(ctx, NewGetActiveOrdersQuery())
//	if err != nil {
//	    log.Printf("Failed to get active orders: %v", err)
//	    return err
//	}
//	fmt.Printf("%d orders on the board\n", len(board))
type GetActiveOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
	timing          services.TimingCalculator
	clock           clock.Clock
}

// NewGetActiveOrdersQueryHandler creates a handler for active board queries.
func NewGetActiveOrdersQueryHandler(
	orderRepository ports.OrderRepository,
	timing services.TimingCalculator,
	clk clock.Clock,
) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{
		orderRepository: orderRepository,
		timing:          timing,
		clock:           clk,
	}
}

// Handle executes the query, evaluating every matching order against the
// same instant so the returned board is internally consistent.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]ActiveOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statusFilter := query.Status()

	// The Preparing board is what the timing monitor polls every second,
	// so that filter is pushed down to the store.
	var aggregates []*order.Order
	var err error
	if statusFilter != nil && *statusFilter == order.Preparing {
		aggregates, err = h.orderRepository.GetAllInPreparingStatus(ctx)
	} else {
		aggregates, err = h.orderRepository.GetAllActive(ctx)
	}
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()

	responses := make([]ActiveOrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if statusFilter != nil && aggregate.Status() != *statusFilter {
			continue
		}

		view, timingErr := h.timing.ComputeTiming(aggregate, now)
		if timingErr != nil {
			return nil, timingErr
		}

		responses = append(responses, ActiveOrderResponse{
			ID:                   aggregate.ID(),
			OrderNumber:          aggregate.OrderNumber(),
			Origin:               aggregate.Origin(),
			TableRef:             aggregate.TableRef(),
			Items:                aggregate.Items(),
			Priority:             aggregate.Priority(),
			Status:               aggregate.Status(),
			ReceivedAt:           aggregate.ReceivedAt(),
			StartedAt:            aggregate.StartedAt(),
			CompletedAt:          aggregate.CompletedAt(),
			EstimatedPrepMinutes: aggregate.EstimatedPrepMinutes(),
			ActualPrepMinutes:    aggregate.ActualPrepMinutes(),
			AssignedStaffID:      aggregate.AssignedStaff(),
			Timing:               view,
		})
	}

	return responses, nil
}
