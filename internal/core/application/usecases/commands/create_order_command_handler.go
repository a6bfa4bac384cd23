package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/clock"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Creates new orders in Received status with the intake timestamp taken
// from the injected clock.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock.System())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order intake failed: %w", err)
//	}
//	// Order is now in the active store awaiting preparation
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires an OrderUoWFactory for transactional persistence and a clock for
// the receivedAt timestamp.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the order intake command.
// Creates the order in Received status and persists it, rolling back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderNumber(),
		cmd.Origin(),
		cmd.TableRef(),
		cmd.Items(),
		cmd.Priority(),
		cmd.EstimatedPrepMinutes(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
