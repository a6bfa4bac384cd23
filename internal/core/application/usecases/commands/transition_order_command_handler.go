package commands

import (
	"context"

	"kitchen/internal/core/domain/model/history"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/clock"
	"kitchen/internal/pkg/errs"
)

// TransitionOrderCommandHandler is the lifecycle controller: the sole
// authority for order state transitions. Every status change in the system
// flows through Handle, which guarantees the state machine's legality,
// exactly-once timestamping and the atomic pairing of the ready transition
// with its cooking history record.
//
// Concurrency: the order row is locked for the duration of the transaction
// (GetForUpdate), so concurrent transition attempts for the same order
// serialize; attempts for different orders proceed independently.
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
}

// NewTransitionOrderCommandHandler creates the lifecycle controller.
// Requires a UoWFactory spanning the order store and the history log, and a
// clock for transition timestamps.
func NewTransitionOrderCommandHandler(uowFactory UoWFactory, clk clock.Clock) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle applies one status transition and returns the resulting order.
//
// Semantics:
//   - unknown order: errs.ObjectNotFoundError
//   - target equals the current status: idempotent no-op returning the
//     unchanged order; no timestamps move and no history is appended
//   - target is the immediate successor: the transition is applied; the
//     ready transition additionally appends the cooking history record in
//     the same transaction, and the served transition archives the order
//     out of the active store
//   - any other target (skipping ahead or moving backward):
//     errs.InvalidTransitionError, no state change
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	// Duplicate request (e.g. two stations pressing the same button):
	// return the current state without touching it.
	if aggregate.Status() == cmd.Target() {
		return aggregate, nil
	}

	switch cmd.Target() {
	case order.Preparing:
		err = aggregate.StartPreparation(cmd.StaffID(), h.clock.Now())
	case order.Ready:
		err = h.markReady(ctx, uow, aggregate)
	case order.Served:
		err = aggregate.MarkServed()
	default:
		err = errs.NewInvalidTransitionError(aggregate.Status().String(), cmd.Target().String())
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if cmd.Target() == order.Served {
		if err = orderRepo.Archive(ctx, aggregate.ID()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// markReady applies the ready transition and appends the cooking history
// record inside the caller's transaction. Either both changes commit or
// neither does.
func (h *TransitionOrderCommandHandler) markReady(ctx context.Context, uow UoW, aggregate *order.Order) error {
	if err := aggregate.MarkReady(h.clock.Now()); err != nil {
		return err
	}

	record, err := history.NewRecord(kernel.NewUUID(), aggregate)
	if err != nil {
		return err
	}

	return uow.HistoryRepository().Add(ctx, record)
}
