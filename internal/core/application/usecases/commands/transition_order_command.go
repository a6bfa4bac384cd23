package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand represents a staff action advancing an order to its
// next lifecycle status. The acting staff member is optional; when present
// on the transition into preparing it becomes the order's attributed cook.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.Preparing, &staffID)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // Surface to kitchen staff so the action can be corrected
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	staffID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to advance an order's status.
// Validates the order ID, the target status value and, when given, the
// acting staff ID. Whether the target is reachable from the order's current
// status is decided by the handler against live state.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	staffID *kernel.UUID,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setStaffID(staffID),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// StaffID returns the acting staff member's identifier, or nil.
func (c TransitionOrderCommand) StaffID() *kernel.UUID {
	if c.staffID == nil {
		return nil
	}
	staffID := *c.staffID
	return &staffID
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setStaffID(staffID *kernel.UUID) error {
	if staffID == nil {
		return nil
	}
	if err := staffID.Validate(); err != nil {
		return err
	}
	assigned := *staffID
	c.staffID = &assigned
	return nil
}
