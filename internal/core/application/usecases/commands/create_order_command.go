package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents an order intake request: a new preparation
// order arriving from the point-of-sale front end. The command carries every
// immutable order attribute; status and timestamps are assigned by the
// handler.
//
// Example:
//
//	item, _ := order.NewLineItem("Carbonara", 2, "extra pepper", nil)
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), "ORD-042", order.OriginDineIn, "table 7",
//	    []order.LineItem{item}, order.PriorityNormal, 15,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	orderNumber          string
	origin               order.Origin
	tableRef             string
	items                []order.LineItem
	priority             order.Priority
	estimatedPrepMinutes int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new kitchen order.
// Validates identity, origin, priority, the line items and the SLA estimate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	origin order.Origin,
	tableRef string,
	items []order.LineItem,
	priority order.Priority,
	estimatedPrepMinutes int,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		tableRef: tableRef,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setOrigin(origin),
		cmd.setItems(items),
		cmd.setPriority(priority),
		cmd.setEstimatedPrepMinutes(estimatedPrepMinutes),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-readable order label.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Origin returns where the order came from.
func (c CreateOrderCommand) Origin() order.Origin {
	return c.origin
}

// TableRef returns the optional table or customer reference.
func (c CreateOrderCommand) TableRef() string {
	return c.tableRef
}

// Items returns a copy of the order's line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	items := make([]order.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Priority returns the order's priority.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// EstimatedPrepMinutes returns the SLA target in minutes.
func (c CreateOrderCommand) EstimatedPrepMinutes() int {
	return c.estimatedPrepMinutes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setOrigin(origin order.Origin) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	c.origin = origin
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = make([]order.LineItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setEstimatedPrepMinutes(estimated int) error {
	if estimated <= 0 {
		return errs.NewValueIsInvalidError("estimatedPrepMinutes")
	}
	c.estimatedPrepMinutes = estimated
	return nil
}
