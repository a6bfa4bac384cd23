package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a single unit of kitchen work. It is the aggregate root
// that owns the order lifecycle from intake through preparation to serving.
//
// Order maintains these invariants:
//   - status only ever advances received -> preparing -> ready -> served
//   - startedAt is set exactly once, on the transition into preparing
//   - completedAt is set exactly once, on the transition into ready
//   - actualPrepMinutes is derived at the ready transition and never negative
//   - staff assignment happens at most once (first assignment wins)
//   - identity, origin, items, priority and the SLA estimate are immutable
//     after creation
//
// All fields are private; state changes go through the transition methods so
// the invariants are enforced at a single choke point.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-readable label shown to staff
	orderNumber string

	// origin records where the order came from (dine-in, takeaway, delivery)
	origin Origin

	// tableRef is an optional table or customer reference
	tableRef string

	// items is the ordered list of dishes to prepare
	items []LineItem

	// priority is normal or urgent, fixed at creation
	priority Priority

	// status is the current state in the order lifecycle
	status Status

	// receivedAt is the intake timestamp
	receivedAt time.Time

	// startedAt is set once, when preparation starts
	startedAt *time.Time

	// completedAt is set once, when the order becomes ready
	completedAt *time.Time

	// estimatedPrepMinutes is the SLA target from menu/recipe data
	estimatedPrepMinutes int

	// actualPrepMinutes is derived at the ready transition, clamped to >= 0
	actualPrepMinutes *int

	// assignedStaffID references the cook who started preparation
	assignedStaffID *kernel.UUID

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Received status with validation.
// This is the Order Intake entry point: all immutable attributes are fixed
// here and receivedAt records the intake instant.
//
// The estimate must be a positive number of minutes and at least one line
// item is required.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	origin Origin,
	tableRef string,
	items []LineItem,
	priority Priority,
	estimatedPrepMinutes int,
	receivedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Received,
		tableRef:      tableRef,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setOrigin(origin),
		o.setItems(items),
		o.setPriority(priority),
		o.setEstimatedPrepMinutes(estimatedPrepMinutes),
		o.setReceivedAt(receivedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without applying the
// intake defaults. It re-checks the timestamp invariants so a corrupted row
// can never produce an order that violates the state machine:
// startedAt must be present iff the status is preparing or later, completedAt
// and actualPrepMinutes iff the status is ready or later.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	origin Origin,
	tableRef string,
	items []LineItem,
	priority Priority,
	status Status,
	receivedAt time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
	estimatedPrepMinutes int,
	actualPrepMinutes *int,
	assignedStaffID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		status:        status,
		tableRef:      tableRef,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setOrigin(origin),
		o.setItems(items),
		o.setPriority(priority),
		o.setEstimatedPrepMinutes(estimatedPrepMinutes),
		o.setReceivedAt(receivedAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if assignedStaffID != nil {
		if err := assignedStaffID.Validate(); err != nil {
			return nil, err
		}
		staffID := *assignedStaffID
		o.assignedStaffID = &staffID
	}

	startedRequired := status == Preparing || status == Ready || status == Served
	if startedRequired != (startedAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"startedAt",
			fmt.Errorf("startedAt presence does not match status %s", status),
		)
	}
	completedRequired := status == Ready || status == Served
	if completedRequired != (completedAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"completedAt",
			fmt.Errorf("completedAt presence does not match status %s", status),
		)
	}
	if (completedAt != nil) != (actualPrepMinutes != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"actualPrepMinutes",
			fmt.Errorf("actualPrepMinutes presence does not match completedAt"),
		)
	}
	if actualPrepMinutes != nil && *actualPrepMinutes < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"actualPrepMinutes",
			fmt.Errorf("%d is negative", *actualPrepMinutes),
		)
	}

	if startedAt != nil {
		started := *startedAt
		o.startedAt = &started
	}
	if completedAt != nil {
		completed := *completedAt
		o.completedAt = &completed
	}
	if actualPrepMinutes != nil {
		actual := *actualPrepMinutes
		o.actualPrepMinutes = &actual
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order label.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Origin returns where the order came from.
func (o *Order) Origin() Origin {
	return o.origin
}

// TableRef returns the optional table or customer reference.
func (o *Order) TableRef() string {
	return o.tableRef
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Priority returns the order's priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ReceivedAt returns the intake timestamp.
func (o *Order) ReceivedAt() time.Time {
	return o.receivedAt
}

// StartedAt returns the preparation start timestamp.
// Returns nil while the order is still in Received status.
func (o *Order) StartedAt() *time.Time {
	if o.startedAt == nil {
		return nil
	}
	started := *o.startedAt
	return &started
}

// CompletedAt returns the preparation completion timestamp.
// Returns nil until the order reaches Ready status.
func (o *Order) CompletedAt() *time.Time {
	if o.completedAt == nil {
		return nil
	}
	completed := *o.completedAt
	return &completed
}

// EstimatedPrepMinutes returns the SLA target in minutes.
func (o *Order) EstimatedPrepMinutes() int {
	return o.estimatedPrepMinutes
}

// ActualPrepMinutes returns the measured preparation duration in whole
// minutes. Returns nil until the order reaches Ready status.
func (o *Order) ActualPrepMinutes() *int {
	if o.actualPrepMinutes == nil {
		return nil
	}
	actual := *o.actualPrepMinutes
	return &actual
}

// AssignedStaff returns the ID of the cook who started preparation.
// Returns nil if no staff member was recorded.
func (o *Order) AssignedStaff() *kernel.UUID {
	if o.assignedStaffID == nil {
		return nil
	}
	staffID := *o.assignedStaffID
	return &staffID
}

// ItemSummary renders the line items as a single display string,
// e.g. "2x Pasta, 1x Tiramisu". Used for the cooking history record.
func (o *Order) ItemSummary() string {
	parts := make([]string, len(o.items))
	for i, item := range o.items {
		parts[i] = item.String()
	}
	return strings.Join(parts, ", ")
}

// StartPreparation transitions the order from Received to Preparing.
//
// Business rules:
//   - the transition must be the immediate successor of the current status
//   - startedAt is recorded exactly once, from now
//   - staffID (when given) becomes the assigned cook; the first assignment
//     wins and later attempts through this method are ignored
//
// Returns an errs.InvalidTransitionError if the order is not in Received
// status.
func (o *Order) StartPreparation(staffID *kernel.UUID, now time.Time) error {
	if staffID != nil {
		if err := staffID.Validate(); err != nil {
			return err
		}
	}

	newStatus, err := o.status.TransitionTo(Preparing)
	if err != nil {
		return err
	}

	if o.startedAt == nil {
		started := now
		o.startedAt = &started
	}
	if o.assignedStaffID == nil && staffID != nil {
		assigned := *staffID
		o.assignedStaffID = &assigned
	}

	o.status = newStatus
	return nil
}

// MarkReady transitions the order from Preparing to Ready and derives the
// measured preparation time.
//
// Business rules:
//   - the transition must be the immediate successor of the current status
//   - startedAt must already be set; a missing start timestamp is a
//     defended-against errs.PreconditionFailedError
//   - completedAt is recorded exactly once, from now
//   - actualPrepMinutes = floor(completedAt - startedAt) in minutes,
//     clamped to 0 if clock skew would make it negative
//
// The caller appends the cooking history record in the same transaction as
// persisting this state change so the two can never diverge.
func (o *Order) MarkReady(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Ready)
	if err != nil {
		return err
	}

	if o.startedAt == nil {
		return errs.NewPreconditionFailedErrorWithCause(
			"startedAt",
			errors.New("preparation was never started"),
		)
	}

	if o.completedAt == nil {
		completed := now
		o.completedAt = &completed
	}
	if o.actualPrepMinutes == nil {
		actual := int(o.completedAt.Sub(*o.startedAt).Minutes())
		if actual < 0 {
			actual = 0
		}
		o.actualPrepMinutes = &actual
	}

	o.status = newStatus
	return nil
}

// MarkServed transitions the order from Ready to Served.
// No further timestamps are computed; after this transition commits the
// order is archived out of the active store.
func (o *Order) MarkServed() error {
	newStatus, err := o.status.TransitionTo(Served)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// IsLate reports the retrospective SLA comparison for completed orders:
// true when the measured preparation time exceeded the estimate.
// Always false before the order reaches Ready.
func (o *Order) IsLate() bool {
	return o.actualPrepMinutes != nil && *o.actualPrepMinutes > o.estimatedPrepMinutes
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if strings.TrimSpace(orderNumber) == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setOrigin(origin Origin) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	o.origin = origin
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setEstimatedPrepMinutes(estimated int) error {
	if estimated <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimatedPrepMinutes",
			fmt.Errorf("%d is not greater than 0", estimated),
		)
	}
	o.estimatedPrepMinutes = estimated
	return nil
}

func (o *Order) setReceivedAt(receivedAt time.Time) error {
	if receivedAt.IsZero() {
		return errs.NewValueIsRequiredError("receivedAt")
	}
	o.receivedAt = receivedAt
	return nil
}
