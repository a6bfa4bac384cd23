// Package history contains the CookingHistoryRecord: the immutable
// completed-order fact written once at the ready transition and used as the
// sole input for kitchen statistics. Records are append-only; they are never
// mutated or deleted.
package history

import (
	"errors"
	"fmt"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not created
	// through the NewRecord or RestoreRecord factory methods.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

	// ErrOrderIsNotReady is returned when a record is built from an order that
	// has not completed preparation.
	ErrOrderIsNotReady = errors.New("history record requires an order that reached ready status")
)

// Record is one completed-order fact. It captures everything statistics
// need (the SLA estimate, the measured preparation time, the timestamps and
// the attributed cook) so aggregates never have to read back into the
// active order store.
type Record struct {
	id                   kernel.UUID
	orderID              kernel.UUID
	orderNumber          string
	itemSummary          string
	staffID              *kernel.UUID
	estimatedPrepMinutes int
	actualPrepMinutes    int
	startedAt            time.Time
	completedAt          time.Time
	isConstructed        bool
}

// NewRecord builds the history record for an order that just reached Ready.
// It copies the timing facts out of the aggregate; the caller persists the
// record in the same transaction as the status change so the two are atomic.
func NewRecord(id kernel.UUID, o *order.Order) (*Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.CompletedAt() == nil || o.StartedAt() == nil || o.ActualPrepMinutes() == nil {
		return nil, ErrOrderIsNotReady
	}

	return &Record{
		id:                   id,
		orderID:              o.ID(),
		orderNumber:          o.OrderNumber(),
		itemSummary:          o.ItemSummary(),
		staffID:              o.AssignedStaff(),
		estimatedPrepMinutes: o.EstimatedPrepMinutes(),
		actualPrepMinutes:    *o.ActualPrepMinutes(),
		startedAt:            *o.StartedAt(),
		completedAt:          *o.CompletedAt(),
		isConstructed:        true,
	}, nil
}

// RestoreRecord reconstructs a Record from persistence, re-checking the
// invariants statistics depend on (positive estimate, non-negative actual,
// both timestamps present).
func RestoreRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	orderNumber string,
	itemSummary string,
	staffID *kernel.UUID,
	estimatedPrepMinutes int,
	actualPrepMinutes int,
	startedAt time.Time,
	completedAt time.Time,
) (*Record, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if staffID != nil {
		if err := staffID.Validate(); err != nil {
			return nil, err
		}
	}
	if estimatedPrepMinutes <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"estimatedPrepMinutes",
			fmt.Errorf("%d is not greater than 0", estimatedPrepMinutes),
		)
	}
	if actualPrepMinutes < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"actualPrepMinutes",
			fmt.Errorf("%d is negative", actualPrepMinutes),
		)
	}
	if startedAt.IsZero() || completedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("startedAt/completedAt")
	}

	r := &Record{
		id:                   id,
		orderID:              orderID,
		orderNumber:          orderNumber,
		itemSummary:          itemSummary,
		estimatedPrepMinutes: estimatedPrepMinutes,
		actualPrepMinutes:    actualPrepMinutes,
		startedAt:            startedAt,
		completedAt:          completedAt,
		isConstructed:        true,
	}
	if staffID != nil {
		staff := *staffID
		r.staffID = &staff
	}

	return r, nil
}

// Validate ensures the Record was created through a factory method.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// OrderID returns the completed order's identifier.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// OrderNumber returns the completed order's human-readable label.
func (r *Record) OrderNumber() string {
	return r.orderNumber
}

// ItemSummary returns the display summary of what was cooked.
func (r *Record) ItemSummary() string {
	return r.itemSummary
}

// StaffID returns the attributed cook's identifier, or nil when the order
// was never assigned.
func (r *Record) StaffID() *kernel.UUID {
	if r.staffID == nil {
		return nil
	}
	staff := *r.staffID
	return &staff
}

// EstimatedPrepMinutes returns the SLA target the order was cooked against.
func (r *Record) EstimatedPrepMinutes() int {
	return r.estimatedPrepMinutes
}

// ActualPrepMinutes returns the measured preparation time in whole minutes.
func (r *Record) ActualPrepMinutes() int {
	return r.actualPrepMinutes
}

// StartedAt returns when preparation started.
func (r *Record) StartedAt() time.Time {
	return r.startedAt
}

// CompletedAt returns when the order became ready.
func (r *Record) CompletedAt() time.Time {
	return r.completedAt
}

// WithinEstimate reports whether the order met its SLA:
// actual preparation time no greater than the estimate.
func (r *Record) WithinEstimate() bool {
	return r.actualPrepMinutes <= r.estimatedPrepMinutes
}
