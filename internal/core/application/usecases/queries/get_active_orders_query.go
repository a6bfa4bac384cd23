// Package queries contains read-side operations in the CQRS architecture.
// Query handlers never mutate state: they read the stores, derive transient
// views (timing, statistics) through the pure domain services and return
// response models for the presentation layer.
package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves every order still in the active store,
// each paired with its current timing evaluation. Optionally restricted to
// one status; the timing monitor asks for Preparing only.
//
// Example:
//
//	query := NewGetActiveOrdersQueryWithStatus(order.Preparing)
//	views, err := handler.Handle(ctx, query)
//	for _, view := range views {
//	    if view.Timing.IsOverdue {
//	        fmt.Printf("order %s is overdue\n", view.OrderNumber)
//	    }
//	}
type GetActiveOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for all active orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetActiveOrdersQueryWithStatus creates a query for active orders in one
// status. Returns an error for invalid status values.
func NewGetActiveOrdersQueryWithStatus(status order.Status) (GetActiveOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}
	return GetActiveOrdersQuery{
		status: &status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetActiveOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	status := *q.status
	return &status
}

// ActiveOrderResponse is one active order with its transient timing view.
type ActiveOrderResponse struct {
	ID                   kernel.UUID
	OrderNumber          string
	Origin               order.Origin
	TableRef             string
	Items                []order.LineItem
	Priority             order.Priority
	Status               order.Status
	ReceivedAt           time.Time
	StartedAt            *time.Time
	CompletedAt          *time.Time
	EstimatedPrepMinutes int
	ActualPrepMinutes    *int
	AssignedStaffID      *kernel.UUID
	Timing               services.TimingView
}
