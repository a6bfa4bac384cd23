package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetOrderTimingQueryIsNotConstructed = errors.New(
		"GetOrderTimingQuery must be created via NewGetOrderTimingQuery constructor",
	)
)

// GetOrderTimingQuery requests the live timing evaluation for one active
// order: elapsed time, remaining SLA budget and the overdue flag.
type GetOrderTimingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTimingQuery creates a timing query for one order.
func NewGetOrderTimingQuery(orderID kernel.UUID) (GetOrderTimingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTimingQuery{}, err
	}
	return GetOrderTimingQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTimingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTimingQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to evaluate.
func (q GetOrderTimingQuery) OrderID() kernel.UUID {
	return q.orderID
}
