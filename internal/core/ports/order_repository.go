// Package ports defines repository interfaces for the kitchen domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the active order store.
// It holds every order that has not yet been archived; all mutation flows
// through the transition command handler, which is the store's only writer.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError for unknown or archived orders.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and takes its row lock for the
	// duration of the surrounding transaction. Concurrent transition
	// attempts on the same order serialize on this lock; requests for
	// different orders proceed independently.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves every non-archived order, whatever its status.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllInPreparingStatus retrieves the orders the timing monitor
	// evaluates each tick: active orders currently being prepared.
	GetAllInPreparingStatus(ctx context.Context) ([]*order.Order, error)

	// Archive removes a served order from the active store. The row is
	// retained for audit but no longer appears in any active query.
	Archive(ctx context.Context, id kernel.UUID) error
}
