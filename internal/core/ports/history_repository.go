package ports

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/history"
	"kitchen/internal/core/domain/model/kernel"
)

// HistoryRepository defines the persistence contract for the append-only
// cooking history log. Records are written exactly once, inside the same
// transaction as the order's ready transition, and are never updated or
// deleted; the interface deliberately exposes no mutation beyond Add.
type HistoryRepository interface {
	// Add appends a new cooking history record.
	Add(ctx context.Context, record *history.Record) error

	// GetInWindow retrieves the records whose completedAt falls in
	// [from, to), optionally filtered to one staff member.
	GetInWindow(ctx context.Context, from, to time.Time, staffID *kernel.UUID) ([]*history.Record, error)

	// GetByOrder retrieves the record written for one order.
	// Returns errs.ObjectNotFoundError when the order never reached ready.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*history.Record, error)
}
