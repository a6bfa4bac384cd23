package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/staff"
)

// StaffRepository reads the staff roster. The kitchen core never creates or
// edits roster entries; the table is maintained by the staffing system and
// consumed here for attribution and per-member performance.
type StaffRepository interface {
	// Get retrieves one roster member by ID.
	// Returns errs.ObjectNotFoundError when the member is unknown.
	Get(ctx context.Context, id kernel.UUID) (*staff.Member, error)

	// GetAll retrieves the full roster sorted by name.
	GetAll(ctx context.Context) ([]*staff.Member, error)
}
