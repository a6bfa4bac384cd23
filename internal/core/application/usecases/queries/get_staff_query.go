package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/staff"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetStaffQueryIsNotConstructed = errors.New(
		"GetStaffQuery must be created via NewGetStaffQuery constructor",
	)
)

// GetStaffQuery retrieves the staff roster as the kitchen sees it: the
// members orders can be attributed to.
type GetStaffQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStaffQuery creates a roster query.
func NewGetStaffQuery() GetStaffQuery {
	return GetStaffQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffQueryIsNotConstructed)
}

// StaffMemberResponse is one roster entry.
type StaffMemberResponse struct {
	ID           kernel.UUID
	Name         string
	Role         staff.Role
	Shift        staff.Shift
	Availability staff.Availability
}
