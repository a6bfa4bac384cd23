package queries

import (
	"context"

	"kitchen/internal/core/domain/model/staff"
	"kitchen/internal/core/ports"
)

// GetStaffQueryHandler serves the staff roster read model.
type GetStaffQueryHandler struct {
	staffRepository ports.StaffRepository
}

// NewGetStaffQueryHandler creates a handler for roster queries.
func NewGetStaffQueryHandler(staffRepository ports.StaffRepository) GetStaffQueryHandler {
	return GetStaffQueryHandler{staffRepository: staffRepository}
}

// Handle returns the roster sorted by name.
func (h GetStaffQueryHandler) Handle(
	ctx context.Context,
	query GetStaffQuery,
) ([]StaffMemberResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members, err := h.staffRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]StaffMemberResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, memberToResponse(member))
	}

	return responses, nil
}

func memberToResponse(member *staff.Member) StaffMemberResponse {
	return StaffMemberResponse{
		ID:           member.ID(),
		Name:         member.Name(),
		Role:         member.Role(),
		Shift:        member.Shift(),
		Availability: member.Availability(),
	}
}
