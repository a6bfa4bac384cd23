// Package staff models the kitchen-facing view of the external staff roster.
// This core never creates or edits staff records; it reads identities for
// order attribution and derives per-member performance from cooking history.
package staff

import (
	"errors"
	"fmt"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrMemberIsNotConstructed is returned when a Member instance was not created
// through the NewMember factory method.
var ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember")

// Role is a kitchen position.
type Role int

const (
	RoleUnknown Role = iota
	RoleHeadChef
	RoleSousChef
	RoleLineCook
	RolePrepCook
)

func getValidRoleStrings() map[Role]string {
	return map[Role]string{
		RoleHeadChef: "head_chef",
		RoleSousChef: "sous_chef",
		RoleLineCook: "line_cook",
		RolePrepCook: "prep_cook",
	}
}

// RoleFromString parses a role from its string representation.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Shift is a working period on the roster.
type Shift int

const (
	ShiftUnknown Shift = iota
	ShiftMorning
	ShiftAfternoon
	ShiftNight
)

func getValidShiftStrings() map[Shift]string {
	return map[Shift]string{
		ShiftMorning:   "morning",
		ShiftAfternoon: "afternoon",
		ShiftNight:     "night",
	}
}

// ShiftFromString parses a shift from its string representation.
func ShiftFromString(s string) (Shift, error) {
	for shift, str := range getValidShiftStrings() {
		if str == s {
			return shift, nil
		}
	}
	return ShiftUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shift",
		fmt.Errorf("%q is not a valid shift", s),
	)
}

// Validate checks if the Shift value is valid.
func (s Shift) Validate() error {
	if _, ok := getValidShiftStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shift",
			fmt.Errorf("%d is not a valid shift", s),
		)
	}
	return nil
}

// String returns the human-readable name of the shift.
func (s Shift) String() string {
	if str, ok := getValidShiftStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Availability is a roster status.
type Availability int

const (
	AvailabilityUnknown Availability = iota
	AvailabilityActive
	AvailabilityOff
	AvailabilityLeave
)

func getValidAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityActive: "active",
		AvailabilityOff:    "off",
		AvailabilityLeave:  "leave",
	}
}

// AvailabilityFromString parses an availability from its string representation.
func AvailabilityFromString(s string) (Availability, error) {
	for availability, str := range getValidAvailabilityStrings() {
		if str == s {
			return availability, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"availability",
		fmt.Errorf("%q is not a valid availability", s),
	)
}

// Validate checks if the Availability value is valid.
func (a Availability) Validate() error {
	if _, ok := getValidAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"availability",
			fmt.Errorf("%d is not a valid availability", a),
		)
	}
	return nil
}

// String returns the human-readable name of the availability.
func (a Availability) String() string {
	if str, ok := getValidAvailabilityStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// Member is the read model of one staff roster entry. The performance score
// is deliberately absent: it is derived from cooking history on demand, never
// stored here as a source of truth.
type Member struct {
	id            kernel.UUID
	name          string
	role          Role
	shift         Shift
	availability  Availability
	isConstructed bool
}

// NewMember creates a validated roster read model entry.
func NewMember(id kernel.UUID, name string, role Role, shift Shift, availability Availability) (*Member, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
		shift.Validate(),
		availability.Validate(),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Member{
		id:            id,
		name:          name,
		role:          role,
		shift:         shift,
		availability:  availability,
		isConstructed: true,
	}, nil
}

// Validate ensures the Member was created through NewMember.
func (m *Member) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMemberIsNotConstructed
	}
	return nil
}

// ID returns the member's unique identifier.
func (m *Member) ID() kernel.UUID {
	return m.id
}

// Name returns the member's display name.
func (m *Member) Name() string {
	return m.name
}

// Role returns the member's kitchen position.
func (m *Member) Role() Role {
	return m.role
}

// Shift returns the member's working period.
func (m *Member) Shift() Shift {
	return m.shift
}

// Availability returns the member's roster status.
func (m *Member) Availability() Availability {
	return m.availability
}
