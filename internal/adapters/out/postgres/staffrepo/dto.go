// Package staffrepo reads the staff roster table. The roster is maintained
// by the external staffing system; this adapter only maps rows back into the
// domain read model.
package staffrepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffDTO represents the database structure of one staff roster entry.
// The enums are stored as their integer values, same as order status.
type StaffDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Role         int       `gorm:"not null"`
	Shift        int       `gorm:"not null"`
	Availability int       `gorm:"not null"`
}

// TableName specifies the database table name for staff roster entries.
func (StaffDTO) TableName() string {
	return "staff"
}

// toDomain converts a database DTO to a roster member, re-validating the
// stored enum values through NewMember.
func toDomain(dto StaffDTO) (*staff.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.NewMember(
		id,
		dto.Name,
		staff.Role(dto.Role),
		staff.Shift(dto.Shift),
		staff.Availability(dto.Availability),
	)
}
