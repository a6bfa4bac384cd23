package staffrepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/staff"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements StaffRepository using GORM.
// Read-only: the staffing system owns the table.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// Get retrieves one roster member by ID.
// Returns errs.ObjectNotFoundError when the member is unknown.
func (r *GormStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Member, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StaffDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff member", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the full roster sorted by name.
func (r *GormStaffRepository) GetAll(ctx context.Context) ([]*staff.Member, error) {
	var dtos []StaffDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	members := make([]*staff.Member, 0, len(dtos))
	for _, dto := range dtos {
		member, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, nil
}
