package historyrepo

import (
	"context"
	"errors"
	"time"

	"kitchen/internal/core/domain/model/history"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
// The log is append-only: the repository exposes no update or delete.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Add appends a new cooking history record. The unique index on order_id
// rejects a second record for the same order.
func (r *GormHistoryRepository) Add(ctx context.Context, record *history.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetInWindow retrieves the records whose completedAt falls in [from, to),
// optionally filtered to one staff member, sorted by completion time.
func (r *GormHistoryRepository) GetInWindow(
	ctx context.Context,
	from, to time.Time,
	staffID *kernel.UUID,
) ([]*history.Record, error) {
	query := r.db.WithContext(ctx).
		Where("completed_at >= ? AND completed_at < ?", from, to).
		Order("completed_at")
	if staffID != nil {
		query = query.Where("staff_id = ?", staffID.Bytes())
	}

	var dtos []HistoryRecordDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*history.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// GetByOrder retrieves the record written for one order.
// Returns errs.ObjectNotFoundError when the order never reached ready.
func (r *GormHistoryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*history.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto HistoryRecordDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cooking history record", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
