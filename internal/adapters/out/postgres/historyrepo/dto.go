// Package historyrepo persists the append-only cooking history log.
// Records are written exactly once, in the same transaction as the order's
// ready transition, and are never updated or deleted afterwards.
package historyrepo

import (
	"time"

	"kitchen/internal/core/domain/model/history"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HistoryRecordDTO represents the database structure for one completed
// preparation. The order fields are denormalized at write time so the log
// stays readable after the order itself is archived.
type HistoryRecordDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OrderNumber          string
	ItemSummary          string
	StaffID              *uuid.UUID `gorm:"type:uuid;index"`
	EstimatedPrepMinutes int
	ActualPrepMinutes    int
	StartedAt            time.Time
	CompletedAt          time.Time `gorm:"index"`
}

// TableName specifies the database table name for history records.
func (HistoryRecordDTO) TableName() string {
	return "cooking_history"
}

// fromDomain converts a history record to its database representation.
func fromDomain(record *history.Record) HistoryRecordDTO {
	var staffID *uuid.UUID
	if id := record.StaffID(); id != nil {
		raw := id.Bytes()
		staffID = &raw
	}

	return HistoryRecordDTO{
		ID:                   record.ID().Bytes(),
		OrderID:              record.OrderID().Bytes(),
		OrderNumber:          record.OrderNumber(),
		ItemSummary:          record.ItemSummary(),
		StaffID:              staffID,
		EstimatedPrepMinutes: record.EstimatedPrepMinutes(),
		ActualPrepMinutes:    record.ActualPrepMinutes(),
		StartedAt:            record.StartedAt(),
		CompletedAt:          record.CompletedAt(),
	}
}

// toDomain converts a database DTO to a history record using RestoreRecord.
func toDomain(dto HistoryRecordDTO) (*history.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var staffID *kernel.UUID
	if dto.StaffID != nil {
		sID, staffErr := kernel.UUIDFromBytes((*dto.StaffID)[:])
		if staffErr != nil {
			return nil, staffErr
		}
		staffID = &sID
	}

	return history.RestoreRecord(
		id,
		orderID,
		dto.OrderNumber,
		dto.ItemSummary,
		staffID,
		dto.EstimatedPrepMinutes,
		dto.ActualPrepMinutes,
		dto.StartedAt,
		dto.CompletedAt,
	)
}
