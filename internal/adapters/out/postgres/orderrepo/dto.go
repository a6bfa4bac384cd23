// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items are stored as a JSON column; the archived flag keeps served
// orders out of active queries while retaining the row for audit.
type OrderDTO struct {
	ID                   uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrderNumber          string        `gorm:"uniqueIndex"`
	Origin               string        `gorm:"type:varchar(16)"`
	TableRef             string        `gorm:"type:varchar(64)"`
	Items                []LineItemDTO `gorm:"serializer:json"`
	Priority             string        `gorm:"type:varchar(16)"`
	Status               int           `gorm:"index"`
	ReceivedAt           time.Time
	StartedAt            *time.Time
	CompletedAt          *time.Time
	EstimatedPrepMinutes int
	ActualPrepMinutes    *int
	AssignedStaffID      *uuid.UUID `gorm:"type:uuid;index"`
	Archived             bool       `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is the JSON shape of one line item inside the items column.
type LineItemDTO struct {
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	Notes     string   `json:"notes,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var staffID *uuid.UUID
	if id := aggregate.AssignedStaff(); id != nil {
		raw := id.Bytes()
		staffID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, LineItemDTO{
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Notes:     item.Notes(),
			Modifiers: item.Modifiers(),
		})
	}

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		OrderNumber:          aggregate.OrderNumber(),
		Origin:               aggregate.Origin().String(),
		TableRef:             aggregate.TableRef(),
		Items:                itemDTOs,
		Priority:             aggregate.Priority().String(),
		Status:               int(aggregate.Status()),
		ReceivedAt:           aggregate.ReceivedAt(),
		StartedAt:            aggregate.StartedAt(),
		CompletedAt:          aggregate.CompletedAt(),
		EstimatedPrepMinutes: aggregate.EstimatedPrepMinutes(),
		ActualPrepMinutes:    aggregate.ActualPrepMinutes(),
		AssignedStaffID:      staffID,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which re-checks
// the timestamp invariants against the stored status.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	origin, err := order.OriginFromString(dto.Origin)
	if err != nil {
		return nil, err
	}

	priority, err := order.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(itemDTO.Name, itemDTO.Quantity, itemDTO.Notes, itemDTO.Modifiers)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var staffID *kernel.UUID
	if dto.AssignedStaffID != nil {
		sID, staffErr := kernel.UUIDFromBytes((*dto.AssignedStaffID)[:])
		if staffErr != nil {
			return nil, staffErr
		}
		staffID = &sID
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		origin,
		dto.TableRef,
		items,
		priority,
		order.Status(dto.Status),
		dto.ReceivedAt,
		dto.StartedAt,
		dto.CompletedAt,
		dto.EstimatedPrepMinutes,
		dto.ActualPrepMinutes,
		staffID,
	)
}
