package queries

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/history"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/clock"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetKitchenStatsQueryHandler computes the metrics snapshot for a window.
// Uses direct SQL for the history scan in the CQRS pattern, then feeds the
// restored records through the pure aggregator, so the same window always
// reproduces the same numbers.
//
// Example:
//
//	handler := NewGetKitchenStatsQueryHandler(db, services.NewStatsAggregator(), clock.System())
//	query, _ := NewGetKitchenStatsQuery(nil, nil, nil)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to compute kitchen stats: %v", err)
//	    return err
//	}
//	fmt.Printf("%d orders completed today\n", response.Stats.TotalOrders)
type GetKitchenStatsQueryHandler struct {
	db         *gorm.DB
	aggregator services.StatsAggregator
	clock      clock.Clock
}

// NewGetKitchenStatsQueryHandler creates a handler for statistics queries.
// Requires a GORM database connection for the history scan.
func NewGetKitchenStatsQueryHandler(
	db *gorm.DB,
	aggregator services.StatsAggregator,
	clk clock.Clock,
) GetKitchenStatsQueryHandler {
	return GetKitchenStatsQueryHandler{
		db:         db,
		aggregator: aggregator,
		clock:      clk,
	}
}

// Handle resolves the window, scans the matching history records and
// aggregates them. Staff-scoped queries additionally carry the member's
// performance score.
func (h GetKitchenStatsQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenStatsQuery,
) (GetKitchenStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetKitchenStatsQueryResponse{}, err
	}

	window, err := query.Window(h.clock.Now())
	if err != nil {
		return GetKitchenStatsQueryResponse{}, err
	}

	staffID := query.StaffID()
	records, err := fetchHistoryRecords(ctx, h.db, window.From(), window.To(), staffID)
	if err != nil {
		return GetKitchenStatsQueryResponse{}, err
	}

	response := GetKitchenStatsQueryResponse{
		From:    window.From(),
		To:      window.To(),
		StaffID: staffID,
		Stats:   h.aggregator.Aggregate(records, window, staffID),
	}

	if staffID != nil {
		score := h.aggregator.PerformanceScore(records, window, *staffID)
		response.PerformanceScore = &score
	}

	return response, nil
}

// fetchHistoryRecords scans cooking history rows completed inside [from, to)
// into domain records, optionally filtered to one staff member. Shared by the
// statistics and staff performance handlers.
func fetchHistoryRecords(
	ctx context.Context,
	db *gorm.DB,
	from, to time.Time,
	staffID *kernel.UUID,
) ([]*history.Record, error) {
	sqlQuery := `
		SELECT
			id,
			order_id,
			order_number,
			item_summary,
			staff_id,
			estimated_prep_minutes,
			actual_prep_minutes,
			started_at,
			completed_at
		FROM cooking_history
		WHERE completed_at >= ? AND completed_at < ?`
	args := []any{from, to}

	if staffID != nil {
		sqlQuery += ` AND staff_id = ?`
		args = append(args, staffID.Bytes())
	}
	sqlQuery += ` ORDER BY completed_at`

	rows, err := db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*history.Record, 0)

	for rows.Next() {
		var id, orderID uuid.UUID
		var staff uuid.NullUUID
		var orderNumber, itemSummary string
		var estimatedPrepMinutes, actualPrepMinutes int
		var startedAt, completedAt time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&orderNumber,
			&itemSummary,
			&staff,
			&estimatedPrepMinutes,
			&actualPrepMinutes,
			&startedAt,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}

		record, restoreErr := restoreHistoryRecord(
			id, orderID, staff,
			orderNumber, itemSummary,
			estimatedPrepMinutes, actualPrepMinutes,
			startedAt, completedAt,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func restoreHistoryRecord(
	id, orderID uuid.UUID,
	staff uuid.NullUUID,
	orderNumber, itemSummary string,
	estimatedPrepMinutes, actualPrepMinutes int,
	startedAt, completedAt time.Time,
) (*history.Record, error) {
	recordID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	recordOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return nil, err
	}

	var recordStaffID *kernel.UUID
	if staff.Valid {
		staffUUID, staffErr := kernel.UUIDFromBytes(staff.UUID[:])
		if staffErr != nil {
			return nil, staffErr
		}
		recordStaffID = &staffUUID
	}

	return history.RestoreRecord(
		recordID,
		recordOrderID,
		orderNumber,
		itemSummary,
		recordStaffID,
		estimatedPrepMinutes,
		actualPrepMinutes,
		startedAt,
		completedAt,
	)
}
