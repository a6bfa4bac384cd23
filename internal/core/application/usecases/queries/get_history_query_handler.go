package queries

import (
	"context"

	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/clock"
)

// GetHistoryQueryHandler serves the cooking history feed: the immutable
// record of every completed preparation, ordered by completion time. It
// reads through the repository port; the statistics handler keeps its own
// raw scan because it feeds the aggregator in bulk.
//
// Example:
//
//	handler := NewGetHistoryQueryHandler(historyRepository, clock.System())
//	query, _ := NewGetHistoryQuery(nil, nil, nil)
//
//	feed, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to read history: %v", err)
//	    return err
//	}
//	fmt.Printf("%d completions today\n", len(feed))
type GetHistoryQueryHandler struct {
	historyRepository ports.HistoryRepository
	clock             clock.Clock
}

// NewGetHistoryQueryHandler creates a handler for history feed queries.
func NewGetHistoryQueryHandler(
	historyRepository ports.HistoryRepository,
	clk clock.Clock,
) GetHistoryQueryHandler {
	return GetHistoryQueryHandler{historyRepository: historyRepository, clock: clk}
}

// Handle executes the query and returns the matching records sorted by
// completion time.
func (h GetHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetHistoryQuery,
) ([]HistoryRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	window, err := query.Window(h.clock.Now())
	if err != nil {
		return nil, err
	}

	records, err := h.historyRepository.GetInWindow(ctx, window.From(), window.To(), query.StaffID())
	if err != nil {
		return nil, err
	}

	responses := make([]HistoryRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, HistoryRecordResponse{
			ID:                   record.ID(),
			OrderID:              record.OrderID(),
			OrderNumber:          record.OrderNumber(),
			ItemSummary:          record.ItemSummary(),
			StaffID:              record.StaffID(),
			EstimatedPrepMinutes: record.EstimatedPrepMinutes(),
			ActualPrepMinutes:    record.ActualPrepMinutes(),
			StartedAt:            record.StartedAt(),
			CompletedAt:          record.CompletedAt(),
			WithinEstimate:       record.WithinEstimate(),
		})
	}

	return responses, nil
}
