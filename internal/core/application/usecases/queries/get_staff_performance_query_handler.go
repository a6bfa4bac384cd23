package queries

import (
	"context"

	"kitchen/internal/core/domain/services"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/clock"

	"gorm.io/gorm"
)

// GetStaffPerformanceQueryHandler evaluates one roster member. It resolves
// the member through the roster first, so an unknown ID is a not-found
// rather than an all-zero score, then scans their history window and feeds
// the pure aggregator.
type GetStaffPerformanceQueryHandler struct {
	db              *gorm.DB
	staffRepository ports.StaffRepository
	aggregator      services.StatsAggregator
	clock           clock.Clock
}

// NewGetStaffPerformanceQueryHandler creates a handler for staff performance
// queries. Requires a GORM database connection for the history scan.
func NewGetStaffPerformanceQueryHandler(
	db *gorm.DB,
	staffRepository ports.StaffRepository,
	aggregator services.StatsAggregator,
	clk clock.Clock,
) GetStaffPerformanceQueryHandler {
	return GetStaffPerformanceQueryHandler{
		db:              db,
		staffRepository: staffRepository,
		aggregator:      aggregator,
		clock:           clk,
	}
}

// Handle resolves the member and the window, scans the attributed history
// records and derives the member's metrics and performance score.
func (h GetStaffPerformanceQueryHandler) Handle(
	ctx context.Context,
	query GetStaffPerformanceQuery,
) (GetStaffPerformanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStaffPerformanceQueryResponse{}, err
	}

	member, err := h.staffRepository.Get(ctx, query.StaffID())
	if err != nil {
		return GetStaffPerformanceQueryResponse{}, err
	}

	window, err := query.Window(h.clock.Now())
	if err != nil {
		return GetStaffPerformanceQueryResponse{}, err
	}

	staffID := query.StaffID()
	records, err := fetchHistoryRecords(ctx, h.db, window.From(), window.To(), &staffID)
	if err != nil {
		return GetStaffPerformanceQueryResponse{}, err
	}

	return GetStaffPerformanceQueryResponse{
		Member:           memberToResponse(member),
		From:             window.From(),
		To:               window.To(),
		Stats:            h.aggregator.Aggregate(records, window, &staffID),
		PerformanceScore: h.aggregator.PerformanceScore(records, window, staffID),
	}, nil
}
