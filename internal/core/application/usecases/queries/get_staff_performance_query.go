package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetStaffPerformanceQueryIsNotConstructed = errors.New(
		"GetStaffPerformanceQuery must be created via NewGetStaffPerformanceQuery constructor",
	)
)

// GetStaffPerformanceQuery requests one roster member's metrics for a time
// window: their completed orders, efficiency and the derived performance
// score. The member must exist on the roster; attribution to unknown IDs is
// a not-found, unlike the anonymous staff filter on the statistics query.
type GetStaffPerformanceQuery struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID
	from    *time.Time
	to      *time.Time

	guard guard.ConstructorGuard
}

// NewGetStaffPerformanceQuery creates a performance query. Window bounds
// must be given together or not at all, and the end must be after the start.
func NewGetStaffPerformanceQuery(staffID kernel.UUID, from, to *time.Time) (GetStaffPerformanceQuery, error) {
	query := GetStaffPerformanceQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setStaffID(staffID),
		query.setWindow(from, to),
	); err != nil {
		return GetStaffPerformanceQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaffPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffPerformanceQueryIsNotConstructed)
}

// StaffID returns the member to evaluate.
func (q GetStaffPerformanceQuery) StaffID() kernel.UUID {
	return q.staffID
}

// Window resolves the evaluation window, defaulting to the calendar day
// containing now when no bounds were given.
func (q GetStaffPerformanceQuery) Window(now time.Time) (services.Window, error) {
	if q.from == nil || q.to == nil {
		return services.DayWindow(now), nil
	}
	return services.NewWindow(*q.from, *q.to)
}

func (q *GetStaffPerformanceQuery) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	q.staffID = staffID
	return nil
}

func (q *GetStaffPerformanceQuery) setWindow(from, to *time.Time) error {
	if from == nil && to == nil {
		return nil
	}
	if from == nil || to == nil {
		return errors.New("window bounds must be given together")
	}
	if _, err := services.NewWindow(*from, *to); err != nil {
		return err
	}
	start := *from
	end := *to
	q.from = &start
	q.to = &end
	return nil
}

// GetStaffPerformanceQueryResponse carries the member's roster entry next to
// their metrics for the window.
type GetStaffPerformanceQueryResponse struct {
	Member           StaffMemberResponse
	From             time.Time
	To               time.Time
	Stats            services.KitchenStats
	PerformanceScore float64
}
