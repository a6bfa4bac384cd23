package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetKitchenStatsQueryIsNotConstructed = errors.New(
		"GetKitchenStatsQuery must be created via NewGetKitchenStatsQuery constructor",
	)
)

// GetKitchenStatsQuery requests aggregated kitchen metrics for a time window.
// With no explicit window the handler defaults to the current calendar day.
// An optional staff ID scopes the metrics to that member and additionally
// yields their performance score.
//
// Example:
//
//	query, err := NewGetKitchenStatsQuery(nil, nil, &chefID)
//	if err != nil {
//	    return err
//	}
//	response, err := handler.Handle(ctx, query)
//	fmt.Printf("efficiency: %.1f%%\n", response.Stats.EfficiencyRate)
type GetKitchenStatsQuery struct { //nolint:recvcheck //using for validation
	from    *time.Time
	to      *time.Time
	staffID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetKitchenStatsQuery creates a statistics query. Window bounds must be
// given together or not at all, and the end must be after the start.
func NewGetKitchenStatsQuery(from, to *time.Time, staffID *kernel.UUID) (GetKitchenStatsQuery, error) {
	query := GetKitchenStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setWindow(from, to),
		query.setStaffID(staffID),
	); err != nil {
		return GetKitchenStatsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenStatsQueryIsNotConstructed)
}

// Window resolves the statistics window, defaulting to the calendar day
// containing now when no bounds were given.
func (q GetKitchenStatsQuery) Window(now time.Time) (services.Window, error) {
	if q.from == nil || q.to == nil {
		return services.DayWindow(now), nil
	}
	return services.NewWindow(*q.from, *q.to)
}

// StaffID returns the optional staff scope.
func (q GetKitchenStatsQuery) StaffID() *kernel.UUID {
	if q.staffID == nil {
		return nil
	}
	staffID := *q.staffID
	return &staffID
}

func (q *GetKitchenStatsQuery) setWindow(from, to *time.Time) error {
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

func (q *GetKitchenStatsQuery) setStaffID(staffID *kernel.UUID) error {
	if staffID == nil {
		return nil
	}
	if err := staffID.Validate(); err != nil {
		return err
	}
	scoped := *staffID
	q.staffID = &scoped
	return nil
}

// GetKitchenStatsQueryResponse carries the metrics snapshot together with the
// window it was computed over. PerformanceScore is set only for staff-scoped
// queries.
type GetKitchenStatsQueryResponse struct {
	From             time.Time
	To               time.Time
	StaffID          *kernel.UUID
	Stats            services.KitchenStats
	PerformanceScore *float64
}
