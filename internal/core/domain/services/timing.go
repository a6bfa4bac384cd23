package services

import (
	"math"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// TimingView is the transient result of one timing evaluation. It is
// recomputed on every monitor tick and discarded afterwards; nothing in it
// is ever persisted.
//
// RemainingMinutes and IsOverdue are only meaningful while the order is in
// Preparing status. For Received orders only ElapsedMinutes applies, and for
// Ready/Served orders IsLate carries the one-time retrospective comparison
// of actual against estimated preparation time.
type TimingView struct {
	OrderID kernel.UUID
	Status  order.Status

	// ElapsedMinutes is the whole minutes since preparation started
	// (or since intake, while the order is still in Received).
	ElapsedMinutes int

	// RemainingMinutes is the SLA budget left, rounded up to the next
	// whole minute for display. Zero once the order is overdue.
	RemainingMinutes int

	// IsOverdue is true iff the order is in Preparing status and its
	// elapsed time has reached or exceeded the estimate. The comparison
	// uses the un-rounded elapsed duration.
	IsOverdue bool

	// IsLate is the retrospective SLA verdict for completed orders:
	// actualPrepMinutes exceeded estimatedPrepMinutes.
	IsLate bool

	// ClockAnomaly is set when now preceded the reference timestamp and
	// the elapsed duration was clamped to zero. Callers log it; it is
	// never a hard failure.
	ClockAnomaly bool
}

// TimingCalculator derives elapsed/remaining/overdue views for orders.
// It is a pure domain service: it never mutates the order and holds no
// state between calls.
type TimingCalculator struct{}

// NewTimingCalculator creates a new TimingCalculator instance.
func NewTimingCalculator() TimingCalculator {
	return TimingCalculator{}
}

// ComputeTiming evaluates one order against the given instant.
//
// Rules:
//   - elapsed counts from startedAt when set, otherwise from receivedAt,
//     and is clamped to zero if the clock ran backwards (ClockAnomaly)
//   - remaining = max(0, estimate - elapsed); the un-rounded value decides
//     IsOverdue, the display value is rounded up to the next whole minute
//   - IsOverdue can only be true in Preparing status
//   - overdue is a monitoring signal only; no state is changed here and no
//     automatic transition ever follows from it
func (TimingCalculator) ComputeTiming(o *order.Order, now time.Time) (TimingView, error) {
	if err := o.Validate(); err != nil {
		return TimingView{}, err
	}

	reference := o.ReceivedAt()
	if startedAt := o.StartedAt(); startedAt != nil {
		reference = *startedAt
	}

	elapsed := now.Sub(reference)
	clockAnomaly := elapsed < 0
	if clockAnomaly {
		elapsed = 0
	}

	view := TimingView{
		OrderID:        o.ID(),
		Status:         o.Status(),
		ElapsedMinutes: int(elapsed.Minutes()),
		IsLate:         o.IsLate(),
		ClockAnomaly:   clockAnomaly,
	}

	if o.Status() != order.Preparing {
		return view, nil
	}

	budget := time.Duration(o.EstimatedPrepMinutes()) * time.Minute
	slack := budget - elapsed
	view.IsOverdue = slack <= 0
	if slack > 0 {
		view.RemainingMinutes = int(math.Ceil(slack.Minutes()))
	}

	return view, nil
}
