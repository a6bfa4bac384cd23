package services

import (
	"fmt"
	"math"
	"time"

	"kitchen/internal/core/domain/model/history"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// targetOrdersPerHour anchors the throughput component of the performance
// score: completing this many orders per hour scores the full throughput
// weight.
const targetOrdersPerHour = 6.0

// Window is a half-open statistics time interval [From, To).
type Window struct {
	from time.Time
	to   time.Time
}

// NewWindow creates a window; to must be after from.
func NewWindow(from, to time.Time) (Window, error) {
	if !to.After(from) {
		return Window{}, errs.NewValueIsInvalidErrorWithCause(
			"window",
			fmt.Errorf("window end %s is not after start %s", to, from),
		)
	}
	return Window{from: from, to: to}, nil
}

// DayWindow returns the calendar-day window containing now,
// in now's location. This is the default statistics period.
func DayWindow(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Window{from: start, to: start.Add(24 * time.Hour)}
}

// From returns the window's inclusive start.
func (w Window) From() time.Time {
	return w.from
}

// To returns the window's exclusive end.
func (w Window) To() time.Time {
	return w.to
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.from) && t.Before(w.to)
}

// Hours returns the window length in hours.
func (w Window) Hours() float64 {
	return w.to.Sub(w.from).Hours()
}

// KitchenStats is the derived metrics snapshot for one window. It is never
// persisted as authoritative state; it can always be recomputed from the
// history records it was built from.
//
// With zero completed orders every field is zero; callers must read
// TotalOrders == 0 as "no data", not as instant completion.
type KitchenStats struct {
	TotalOrders        int
	AveragePrepMinutes float64
	FastestPrepMinutes int
	SlowestPrepMinutes int
	OrdersPerHour      float64
	EfficiencyRate     float64
}

// StatsAggregator computes kitchen-wide and per-staff metrics from cooking
// history records. It is a pure domain service: the same records and window
// always yield the same statistics.
type StatsAggregator struct{}

// NewStatsAggregator creates a new StatsAggregator instance.
func NewStatsAggregator() StatsAggregator {
	return StatsAggregator{}
}

// Aggregate computes KitchenStats over the records whose completion falls
// inside the window, optionally scoped to one staff member.
//
// Metrics:
//   - TotalOrders: count of matching records
//   - AveragePrepMinutes: mean actual preparation time (0 with no data)
//   - FastestPrepMinutes / SlowestPrepMinutes: min and max actual time
//   - OrdersPerHour: throughput normalized by max(1, window hours)
//   - EfficiencyRate: percentage of orders that met their estimate
func (StatsAggregator) Aggregate(records []*history.Record, window Window, staffID *kernel.UUID) KitchenStats {
	var stats KitchenStats
	var totalMinutes int
	var withinEstimate int

	for _, record := range records {
		if record == nil || record.Validate() != nil {
			continue
		}
		if !window.Contains(record.CompletedAt()) {
			continue
		}
		if staffID != nil {
			recordStaff := record.StaffID()
			if recordStaff == nil || !recordStaff.IsEqual(*staffID) {
				continue
			}
		}

		actual := record.ActualPrepMinutes()
		if stats.TotalOrders == 0 {
			stats.FastestPrepMinutes = actual
			stats.SlowestPrepMinutes = actual
		} else {
			if actual < stats.FastestPrepMinutes {
				stats.FastestPrepMinutes = actual
			}
			if actual > stats.SlowestPrepMinutes {
				stats.SlowestPrepMinutes = actual
			}
		}

		stats.TotalOrders++
		totalMinutes += actual
		if record.WithinEstimate() {
			withinEstimate++
		}
	}

	if stats.TotalOrders == 0 {
		return stats
	}

	stats.AveragePrepMinutes = float64(totalMinutes) / float64(stats.TotalOrders)
	stats.OrdersPerHour = float64(stats.TotalOrders) / math.Max(1, window.Hours())
	stats.EfficiencyRate = float64(withinEstimate) / float64(stats.TotalOrders) * 100

	return stats
}

// PerformanceScore derives a 0-100 score for one staff member from the
// history records attributed to them inside the window.
//
// The score blends the efficiency rate (weight 0.7) with throughput
// normalized against targetOrdersPerHour (weight 0.3). It is a pure
// function of its inputs: recomputing over the same records and window
// always reproduces the same score. A member with no completed orders in
// the window scores 0.
func (a StatsAggregator) PerformanceScore(records []*history.Record, window Window, staffID kernel.UUID) float64 {
	stats := a.Aggregate(records, window, &staffID)
	if stats.TotalOrders == 0 {
		return 0
	}

	throughput := stats.OrdersPerHour / targetOrdersPerHour * 100
	if throughput > 100 {
		throughput = 100
	}

	score := 0.7*stats.EfficiencyRate + 0.3*throughput
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return score
}
