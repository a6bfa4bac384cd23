// Package services provides domain services that derive transient views and
// aggregate metrics from kitchen domain entities without mutating them.
//
// The package includes:
//   - TimingCalculator: pure elapsed/remaining/overdue computation for active
//     orders against their SLA estimate
//   - StatsAggregator: kitchen-wide and per-staff statistics derived from
//     cooking history records
//
// Both services are stateless and deterministic: the same inputs always
// produce the same outputs, and nothing they compute is ever persisted.
package services
