// Package order contains the Order aggregate: the state-machine core of the
// kitchen lifecycle engine.
//
// An order moves through a strictly linear lifecycle
//
//	received -> preparing -> ready -> served
//
// enforced by the Status value object; the aggregate layers the timing
// invariants on top (write-once startedAt/completedAt, derived
// actualPrepMinutes, first-wins staff assignment). All mutation goes through
// StartPreparation, MarkReady and MarkServed so no caller can put an order
// into an inconsistent state.
package order
