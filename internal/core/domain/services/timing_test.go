package services_test

import (
	"testing"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, estimate int, receivedAt time.Time) *order.Order {
	t.Helper()
	pasta, err := order.NewLineItem("Pasta", 1, "", nil)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-100", order.OriginDineIn, "",
		[]order.LineItem{pasta}, order.PriorityNormal, estimate, receivedAt,
	)
	require.NoError(t, err)
	return o
}

func TestComputeTiming(t *testing.T) {
	calculator := services.NewTimingCalculator()
	receivedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should report elapsed and remaining for a preparing order", func(t *testing.T) {
		o := newTestOrder(t, 15, receivedAt)
		startedAt := receivedAt.Add(2 * time.Minute)
		require.NoError(t, o.StartPreparation(nil, startedAt))

		view, err := calculator.ComputeTiming(o, startedAt.Add(10*time.Minute))

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, view.Status)
		assert.Equal(t, 10, view.ElapsedMinutes)
		assert.Equal(t, 5, view.RemainingMinutes)
		assert.False(t, view.IsOverdue)
		assert.False(t, view.IsLate)
		assert.False(t, view.ClockAnomaly)
	})

	t.Run("should round remaining up to the next whole minute", func(t *testing.T) {
		o := newTestOrder(t, 15, receivedAt)
		startedAt := receivedAt
		require.NoError(t, o.StartPreparation(nil, startedAt))

		view, err := calculator.ComputeTiming(o, startedAt.Add(10*time.Minute+30*time.Second))

		require.NoError(t, err)
		assert.Equal(t, 10, view.ElapsedMinutes)
		assert.Equal(t, 5, view.RemainingMinutes)
		assert.False(t, view.IsOverdue)
	})

	t.Run("should flag overdue exactly at the estimate", func(t *testing.T) {
		o := newTestOrder(t, 15, receivedAt)
		require.NoError(t, o.StartPreparation(nil, receivedAt))

		view, err := calculator.ComputeTiming(o, receivedAt.Add(15*time.Minute))

		require.NoError(t, err)
		assert.True(t, view.IsOverdue)
		assert.Zero(t, view.RemainingMinutes)
	})

	t.Run("should use the unrounded elapsed time for the overdue check", func(t *testing.T) {
		o := newTestOrder(t, 15, receivedAt)
		require.NoError(t, o.StartPreparation(nil, receivedAt))

		// 14m30s elapsed: displayed elapsed is 14 but the order is not
		// overdue until the full 15 minutes have passed.
		view, err := calculator.ComputeTiming(o, receivedAt.Add(14*time.Minute+30*time.Second))

		require.NoError(t, err)
		assert.Equal(t, 14, view.ElapsedMinutes)
		assert.False(t, view.IsOverdue)
		assert.Equal(t, 1, view.RemainingMinutes)
	})

	t.Run("should count from intake while still received", func(t *testing.T) {
		o := newTestOrder(t, 15, receivedAt)

		view, err := calculator.ComputeTiming(o, receivedAt.Add(42*time.Minute))

		require.NoError(t, err)
		assert.Equal(t, order.Received, view.Status)
		assert.Equal(t, 42, view.ElapsedMinutes)
		assert.False(t, view.IsOverdue)
		assert.Zero(t, view.RemainingMinutes)
	})

	t.Run("should never mark ready orders overdue", func(t *testing.T) {
		o := newTestOrder(t, 10, receivedAt)
		require.NoError(t, o.StartPreparation(nil, receivedAt))
		require.NoError(t, o.MarkReady(receivedAt.Add(25*time.Minute)))

		view, err := calculator.ComputeTiming(o, receivedAt.Add(60*time.Minute))

		require.NoError(t, err)
		assert.False(t, view.IsOverdue)
		assert.True(t, view.IsLate)
	})

	t.Run("should clamp a backwards clock to zero elapsed", func(t *testing.T) {
		o := newTestOrder(t, 15, receivedAt)
		require.NoError(t, o.StartPreparation(nil, receivedAt))

		view, err := calculator.ComputeTiming(o, receivedAt.Add(-3*time.Minute))

		require.NoError(t, err)
		assert.Zero(t, view.ElapsedMinutes)
		assert.True(t, view.ClockAnomaly)
		assert.False(t, view.IsOverdue)
		assert.Equal(t, 15, view.RemainingMinutes)
	})

	t.Run("should reject an unconstructed order", func(t *testing.T) {
		var o order.Order

		_, err := calculator.ComputeTiming(&o, receivedAt)

		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
