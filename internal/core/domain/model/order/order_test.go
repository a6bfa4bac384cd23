package order_test

import (
	"testing"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T) []order.LineItem {
	t.Helper()
	pasta, err := order.NewLineItem("Pasta", 2, "", nil)
	require.NoError(t, err)
	tiramisu, err := order.NewLineItem("Tiramisu", 1, "", nil)
	require.NoError(t, err)
	return []order.LineItem{pasta, tiramisu}
}

func receivedOrder(t *testing.T, receivedAt time.Time, estimatedPrepMinutes int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-001",
		order.OriginDineIn,
		"table 7",
		validItems(t),
		order.PriorityNormal,
		estimatedPrepMinutes,
		receivedAt,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	receivedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create valid order in received status", func(t *testing.T) {
		o := receivedOrder(t, receivedAt, 15)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, "ORD-001", o.OrderNumber())
		assert.Equal(t, order.OriginDineIn, o.Origin())
		assert.Equal(t, "table 7", o.TableRef())
		assert.Equal(t, order.PriorityNormal, o.Priority())
		assert.Equal(t, 15, o.EstimatedPrepMinutes())
		assert.Equal(t, receivedAt, o.ReceivedAt())
		assert.Nil(t, o.StartedAt())
		assert.Nil(t, o.CompletedAt())
		assert.Nil(t, o.ActualPrepMinutes())
		assert.Nil(t, o.AssignedStaff())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "ORD-001", order.OriginDineIn, "",
			validItems(t), order.PriorityNormal, 15, receivedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with blank order number", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "   ", order.OriginDineIn, "",
			validItems(t), order.PriorityNormal, 15, receivedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-001", order.OriginDineIn, "",
			nil, order.PriorityNormal, 15, receivedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail with non-positive estimate", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-001", order.OriginDineIn, "",
			validItems(t), order.PriorityNormal, 0, receivedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "estimatedPrepMinutes")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with zero receivedAt", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-001", order.OriginDineIn, "",
			validItems(t), order.PriorityNormal, 15, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "receivedAt")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "", order.OriginUnknown, "",
			nil, order.PriorityUnknown, -5, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "orderNumber")
		assert.Contains(t, err.Error(), "origin")
		assert.Contains(t, err.Error(), "items")
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("should fail for directly constructed order", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderStartPreparation(t *testing.T) {
	receivedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	startedAt := receivedAt.Add(3 * time.Minute)

	t.Run("should transition to preparing and record timestamps", func(t *testing.T) {
		o := receivedOrder(t, receivedAt, 15)
		staffID := kernel.NewUUID()

		err := o.StartPreparation(&staffID, startedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		require.NotNil(t, o.StartedAt())
		assert.Equal(t, startedAt, *o.StartedAt())
		require.NotNil(t, o.AssignedStaff())
		assert.True(t, o.AssignedStaff().IsEqual(staffID))
	})

	t.Run("should allow starting without staff attribution", func(t *testing.T) {
		o := receivedOrder(t, receivedAt, 15)

		err := o.StartPreparation(nil, startedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Nil(t, o.AssignedStaff())
	})

	t.Run("should reject starting twice", func(t *testing.T) {
		o := receivedOrder(t, receivedAt, 15)
		require.NoError(t, o.StartPreparation(nil, startedAt))

		err := o.StartPreparation(nil, startedAt.Add(time.Minute))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, startedAt, *o.StartedAt())
	})

	t.Run("should reject invalid staff id", func(t *testing.T) {
		o := receivedOrder(t, receivedAt, 15)
		var invalidStaff kernel.UUID

		err := o.StartPreparation(&invalidStaff, startedAt)

		require.Error(t, err)
		assert.Equal(t, order.Received, o.Status())
	})
}

func TestOrderMarkReady(t *testing.T) {
	receivedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	startedAt := receivedAt.Add(2 * time.Minute)

	preparingOrder := func(t *testing.T, estimate int) *order.Order {
		t.Helper()
		o := receivedOrder(t, receivedAt, estimate)
		require.NoError(t, o.StartPreparation(nil, startedAt))
		return o
	}

	t.Run("should transition to ready and derive actual minutes", func(t *testing.T) {
		o := preparingOrder(t, 15)
		completedAt := startedAt.Add(12 * time.Minute)

		err := o.MarkReady(completedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, completedAt, *o.CompletedAt())
		require.NotNil(t, o.ActualPrepMinutes())
		assert.Equal(t, 12, *o.ActualPrepMinutes())
		assert.False(t, o.IsLate())
	})

	t.Run("should floor partial minutes", func(t *testing.T) {
		o := preparingOrder(t, 15)

		err := o.MarkReady(startedAt.Add(12*time.Minute + 59*time.Second))

		require.NoError(t, err)
		assert.Equal(t, 12, *o.ActualPrepMinutes())
	})

	t.Run("should clamp negative duration to zero", func(t *testing.T) {
		o := preparingOrder(t, 15)

		err := o.MarkReady(startedAt.Add(-5 * time.Minute))

		require.NoError(t, err)
		assert.Equal(t, 0, *o.ActualPrepMinutes())
	})

	t.Run("should mark late orders", func(t *testing.T) {
		o := preparingOrder(t, 10)

		err := o.MarkReady(startedAt.Add(18 * time.Minute))

		require.NoError(t, err)
		assert.True(t, o.IsLate())
	})

	t.Run("should reject from received status", func(t *testing.T) {
		o := receivedOrder(t, receivedAt, 15)

		err := o.MarkReady(startedAt.Add(10 * time.Minute))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Received, o.Status())
	})
}

func TestOrderMarkServed(t *testing.T) {
	receivedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should transition from ready to served", func(t *testing.T) {
		o := receivedOrder(t, receivedAt, 15)
		require.NoError(t, o.StartPreparation(nil, receivedAt.Add(time.Minute)))
		require.NoError(t, o.MarkReady(receivedAt.Add(10*time.Minute)))

		err := o.MarkServed()

		require.NoError(t, err)
		assert.Equal(t, order.Served, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("should reject skipping ahead from preparing", func(t *testing.T) {
		o := receivedOrder(t, receivedAt, 15)
		require.NoError(t, o.StartPreparation(nil, receivedAt.Add(time.Minute)))

		err := o.MarkServed()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "from preparing to served")
	})
}

func TestOrderItemSummary(t *testing.T) {
	receivedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	o := receivedOrder(t, receivedAt, 15)

	assert.Equal(t, "2x Pasta, 1x Tiramisu", o.ItemSummary())
}

func TestRestoreOrder(t *testing.T) {
	receivedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	startedAt := receivedAt.Add(2 * time.Minute)
	completedAt := startedAt.Add(11 * time.Minute)
	actual := 11

	t.Run("should restore a ready order", func(t *testing.T) {
		staffID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-002", order.OriginTakeaway, "",
			validItems(t), order.PriorityUrgent, order.Ready,
			receivedAt, &startedAt, &completedAt, 15, &actual, &staffID,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, 11, *o.ActualPrepMinutes())
		assert.True(t, o.AssignedStaff().IsEqual(staffID))
	})

	t.Run("should restore a received order without timestamps", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-003", order.OriginDineIn, "table 2",
			validItems(t), order.PriorityNormal, order.Received,
			receivedAt, nil, nil, 15, nil, nil,
		)

		require.NoError(t, err)
		assert.Nil(t, o.StartedAt())
	})

	t.Run("should reject preparing order without startedAt", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-004", order.OriginDineIn, "",
			validItems(t), order.PriorityNormal, order.Preparing,
			receivedAt, nil, nil, 15, nil, nil,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "startedAt")
	})

	t.Run("should reject received order with completedAt", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-005", order.OriginDineIn, "",
			validItems(t), order.PriorityNormal, order.Received,
			receivedAt, nil, &completedAt, 15, nil, nil,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "completedAt")
	})

	t.Run("should reject ready order without actual minutes", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-006", order.OriginDineIn, "",
			validItems(t), order.PriorityNormal, order.Ready,
			receivedAt, &startedAt, &completedAt, 15, nil, nil,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "actualPrepMinutes")
	})

	t.Run("should reject negative actual minutes", func(t *testing.T) {
		negative := -2

		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-007", order.OriginDineIn, "",
			validItems(t), order.PriorityNormal, order.Ready,
			receivedAt, &startedAt, &completedAt, 15, &negative, nil,
		)

		require.Error(t, err)
	})
}
