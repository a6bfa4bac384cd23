package order_test

import (
	"testing"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityFromString(t *testing.T) {
	t.Run("should parse valid priorities", func(t *testing.T) {
		priority, err := order.PriorityFromString("normal")
		require.NoError(t, err)
		assert.Equal(t, order.PriorityNormal, priority)

		priority, err = order.PriorityFromString("urgent")
		require.NoError(t, err)
		assert.Equal(t, order.PriorityUrgent, priority)
	})

	t.Run("should default empty string to normal", func(t *testing.T) {
		priority, err := order.PriorityFromString("")

		require.NoError(t, err)
		assert.Equal(t, order.PriorityNormal, priority)
	})

	t.Run("should reject unknown string", func(t *testing.T) {
		_, err := order.PriorityFromString("asap")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPriorityValidate(t *testing.T) {
	assert.NoError(t, order.PriorityNormal.Validate())
	assert.NoError(t, order.PriorityUrgent.Validate())
	assert.Error(t, order.PriorityUnknown.Validate())
}

func TestPriorityString(t *testing.T) {
	assert.Equal(t, "normal", order.PriorityNormal.String())
	assert.Equal(t, "urgent", order.PriorityUrgent.String())
	assert.Equal(t, "unknown", order.PriorityUnknown.String())
}
