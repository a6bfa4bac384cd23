package order_test

import (
	"testing"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("should create valid line item", func(t *testing.T) {
		item, err := order.NewLineItem("Carbonara", 2, "extra pepper", []string{"no bacon"})

		require.NoError(t, err)
		assert.Equal(t, "Carbonara", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "extra pepper", item.Notes())
		assert.Equal(t, []string{"no bacon"}, item.Modifiers())
	})

	t.Run("should create item without notes and modifiers", func(t *testing.T) {
		item, err := order.NewLineItem("Espresso", 1, "", nil)

		require.NoError(t, err)
		assert.Empty(t, item.Notes())
		assert.Nil(t, item.Modifiers())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewLineItem("  ", 1, "", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewLineItem("Pasta", 0, "", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewLineItem("Pasta", -3, "", nil)

		require.Error(t, err)
	})

	t.Run("should copy the modifiers slice", func(t *testing.T) {
		modifiers := []string{"extra cheese"}
		item, err := order.NewLineItem("Pizza", 1, "", modifiers)
		require.NoError(t, err)

		modifiers[0] = "mutated"
		assert.Equal(t, []string{"extra cheese"}, item.Modifiers())
	})
}

func TestLineItemString(t *testing.T) {
	item, err := order.NewLineItem("Pasta", 2, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "2x Pasta", item.String())
}
