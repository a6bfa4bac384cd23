package queries_test

import (
	"testing"
	"time"

	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetKitchenStatsQuery(t *testing.T) {
	from := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	to := from.Add(8 * time.Hour)

	t.Run("should create query with explicit window", func(t *testing.T) {
		query, err := queries.NewGetKitchenStatsQuery(&from, &to, nil)

		require.NoError(t, err)
		require.NoError(t, query.Validate())

		window, err := query.Window(time.Now())
		require.NoError(t, err)
		assert.Equal(t, from, window.From())
		assert.Equal(t, to, window.To())
	})

	t.Run("should default window to the calendar day", func(t *testing.T) {
		query, err := queries.NewGetKitchenStatsQuery(nil, nil, nil)
		require.NoError(t, err)

		now := time.Date(2025, 6, 1, 17, 45, 0, 0, time.UTC)
		window, err := query.Window(now)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), window.From())
		assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), window.To())
	})

	t.Run("should reject half-open window bounds", func(t *testing.T) {
		_, err := queries.NewGetKitchenStatsQuery(&from, nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "together")
	})

	t.Run("should reject inverted window", func(t *testing.T) {
		_, err := queries.NewGetKitchenStatsQuery(&to, &from, nil)

		require.Error(t, err)
	})

	t.Run("should copy the staff scope", func(t *testing.T) {
		staffID := kernel.NewUUID()

		query, err := queries.NewGetKitchenStatsQuery(nil, nil, &staffID)

		require.NoError(t, err)
		require.NotNil(t, query.StaffID())
		assert.True(t, query.StaffID().IsEqual(staffID))
	})

	t.Run("should reject invalid staff id", func(t *testing.T) {
		var invalidStaff kernel.UUID

		_, err := queries.NewGetKitchenStatsQuery(nil, nil, &invalidStaff)

		require.Error(t, err)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var query queries.GetKitchenStatsQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrGetKitchenStatsQueryIsNotConstructed)
	})
}

func TestNewGetHistoryQuery(t *testing.T) {
	from := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	to := from.Add(8 * time.Hour)

	t.Run("should create query with explicit window", func(t *testing.T) {
		query, err := queries.NewGetHistoryQuery(&from, &to, nil)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("should reject half-open window bounds", func(t *testing.T) {
		_, err := queries.NewGetHistoryQuery(nil, &to, nil)

		require.Error(t, err)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var query queries.GetHistoryQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrGetHistoryQueryIsNotConstructed)
	})
}
