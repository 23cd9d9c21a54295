package guard_test

import (
	"errors"
	"testing"

	"ordermanagement/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	notConstructed := errors.New("Reservation must be created via NewReserveOrderCommand")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(notConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_supplied_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(notConstructed)

		// Then
		assert.Equal(t, notConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("copies_keep_their_state", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		cp := g

		// Then
		require.NoError(t, cp.Validate(notConstructed))
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type hours struct {
		value int
		guard guard.ConstructorGuard
	}
	errHoursNotConstructed := errors.New("hours must be created via newHours")

	newHours := func(v int) (hours, error) {
		if v < 1 {
			return hours{}, errors.New("at least one hour is billed")
		}
		return hours{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	h, err := newHours(3)
	require.NoError(t, err)
	require.NoError(t, h.guard.Validate(errHoursNotConstructed))

	_, err = newHours(0)
	require.Error(t, err)

	var zero hours
	assert.Equal(t, errHoursNotConstructed, zero.guard.Validate(errHoursNotConstructed))
}
