package kernel_test

import (
	"testing"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDimensions(t *testing.T) {
	t.Run("creates_valid_dimensions", func(t *testing.T) {
		// When
		d, err := kernel.NewDimensions(120, 80, 45.5)

		// Then
		require.NoError(t, err)
		assert.InDelta(t, 120, d.X(), 1e-9)
		assert.InDelta(t, 80, d.Y(), 1e-9)
		assert.InDelta(t, 45.5, d.Z(), 1e-9)
		require.NoError(t, d.Validate())
	})

	t.Run("zero_extent_is_allowed", func(t *testing.T) {
		// When
		d, err := kernel.NewDimensions(100, 100, 0)

		// Then
		require.NoError(t, err)
		assert.InDelta(t, 0, d.Volume(), 1e-9)
	})

	t.Run("negative_extent_is_rejected", func(t *testing.T) {
		// When
		_, err := kernel.NewDimensions(-1, 80, 45)

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("oversized_extent_is_rejected", func(t *testing.T) {
		// When
		_, err := kernel.NewDimensions(100, kernel.DimensionMaxMM+1, 45)

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("all_invalid_extents_are_reported", func(t *testing.T) {
		// When
		_, err := kernel.NewDimensions(-1, -2, -3)

		// Then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "x")
		assert.Contains(t, err.Error(), "y")
		assert.Contains(t, err.Error(), "z")
	})
}

func TestDimensions_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		// Given
		var d kernel.Dimensions

		// When
		err := d.Validate()

		// Then
		require.Error(t, err)
		assert.Equal(t, kernel.ErrDimensionsAreNotConstructed, err)
	})
}

func TestDimensions_FitsWithin(t *testing.T) {
	buildVolume, err := kernel.NewDimensions(220, 220, 250)
	require.NoError(t, err)

	tests := []struct {
		name    string
		x, y, z float64
		fits    bool
	}{
		{"object_smaller_on_every_axis", 100, 100, 100, true},
		{"object_exactly_at_the_limit", 220, 220, 250, true},
		{"object_too_wide", 221, 100, 100, false},
		{"object_too_deep", 100, 220.5, 100, false},
		{"object_too_tall", 100, 100, 251, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			object, err := kernel.NewDimensions(tt.x, tt.y, tt.z)
			require.NoError(t, err)

			// When
			fits := object.FitsWithin(buildVolume)

			// Then
			assert.Equal(t, tt.fits, fits)
		})
	}
}

func TestDimensions_IsEqual(t *testing.T) {
	t.Run("equal_dimensions", func(t *testing.T) {
		// Given
		a, err := kernel.NewDimensions(10, 20, 30)
		require.NoError(t, err)
		b, err := kernel.NewDimensions(10, 20, 30)
		require.NoError(t, err)

		// Then
		assert.True(t, a.IsEqual(b))
	})

	t.Run("different_dimensions", func(t *testing.T) {
		// Given
		a, err := kernel.NewDimensions(10, 20, 30)
		require.NoError(t, err)
		b, err := kernel.NewDimensions(10, 20, 31)
		require.NoError(t, err)

		// Then
		assert.False(t, a.IsEqual(b))
	})
}

func TestDimensions_String(t *testing.T) {
	d, err := kernel.NewDimensions(120, 80, 45.5)
	require.NoError(t, err)

	assert.Equal(t, "Dimensions(120x80x45.5)", d.String())
}
