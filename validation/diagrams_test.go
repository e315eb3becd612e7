package validation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtda/ndarray"
	"github.com/katalvlaran/lvtda/validation"
)

func diagrams(t *testing.T, x [][][]float64) *ndarray.Array {
	t.Helper()
	a, err := ndarray.From3D(x)
	require.NoError(t, err)

	return a
}

// TestCheckDiagrams_Structure covers rank and trailing-axis violations.
func TestCheckDiagrams_Structure(t *testing.T) {
	t.Parallel()

	rank4, err := ndarray.From4D([][][][]float64{{{{1, 1, 0}, {2, 2, 1}}}})
	require.NoError(t, err)
	rank2, err := ndarray.From2D([][]float64{{0, 1, 0}})
	require.NoError(t, err)

	tests := []struct {
		name string
		x    *ndarray.Array
	}{
		{"nil", nil},
		{"rank 4", rank4},
		{"rank 2", rank2},
		{"two columns", diagrams(t, [][][]float64{{{0, 1}, {1, 2}}})},
		{"four columns", diagrams(t, [][][]float64{{{0, 1, 0, 0}}})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validation.CheckDiagrams(tc.x)
			assert.ErrorIs(t, err, validation.ErrShape)
		})
	}
}

// TestCheckDiagrams_Values covers dimension, ordering and NaN rules.
func TestCheckDiagrams_Values(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)
	tests := []struct {
		name    string
		x       [][][]float64
		wantErr error
	}{
		{"valid", [][][]float64{{{0, 1, 0}, {0.5, 2, 1}}, {{0, inf, 0}, {1, 1, 1}}}, nil},
		{"negative dimension", [][][]float64{{{1, 1, 0}, {2, 2, -1}}}, validation.ErrHomologyDimension},
		{"fractional dimension", [][][]float64{{{1, 2, 0.5}}}, validation.ErrHomologyDimension},
		{"birth after death", [][][]float64{{{0, 1, 0}}, {{3, 2, 0}}}, validation.ErrBirthAfterDeath},
		{"NaN death", [][][]float64{{{0, math.NaN(), 0}}}, validation.ErrNonFinite},
		{"stacked infinite dimension", [][][]float64{{{0, 1, inf}, {1, 3, inf}}}, nil},
		{"infinite mixed with finite dimension", [][][]float64{{{0, 1, 0}, {1, 3, inf}}}, validation.ErrHomologyDimension},
		{"negative infinite birth", [][][]float64{{{math.Inf(-1), 0, 0}}}, nil},
		{"no points", [][][]float64{{}, {}}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, err := ndarray.New([]int{len(tc.x), pointsOf(tc.x), 3}, flattenDiagrams(tc.x))
			require.NoError(t, err)

			_, err = validation.CheckDiagrams(x)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, validation.ErrShape)
		})
	}
}

// TestCheckDiagrams_BelowDiagonalCount reports how many points are misplaced.
func TestCheckDiagrams_BelowDiagonalCount(t *testing.T) {
	t.Parallel()

	x := diagrams(t, [][][]float64{{{0, 1, 0}, {2, 1, 0}}, {{5, 4, 1}, {0, 0, 1}}})
	_, err := validation.CheckDiagrams(x)
	require.ErrorIs(t, err, validation.ErrBirthAfterDeath)
	assert.Contains(t, err.Error(), "sample 0")
	assert.Contains(t, err.Error(), "2 of 4 points")
}

// TestCheckDiagrams_Copy checks WithCopy and identity otherwise.
func TestCheckDiagrams_Copy(t *testing.T) {
	t.Parallel()

	x := diagrams(t, [][][]float64{{{0, 1, 0}}})
	out, err := validation.CheckDiagrams(x)
	require.NoError(t, err)
	assert.Same(t, x, out)

	out, err = validation.CheckDiagrams(x, validation.WithCopy(true))
	require.NoError(t, err)
	assert.NotSame(t, x, out)
	assert.True(t, x.Equal(out))
}

func pointsOf(x [][][]float64) int {
	if len(x) == 0 {
		return 0
	}

	return len(x[0])
}

func flattenDiagrams(x [][][]float64) []float64 {
	out := []float64{}
	for _, d := range x {
		for _, p := range d {
			out = append(out, p...)
		}
	}

	return out
}
