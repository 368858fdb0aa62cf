package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-interp/internal/testutil"
)

// TestLen4Half_ReproducesCubic tests the midpoint of tabulated cubics.
func TestLen4Half_ReproducesCubic(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
	}{
		{"Constant", []float64{3}},
		{"Line", []float64{-1, 2}},
		{"Cubic", []float64{0.5, -2, 1.5, 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := make([]float64, 4)
			for i := range y {
				y[i] = testutil.Poly(float64(i), tt.coeffs...)
			}
			mid, err := Len4Half(y)
			require.NoError(t, err)
			assert.InDelta(t, testutil.Poly(1.5, tt.coeffs...), mid, testutil.DefaultTolerance)
		})
	}
}

// TestLen4Half_AgreesWithLagrange tests a smooth function against the
// Lagrange form through the same four rows.
func TestLen4Half_AgreesWithLagrange(t *testing.T) {
	table := make([]XY, 4)
	y := make([]float64, 4)
	for i := range table {
		x := 0.1 * float64(i)
		y[i] = math.Exp(x)
		table[i] = XY{X: x, Y: y[i]}
	}
	mid, err := Len4Half(y)
	require.NoError(t, err)
	want, err := Lagrange(0.15, table)
	require.NoError(t, err)
	assert.InDelta(t, want, mid, testutil.DefaultTolerance)
	assert.InDelta(t, math.Exp(0.15), mid, 1e-5)
}

// TestLen4Half_Errors tests the row count check.
func TestLen4Half_Errors(t *testing.T) {
	for _, n := range []int{0, 3, 5} {
		_, err := Len4Half(make([]float64, n))
		assert.ErrorIs(t, err, ErrInvalidArity, "rows=%d", n)
	}
}
