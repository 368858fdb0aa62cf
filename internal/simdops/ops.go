// Package simdops exposes the small set of vector kernels used by the
// Lagrange interpolator, backed by github.com/tphakala/simd.
//
// A pure Go implementation with the same signatures is kept alongside so
// results can be checked against it and so callers can opt out of SIMD.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops bundles the vector kernels. Function pointers let the interpolator
// switch implementations without branching in the inner loops.
type Ops struct {
	// DotProduct returns Σ a[i]*b[i] over the shorter of the two slices.
	DotProduct func(a, b []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)
}

var (
	simdOps = Ops{
		DotProduct: f64.DotProduct,
		Scale:      f64.Scale,
	}

	genericOps = Ops{
		DotProduct: dotProduct,
		Scale:      scale,
	}
)

// Float64Ops returns the SIMD-accelerated operations.
func Float64Ops() *Ops {
	return &simdOps
}

// GenericOps returns the pure Go operations.
func GenericOps() *Ops {
	return &genericOps
}

// AddScaled accumulates dst[i] += a[i]*s, using tmp as scratch space.
// tmp must be at least len(a) long.
func (o *Ops) AddScaled(dst, a, tmp []float64, s float64) {
	tmp = tmp[:len(a)]
	o.Scale(tmp, a, s)
	for i, v := range tmp {
		dst[i] += v
	}
}

func dotProduct(a, b []float64) float64 {
	n := min(len(a), len(b))
	var s float64
	for i := range n {
		s += a[i] * b[i]
	}
	return s
}

func scale(dst, a []float64, s float64) {
	for i, v := range a {
		dst[i] = v * s
	}
}
