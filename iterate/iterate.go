// Package iterate provides the bounded iteration primitives used to
// locate roots and extrema that have no closed-form solution.
//
// Fixed is the primitive behind the zero and extremum searches of the
// fixed-node interpolators. DecimalPlaces and FullPrecision are the
// error-returning variants used by the Newton and fixed-point Kepler
// solvers, and BinaryRoot is the bisection behind kepler.Kepler3 for
// functions with a known sign change.
package iterate

import (
	"errors"
	"fmt"
	"math"
)

// Fixed-point iteration limits. These values are fixed so that results
// reproduce the published test vectors.
const (
	// MaxSteps is the number of updates Fixed attempts before giving up.
	MaxSteps = 50

	// Tolerance is the relative change below which Fixed reports success.
	Tolerance = 1e-15
)

const maxPlaces = 15

var (
	// ErrNoConvergence indicates an iteration exhausted its step budget
	// or produced a non-finite value.
	ErrNoConvergence = errors.New("failure to converge")

	// ErrPlacesOutOfRange indicates a requested precision outside 0-15
	// decimal places.
	ErrPlacesOutOfRange = errors.New("decimal places out of range")
)

// BetterFunc is a convergent function. Given an estimate it returns a
// better estimate.
type BetterFunc func(float64) float64

// Fixed repeatedly applies f starting from n0 until successive values
// agree to Tolerance (relative), for at most MaxSteps updates.
//
// It returns the converged value and true on success. A NaN or infinite
// update, or running out of steps, returns 0 and false.
func Fixed(n0 float64, f BetterFunc) (float64, bool) {
	for range MaxSteps {
		n1 := f(n0)
		if math.IsInf(n1, 0) || math.IsNaN(n1) {
			break
		}
		if math.Abs((n1-n0)/n0) < Tolerance {
			return n1, true
		}
		n0 = n1
	}
	return 0, false
}

// DecimalPlaces iterates to a fixed number of decimal places.
//
// Iteration stops when two successive values differ by less than
// 10^-places, or fails with ErrNoConvergence after maxIterations.
func DecimalPlaces(better BetterFunc, start float64, places, maxIterations int) (float64, error) {
	if places < 0 || places > maxPlaces {
		return 0, fmt.Errorf("%w: %d (want 0-%d)", ErrPlacesOutOfRange, places, maxPlaces)
	}
	d := math.Pow(10, -float64(places))
	for range maxIterations {
		n := better(start)
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, fmt.Errorf("%w: non-finite estimate", ErrNoConvergence)
		}
		if math.Abs(n-start) < d {
			return n, nil
		}
		start = n
	}
	return 0, fmt.Errorf("%w: %d places not reached in %d iterations", ErrNoConvergence, places, maxIterations)
}

// FullPrecision iterates until the relative change drops below 1e-15,
// or fails with ErrNoConvergence after maxIterations.
func FullPrecision(better BetterFunc, start float64, maxIterations int) (float64, error) {
	for range maxIterations {
		n := better(start)
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, fmt.Errorf("%w: non-finite estimate", ErrNoConvergence)
		}
		if math.Abs((n-start)/n) < Tolerance {
			return n, nil
		}
		start = n
	}
	return 0, fmt.Errorf("%w: full precision not reached in %d iterations", ErrNoConvergence, maxIterations)
}

// RootFunc is a function whose root BinaryRoot finds.
type RootFunc func(float64) float64

// BinaryRoot finds a root of f between lower and upper by bisection.
//
// f(lower) and f(upper) must have opposite signs. The search ends when
// the midpoint stops changing in floating point, so the result is as
// precise as float64 allows.
func BinaryRoot(f RootFunc, lower, upper float64) float64 {
	flower := f(lower)
	mid := .5 * (lower + upper)
	for {
		fmid := f(mid)
		if fmid == 0 {
			return mid
		}
		if math.Signbit(flower) == math.Signbit(fmid) {
			lower, flower = mid, fmid
		} else {
			upper = mid
		}
		next := .5 * (lower + upper)
		if next == mid {
			return mid
		}
		mid = next
	}
}
