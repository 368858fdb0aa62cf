// Package testutil provides reusable test helper functions for the
// interpolation packages.
package testutil

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-12
	TableTolerance   = 1e-9

	// ArcsecTolerance allows for tables published to 0.001″, where the
	// last digit of a worked result can round either way.
	ArcsecTolerance = 2e-3
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertArcsec verifies that deg, an angle in degrees, equals the given
// number of arcseconds to within ArcsecTolerance.
func AssertArcsec(t *testing.T, expectedSec, deg float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, expectedSec, unit.AngleFromDeg(deg).Sec(), ArcsecTolerance, msgAndArgs...)
}

// AssertWithinTable verifies that x lies between the first and last
// abscissae of a table, in either order.
func AssertWithinTable(t *testing.T, x, x1, xLast float64, msgAndArgs ...any) bool {
	t.Helper()
	lo, hi := min(x1, xLast), max(x1, xLast)
	if x < lo || x > hi {
		return assert.Fail(t, "outside table",
			"x = %v is outside [%v, %v]", x, lo, hi)
	}
	return true
}

// AssertPolyEqual verifies polynomial coefficients, constant term first.
// Missing trailing coefficients on either side are treated as zero.
func AssertPolyEqual(t *testing.T, expected, actual []float64, tolerance float64) bool {
	t.Helper()
	n := max(len(expected), len(actual))
	ok := true
	for i := range n {
		var e, a float64
		if i < len(expected) {
			e = expected[i]
		}
		if i < len(actual) {
			a = actual[i]
		}
		if !assert.InDelta(t, e, a, tolerance, "coefficient of x^%d: got %v, want %v", i, a, e) {
			ok = false
		}
	}
	return ok
}

// Poly evaluates coefficients (constant term first) the long way, so tests
// do not depend on the code under test.
func Poly(x float64, coeffs ...float64) float64 {
	var y float64
	for i, c := range coeffs {
		y += c * math.Pow(x, float64(i))
	}
	return y
}
