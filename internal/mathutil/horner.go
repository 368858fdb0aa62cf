// Package mathutil provides small numeric helpers shared by the
// interpolation engine and its consumers.
package mathutil

import (
	"math"
)

// Horner evaluates a polynomial at x using Horner's method.
//
// Coefficients are given constant term first, so
//
//	Horner(x, c0, c1, c2) = c0 + c1*x + c2*x²
//
// The evaluation starts from the highest-order coefficient. Horner panics
// when no coefficients are given.
func Horner(x float64, coeffs ...float64) float64 {
	if len(coeffs) < minCoefficients {
		panic("mathutil: Horner called with no coefficients")
	}
	i := len(coeffs) - 1
	y := coeffs[i]
	for i > 0 {
		i--
		y = y*x + coeffs[i]
	}
	return y
}

// HornerDerivative evaluates the first derivative of the polynomial given
// by coeffs (constant term first) at x.
func HornerDerivative(x float64, coeffs ...float64) float64 {
	if len(coeffs) < minCoefficients {
		panic("mathutil: HornerDerivative called with no coefficients")
	}
	y := 0.0
	for i := len(coeffs) - 1; i > 0; i-- {
		y = y*x + float64(i)*coeffs[i]
	}
	return y
}

// WrapPi reduces an angle in radians to the half-open range (-π, π].
// Differences of right ascensions are wrapped this way so that a table
// crossing 0ʰ stays continuous.
func WrapPi(a float64) float64 {
	a = math.Mod(a, twoPi)
	switch {
	case a > math.Pi:
		a -= twoPi
	case a <= -math.Pi:
		a += twoPi
	}
	return a
}
