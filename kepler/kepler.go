// Package kepler solves Kepler's equation, E = M + e sin E, for the
// eccentric anomaly E of an elliptic orbit given the mean anomaly M and
// the eccentricity e.
//
// The solvers trade speed against robustness:
//
//   - [Kepler1]: fixed-point iteration. Simple; slow for e near 1.
//   - [Kepler2]: Newton's method. Fast; may overshoot for e near 1.
//   - [Kepler2a]: Newton's method with the step limited to half a radian.
//   - [Kepler2b]: Newton's method to full precision.
//   - [Kepler3]: bisection. Always converges, to full precision.
//   - [Kepler4]: closed-form first approximation, for small e only.
package kepler

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/unit"

	"github.com/tphakala/go-interp/iterate"
)

const (
	// maxIterations bounds the iterative solvers, matching the fixed-point
	// budget of the interpolators.
	maxIterations = iterate.MaxSteps

	// maxNewtonStep is the largest correction Kepler2a applies per step.
	maxNewtonStep = .5
)

// ErrEccentricity indicates an eccentricity outside [0, 1).
var ErrEccentricity = errors.New("eccentricity must be in [0, 1)")

func checkEccentricity(e float64) error {
	if e < 0 || e >= 1 || math.IsNaN(e) {
		return fmt.Errorf("%w: e = %v", ErrEccentricity, e)
	}
	return nil
}

// Kepler1 solves Kepler's equation by fixed-point iteration (30.5),
// stopping when successive estimates agree to the given number of
// decimal places of radians.
func Kepler1(e float64, M unit.Angle, places int) (E unit.Angle, err error) {
	if err := checkEccentricity(e); err != nil {
		return 0, err
	}
	m := M.Rad()
	f := func(e0 float64) float64 {
		return m + e*math.Sin(e0)
	}
	ea, err := iterate.DecimalPlaces(f, m, places, maxIterations)
	if err != nil {
		return 0, fmt.Errorf("kepler1: %w", err)
	}
	return unit.Angle(ea), nil
}

// Kepler2 solves Kepler's equation by Newton's method (30.7).
func Kepler2(e float64, M unit.Angle, places int) (E unit.Angle, err error) {
	if err := checkEccentricity(e); err != nil {
		return 0, err
	}
	m := M.Rad()
	f := func(e0 float64) float64 {
		se, ce := math.Sincos(e0)
		return e0 + (m+e*se-e0)/(1-e*ce)
	}
	ea, err := iterate.DecimalPlaces(f, m, places, maxIterations)
	if err != nil {
		return 0, fmt.Errorf("kepler2: %w", err)
	}
	return unit.Angle(ea), nil
}

// Kepler2a solves Kepler's equation by Newton's method with each
// correction limited to ±0.5 radian. It converges for eccentricities
// close to 1 where Kepler2 may oscillate.
func Kepler2a(e float64, M unit.Angle, places int) (E unit.Angle, err error) {
	if err := checkEccentricity(e); err != nil {
		return 0, err
	}
	m := M.Rad()
	f := func(e0 float64) float64 {
		se, ce := math.Sincos(e0)
		d := (m + e*se - e0) / (1 - e*ce)
		return e0 + max(-maxNewtonStep, min(maxNewtonStep, d))
	}
	ea, err := iterate.DecimalPlaces(f, m, places, maxIterations)
	if err != nil {
		return 0, fmt.Errorf("kepler2a: %w", err)
	}
	return unit.Angle(ea), nil
}

// Kepler2b solves Kepler's equation by Newton's method, iterating to
// full float64 precision rather than to a number of decimal places.
func Kepler2b(e float64, M unit.Angle) (E unit.Angle, err error) {
	if err := checkEccentricity(e); err != nil {
		return 0, err
	}
	m := M.Rad()
	if m == 0 {
		return 0, nil
	}
	f := func(e0 float64) float64 {
		se, ce := math.Sincos(e0)
		return e0 + (m+e*se-e0)/(1-e*ce)
	}
	ea, err := iterate.FullPrecision(f, m, maxIterations)
	if err != nil {
		return 0, fmt.Errorf("kepler2b: %w", err)
	}
	return unit.Angle(ea), nil
}

// Kepler3 solves Kepler's equation by binary search (Sinnott), valid for
// any eccentricity in [0, 1). The result is in (-π, π].
func Kepler3(e float64, M unit.Angle) (E unit.Angle, err error) {
	if err := checkEccentricity(e); err != nil {
		return 0, err
	}
	m := M.Mod1().Rad()
	sign := 1.
	if m > math.Pi {
		sign = -1
		m = 2*math.Pi - m
	}
	if m == 0 {
		return 0, nil
	}
	// E - e sin E - M rises monotonically from -M at 0 to π-M at π.
	ea := iterate.BinaryRoot(func(e0 float64) float64 {
		return e0 - e*math.Sin(e0) - m
	}, 0, math.Pi)
	return unit.Angle(sign * ea), nil
}

// Kepler4 returns the closed-form first approximation
// tan E = sin M / (cos M - e). It is only useful for small eccentricities.
func Kepler4(e float64, M unit.Angle) (E unit.Angle, err error) {
	if err := checkEccentricity(e); err != nil {
		return 0, err
	}
	sm, cm := M.Sincos()
	return unit.Angle(math.Atan2(sm, cm-e)), nil
}

// True returns the true anomaly ν for eccentric anomaly E (30.1).
func True(E unit.Angle, e float64) unit.Angle {
	return unit.Angle(2 * math.Atan(math.Sqrt((1+e)/(1-e))*math.Tan(E.Rad()*.5)))
}

// Radius returns the radius vector for eccentric anomaly E (30.2), in the
// units of the semimajor axis a.
func Radius(E unit.Angle, e, a float64) float64 {
	return a * (1 - e*E.Cos())
}
