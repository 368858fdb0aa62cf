// Package minsep computes angular separations and the minimum separation
// of two moving bodies from three-row ephemerides.
package minsep

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/spatial/r3"

	interp "github.com/tphakala/go-interp"
	"github.com/tphakala/go-interp/iterate"
)

const (
	ephemerisRows = 3

	// rectPlaces is the precision, in decimal places of the interpolating
	// factor, to which MinSepRect refines the time of minimum.
	rectPlaces = 12
)

// ErrThreeRows indicates an ephemeris without exactly three rows.
var ErrThreeRows = fmt.Errorf("three rows required in ephemerides: %w", interp.ErrInvalidArity)

func unitVec(ra, dec unit.Angle) r3.Vec {
	sr, cr := ra.Sincos()
	sd, cd := dec.Sincos()
	return r3.Vec{X: cd * cr, Y: cd * sr, Z: sd}
}

// Sep returns the angular separation between two points on the celestial
// sphere given by right ascension and declination.
//
// The separation is computed as atan2(|a×b|, a·b) of the direction
// vectors, which stays accurate for both very small and nearly opposite
// points, where the cosine formula (17.1) loses precision.
func Sep(r1, d1, r2, d2 unit.Angle) unit.Angle {
	a := unitVec(r1, d1)
	b := unitVec(r2, d2)
	return unit.Angle(math.Atan2(r3.Norm(r3.Cross(a, b)), r3.Dot(a, b)))
}

func checkRows(r1, d1, r2, d2 []unit.Angle) error {
	if len(r1) != ephemerisRows || len(d1) != ephemerisRows ||
		len(r2) != ephemerisRows || len(d2) != ephemerisRows {
		return ErrThreeRows
	}
	return nil
}

// MinSep returns the time and value of the minimum angular separation of
// two bodies.
//
// The ephemerides give right ascension and declination of each body at
// three equally spaced times from jd1 to jd3. The separation is computed
// at each time and the minimum located on the parabola through the three
// values, so the result is only as good as that parabola; see MinSepRect
// for a more accurate method.
func MinSep(jd1, jd3 float64, r1, d1, r2, d2 []unit.Angle) (jd float64, sep unit.Angle, err error) {
	if err := checkRows(r1, d1, r2, d2); err != nil {
		return 0, 0, err
	}
	y := make([]float64, ephemerisRows)
	for i := range y {
		y[i] = Sep(r1[i], d1[i], r2[i], d2[i]).Rad()
	}
	d3, err := interp.NewLen3(jd1, jd3, y)
	if err != nil {
		return 0, 0, err
	}
	jd, s, err := d3.Extremum()
	if err != nil {
		return 0, 0, fmt.Errorf("minimum separation: %w", err)
	}
	return jd, unit.Angle(s), nil
}

// uv returns rectangular coordinates of body 2 relative to body 1 in the
// plane tangent to the sphere at body 1 (17.5).
func uv(r1, d1, r2, d2 unit.Angle) (u, v float64) {
	sd1, cd1 := d1.Sincos()
	Δr := r2.Rad() - r1.Rad()
	tΔr := math.Tan(Δr)
	thΔr := math.Tan(Δr / 2)
	k := 1 / (1 + sd1*sd1*tΔr*thΔr)
	sΔd := math.Sin(d2.Rad() - d1.Rad())
	u = -k * (1 - (sd1/cd1)*sΔd) * cd1 * tΔr
	v = k * (sΔd + sd1*cd1*tΔr*thΔr)
	return u, v
}

// MinSepRect returns the time and value of the minimum angular separation
// of two bodies, using rectangular coordinates.
//
// The rectangular coordinates u and v of body 2 relative to body 1 vary
// nearly linearly with time, so interpolating them and minimising
// √(u² + v²) is more accurate than interpolating the separation itself.
// Arguments are as for MinSep.
func MinSepRect(jd1, jd3 float64, r1, d1, r2, d2 []unit.Angle) (jd float64, sep unit.Angle, err error) {
	if err := checkRows(r1, d1, r2, d2); err != nil {
		return 0, 0, err
	}
	us := make([]float64, ephemerisRows)
	vs := make([]float64, ephemerisRows)
	for i := range us {
		us[i], vs[i] = uv(r1[i], d1[i], r2[i], d2[i])
	}
	u3, err := interp.NewLen3(jd1, jd3, us)
	if err != nil {
		return 0, 0, err
	}
	v3, err := interp.NewLen3(jd1, jd3, vs)
	if err != nil {
		return 0, 0, err
	}
	// Newton step on d(u² + v²)/dn = 0, neglecting second derivatives.
	better := func(n float64) float64 {
		u, v := u3.InterpolateN(n), v3.InterpolateN(n)
		up, vp := u3.Slope(n), v3.Slope(n)
		return n - (u*up+v*vp)/(up*up+vp*vp)
	}
	n, err := iterate.DecimalPlaces(better, 0, rectPlaces, iterate.MaxSteps)
	if err != nil {
		return 0, 0, fmt.Errorf("minimum separation: %w", err)
	}
	if n < -1 || n > 1 {
		return 0, 0, fmt.Errorf("minimum separation: %w: n = %v", interp.ErrExtremumOutOfRange, n)
	}
	return u3.X(n), unit.Angle(math.Hypot(u3.InterpolateN(n), v3.InterpolateN(n))), nil
}
