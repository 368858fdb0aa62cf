package interp

import (
	"fmt"

	"github.com/tphakala/go-interp/iterate"
)

// Len3 interpolates a table of three equally spaced y values.
//
// The x values are implied by the first and last x. Differences and sums
// are computed once by NewLen3; a Len3 is immutable and safe for
// concurrent use.
type Len3 struct {
	x1, x3 float64
	y      [len3Rows]float64
	a, b   float64 // first differences
	c      float64 // second difference
	abSum  float64
	xSum   float64
	xDiff  float64
}

// NewLen3 prepares a Len3 for the table x1, x3, y where y holds the
// values at x1, (x1+x3)/2 and x3.
//
// It returns ErrInvalidArity unless len(y) is 3 and ErrDegenerateRange
// when x3 == x1.
func NewLen3(x1, x3 float64, y []float64) (*Len3, error) {
	if len(y) != len3Rows {
		return nil, fmt.Errorf("%w: got %d y values, want %d", ErrInvalidArity, len(y), len3Rows)
	}
	if x3 == x1 {
		return nil, fmt.Errorf("%w: x1 = x3 = %v", ErrDegenerateRange, x1)
	}
	d := &Len3{
		x1:    x1,
		x3:    x3,
		xSum:  x3 + x1,
		xDiff: x3 - x1,
	}
	copy(d.y[:], y)
	d.a = y[1] - y[0]
	d.b = y[2] - y[1]
	d.c = d.b - d.a
	d.abSum = d.a + d.b
	return d, nil
}

// Range returns the first and last x of the table.
func (d *Len3) Range() (x1, x3 float64) {
	return d.x1, d.x3
}

// N returns the interpolating factor for x. The table rows sit at
// n = -1, 0 and 1.
func (d *Len3) N(x float64) float64 {
	return (2*x - d.xSum) / d.xDiff
}

// X returns the x value corresponding to interpolating factor n.
func (d *Len3) X(n float64) float64 {
	return .5 * (d.xSum + d.xDiff*n)
}

// InterpolateX interpolates for the given x. The result is unrestricted:
// x outside the table extrapolates.
func (d *Len3) InterpolateX(x float64) float64 {
	return d.InterpolateN(d.N(x))
}

// InterpolateXStrict interpolates for the given x, returning
// ErrOutOfRange when x lies outside the table.
func (d *Len3) InterpolateXStrict(x float64) (float64, error) {
	return d.InterpolateNStrict(d.N(x))
}

// InterpolateN interpolates for interpolating factor n (3.3).
func (d *Len3) InterpolateN(n float64) float64 {
	return d.y[1] + n*.5*(d.abSum+n*d.c)
}

// InterpolateNStrict interpolates for interpolating factor n, returning
// ErrOutOfRange when n is outside [-1, 1].
func (d *Len3) InterpolateNStrict(n float64) (float64, error) {
	if !inRange(n, strictN) {
		return 0, fmt.Errorf("%w: n = %v, want [-1, 1]", ErrOutOfRange, n)
	}
	return d.InterpolateN(n), nil
}

// Slope returns dy/dn, the derivative of the interpolating parabola with
// respect to the interpolating factor, at n.
func (d *Len3) Slope(n float64) float64 {
	return .5*d.abSum + n*d.c
}

// Extremum returns the x and y values at the vertex of the parabola
// through the table (3.4), (3.5).
//
// It returns ErrNoExtremum when the table is linear and
// ErrExtremumOutOfRange when the vertex lies outside the table.
func (d *Len3) Extremum() (x, y float64, err error) {
	if d.c == 0 {
		return 0, 0, ErrNoExtremum
	}
	n := d.abSum / (-2 * d.c)
	if !inRange(n, strictN) {
		return 0, 0, fmt.Errorf("%w: n = %v", ErrExtremumOutOfRange, n)
	}
	x = d.X(n)
	y = d.y[1] - (d.abSum*d.abSum)/(8*d.c)
	return x, y, nil
}

// Zero returns the x value where the interpolating parabola is zero.
//
// With strong false the simple iteration (3.6) is used. It converges for
// gently curved tables but may diverge when the curvature is large
// relative to the slope. With strong true a Newton step (3.7) is used,
// which converges in more cases at slightly higher cost.
//
// It returns ErrNoConvergence when the iteration fails and
// ErrZeroOutOfRange when the zero lies outside the table.
func (d *Len3) Zero(strong bool) (float64, error) {
	var f iterate.BetterFunc
	if strong {
		f = func(n float64) float64 {
			return n - (2*d.y[1]+n*(d.abSum+d.c*n))/(d.abSum+2*d.c*n)
		}
	} else {
		f = func(n float64) float64 {
			return -2 * d.y[1] / (d.abSum + d.c*n)
		}
	}
	n, ok := iterate.Fixed(searchStart, f)
	if !ok {
		return 0, fmt.Errorf("%w: zero search (strong=%t)", ErrNoConvergence, strong)
	}
	if !inRange(n, strictN) {
		return 0, fmt.Errorf("%w: n = %v", ErrZeroOutOfRange, n)
	}
	return d.X(n), nil
}
