package interp

import (
	"fmt"

	"github.com/tphakala/go-interp/internal/mathutil"
	"github.com/tphakala/go-interp/iterate"
)

// Len5 interpolates a table of five equally spaced y values.
//
// Interpolation uses the fourth-degree polynomial through all five rows
// (3.8). The table rows sit at interpolating factors n = -2 … 2. A Len5
// is immutable and safe for concurrent use.
type Len5 struct {
	x1, x5 float64
	y3     float64
	bcSum  float64 // b + c
	f      float64 // middle second difference
	hjSum  float64 // h + j
	k      float64 // fourth difference
	xSum   float64
	xDiff  float64

	// interpCoeff holds the polynomial in n, constant term first.
	interpCoeff [len5Rows]float64
}

// NewLen5 prepares a Len5 for the table x1, x5, y where y holds the
// values at five equally spaced x from x1 to x5.
//
// It returns ErrInvalidArity unless len(y) is 5 and ErrDegenerateRange
// when x5 == x1.
func NewLen5(x1, x5 float64, y []float64) (*Len5, error) {
	if len(y) != len5Rows {
		return nil, fmt.Errorf("%w: got %d y values, want %d", ErrInvalidArity, len(y), len5Rows)
	}
	if x5 == x1 {
		return nil, fmt.Errorf("%w: x1 = x5 = %v", ErrDegenerateRange, x1)
	}
	a := y[1] - y[0]
	b := y[2] - y[1]
	c := y[3] - y[2]
	dd := y[4] - y[3]
	e := b - a
	f := c - b
	g := dd - c
	h := f - e
	j := g - f
	k := j - h
	d := &Len5{
		x1:    x1,
		x5:    x5,
		y3:    y[2],
		bcSum: b + c,
		f:     f,
		hjSum: h + j,
		k:     k,
		xSum:  x5 + x1,
		xDiff: x5 - x1,
	}
	d.interpCoeff = [len5Rows]float64{
		d.y3,
		d.bcSum/2 - d.hjSum/12,
		f/2 - k/24,
		d.hjSum / 12,
		k / 24,
	}
	return d, nil
}

// Range returns the first and last x of the table.
func (d *Len5) Range() (x1, x5 float64) {
	return d.x1, d.x5
}

// N returns the interpolating factor for x.
func (d *Len5) N(x float64) float64 {
	return (4*x - 2*d.xSum) / d.xDiff
}

// X returns the x value corresponding to interpolating factor n.
func (d *Len5) X(n float64) float64 {
	return .5*d.xSum + .25*d.xDiff*n
}

// Coefficients returns the interpolating polynomial in n, constant term
// first.
func (d *Len5) Coefficients() []float64 {
	return append([]float64(nil), d.interpCoeff[:]...)
}

// InterpolateX interpolates for the given x. The result is unrestricted.
func (d *Len5) InterpolateX(x float64) float64 {
	return d.InterpolateN(d.N(x))
}

// InterpolateXStrict interpolates for the given x, returning
// ErrOutOfRange unless x lies within the middle half of the table.
func (d *Len5) InterpolateXStrict(x float64) (float64, error) {
	return d.InterpolateNStrict(d.N(x))
}

// InterpolateN interpolates for interpolating factor n.
func (d *Len5) InterpolateN(n float64) float64 {
	return mathutil.Horner(n, d.interpCoeff[:]...)
}

// InterpolateNStrict interpolates for interpolating factor n, returning
// ErrOutOfRange when n is outside [-1, 1].
//
// The range is half of the table: accuracy falls off toward the outer
// rows, so the centre row should be chosen nearest the wanted x.
func (d *Len5) InterpolateNStrict(n float64) (float64, error) {
	if !inRange(n, strictN) {
		return 0, fmt.Errorf("%w: n = %v, want [-1, 1]", ErrOutOfRange, n)
	}
	return d.InterpolateN(n), nil
}

// Extremum returns the x and y values at the extremum of the
// interpolating polynomial nearest the table centre (3.9).
//
// It returns ErrExtremumOutOfRange when the iteration has no usable
// denominator or the extremum lies outside the table, and
// ErrNoConvergence when the iteration fails.
func (d *Len5) Extremum() (x, y float64, err error) {
	den := d.k - 12*d.f
	if den == 0 {
		return 0, 0, fmt.Errorf("%w: k - 12f = 0", ErrExtremumOutOfRange)
	}
	nCoeff := []float64{
		6*d.bcSum - d.hjSum,
		0,
		3 * d.hjSum,
		2 * d.k,
	}
	n, ok := iterate.Fixed(searchStart, func(n float64) float64 {
		return mathutil.Horner(n, nCoeff...) / den
	})
	if !ok {
		return 0, 0, fmt.Errorf("%w: extremum search", ErrNoConvergence)
	}
	if !inRange(n, len5SearchN) {
		return 0, 0, fmt.Errorf("%w: n = %v", ErrExtremumOutOfRange, n)
	}
	return d.X(n), d.InterpolateN(n), nil
}

// Zero returns the x value where the interpolating polynomial is zero.
//
// With strong false the simple iteration (3.10) is used; with strong true
// a Newton step on the quartic (3.11). The simple form may diverge on
// sharply curved tables.
//
// It returns ErrNoConvergence when the iteration fails and
// ErrZeroOutOfRange when the zero lies outside the table.
func (d *Len5) Zero(strong bool) (float64, error) {
	var f iterate.BetterFunc
	if strong {
		c := d.interpCoeff[:]
		f = func(n float64) float64 {
			return n - mathutil.Horner(n, c...)/mathutil.HornerDerivative(n, c...)
		}
	} else {
		num := []float64{
			-24 * d.y3,
			0,
			d.k - 12*d.f,
			-2 * d.hjSum,
			-d.k,
		}
		den := 12*d.bcSum - 2*d.hjSum
		f = func(n float64) float64 {
			return mathutil.Horner(n, num...) / den
		}
	}
	n, ok := iterate.Fixed(searchStart, f)
	if !ok {
		return 0, fmt.Errorf("%w: zero search (strong=%t)", ErrNoConvergence, strong)
	}
	if !inRange(n, len5SearchN) {
		return 0, fmt.Errorf("%w: n = %v", ErrZeroOutOfRange, n)
	}
	return d.X(n), nil
}
