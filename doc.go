// Package interp provides the interpolation methods of chapter 3 of Jean
// Meeus, "Astronomical Algorithms", in pure Go.
//
// # Features
//
//   - Three-row tables ([Len3]): interpolation, extremum and zero of the
//     parabola through three equally spaced values
//   - Four-row tables ([Len4Half]): the value midway between the centre
//     rows
//   - Five-row tables ([Len5]): the same operations on the quartic through
//     five equally spaced values
//   - General tables: [Lagrange] interpolation for unequally spaced x, and
//     [LagrangePoly] for the coefficients of the interpolating polynomial
//   - Bounded fixed-point iteration with two zero-finding strategies, see
//     package github.com/tphakala/go-interp/iterate
//
// # Quick Start
//
// Interpolate a distance in AU for November 8 at 4ʰ21ᵐ from three daily
// values (Example 3.a):
//
//	d, err := interp.NewLen3(7, 9, []float64{0.884226, 0.877366, 0.870531})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := d.InterpolateX(8 + 4.35/24) // 0.876125
//
// # Interpolating Factor
//
// Fixed-node tables are described by their first and last x only. Values
// are addressed either by x or by the interpolating factor n, the offset
// from the centre row in units of the table interval. Len3 rows sit at
// n = -1, 0, 1 and Len5 rows at n = -2 … 2.
//
// The Strict variants of the interpolation methods return [ErrOutOfRange]
// for n outside [-1, 1]. For Len5 that is the middle half of the table,
// where the book recommends interpolating; choose the centre row nearest
// the wanted x.
//
// # Zeros
//
// Zero takes a strong flag. The simple iteration (strong = false) is the
// one given first in the book and converges for gently curved tables. The
// Newton form (strong = true) converges in more cases. Both are bounded
// to 50 steps and report [ErrNoConvergence] rather than looping.
//
// # Errors
//
// All failures are returned as errors wrapping one of the sentinel values
// ([ErrInvalidArity], [ErrDegenerateRange], [ErrOutOfRange],
// [ErrNoExtremum], [ErrExtremumOutOfRange], [ErrZeroOutOfRange],
// [ErrNoConvergence], [ErrDuplicateAbscissa]); test them with errors.Is.
// Nothing is retried internally.
//
// # Thread Safety
//
// [Len3] and [Len5] values are immutable after construction and may be
// shared between goroutines.
package interp
