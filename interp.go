package interp

import (
	"errors"

	"github.com/tphakala/go-interp/iterate"
)

// XY is one row of a general interpolation table.
type XY struct {
	X, Y float64
}

// Errors returned by the interpolators.
var (
	// ErrInvalidArity indicates a table with the wrong number of rows.
	ErrInvalidArity = errors.New("wrong number of table rows")

	// ErrDegenerateRange indicates a table whose first and last x coincide.
	ErrDegenerateRange = errors.New("no x range: first and last x are equal")

	// ErrOutOfRange indicates a strict interpolation outside the
	// recommended part of the table.
	ErrOutOfRange = errors.New("interpolating factor out of range")

	// ErrNoExtremum indicates a table whose fitted curve has no extremum.
	ErrNoExtremum = errors.New("no extremum in table")

	// ErrExtremumOutOfRange indicates an extremum that lies outside the table.
	ErrExtremumOutOfRange = errors.New("extremum falls outside of table")

	// ErrZeroOutOfRange indicates a zero that lies outside the table.
	ErrZeroOutOfRange = errors.New("zero falls outside of table")

	// ErrNoConvergence indicates the zero or extremum search did not settle.
	ErrNoConvergence = iterate.ErrNoConvergence

	// ErrDuplicateAbscissa indicates two rows of a Lagrange table share an x.
	ErrDuplicateAbscissa = errors.New("duplicate x value in table")
)

func inRange(n, limit float64) bool {
	return n >= -limit && n <= limit
}
