package interp

import (
	"fmt"

	"github.com/tphakala/go-interp/internal/simdops"
)

// Lagrange interpolates the table at x using the Lagrange interpolating
// formula (3.12).
//
// The table rows may be in any order and need not be equally spaced, but
// all X values must be distinct: ErrDuplicateAbscissa is returned
// otherwise, and ErrInvalidArity for an empty table. Each call costs
// O(n²) in the number of rows.
func Lagrange(x float64, table []XY) (float64, error) {
	if err := validateTable(table); err != nil {
		return 0, err
	}
	ys := make([]float64, len(table))
	w := make([]float64, len(table))
	for i, ri := range table {
		ys[i] = ri.Y
		prod := 1.0
		for j, rj := range table {
			if i != j {
				prod *= (x - rj.X) / (ri.X - rj.X)
			}
		}
		w[i] = prod
	}
	return simdops.Float64Ops().DotProduct(ys, w), nil
}

// LagrangePoly returns the coefficients of the polynomial of degree
// len(table)-1 passing through every table row, constant term first.
// The result can be evaluated with Horner's method.
//
// The coefficients are built by multiplying out each Lagrange basis
// polynomial one factor at a time. That is numerically sensitive for
// large tables and is intended for small ones of up to about ten rows.
// Errors are as for Lagrange.
func LagrangePoly(table []XY) ([]float64, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}
	ops := simdops.Float64Ops()
	n := len(table)
	sum := make([]float64, n)
	basis := make([]float64, n)
	tmp := make([]float64, n)
	for i, ri := range table {
		clear(basis)
		basis[0] = 1
		deg := 0
		for j, rj := range table {
			if i == j {
				continue
			}
			// basis *= (x - xj) / (xi - xj)
			den := ri.X - rj.X
			deg++
			for k := deg; k > 0; k-- {
				basis[k] = (basis[k-1] - rj.X*basis[k]) / den
			}
			basis[0] = -rj.X * basis[0] / den
		}
		ops.AddScaled(sum, basis, tmp, ri.Y)
	}
	return sum, nil
}

func validateTable(table []XY) error {
	if len(table) == 0 {
		return fmt.Errorf("%w: empty table", ErrInvalidArity)
	}
	for i := 1; i < len(table); i++ {
		for j := range i {
			if table[i].X == table[j].X {
				return fmt.Errorf("%w: rows %d and %d have x = %v", ErrDuplicateAbscissa, j, i, table[i].X)
			}
		}
	}
	return nil
}
