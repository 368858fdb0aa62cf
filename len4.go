package interp

import "fmt"

// Len4Half returns the value midway between the two centre rows of a
// table of four equally spaced values.
//
// The result is exact for polynomials up to the third degree. It returns
// ErrInvalidArity unless len(y) is 4.
func Len4Half(y []float64) (float64, error) {
	if len(y) != len4HalfRows {
		return 0, fmt.Errorf("%w: got %d y values, want %d", ErrInvalidArity, len(y), len4HalfRows)
	}
	return (9*(y[1]+y[2]) - y[0] - y[3]) / 16, nil
}
