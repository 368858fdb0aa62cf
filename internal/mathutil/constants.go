package mathutil

import "math"

// Angle constants
const (
	twoPi = 2 * math.Pi
)

// Polynomial evaluation constants
const (
	// minCoefficients is the shortest coefficient list Horner accepts.
	minCoefficients = 1
)
