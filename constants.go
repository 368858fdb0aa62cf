package interp

// Table sizes
const (
	len3Rows     = 3
	len4HalfRows = 4
	len5Rows     = 5
)

// Interpolating factor ranges
const (
	// strictN bounds n for strict interpolation and for the Len3
	// extremum and zero searches.
	strictN = 1.0

	// len5SearchN bounds n for the Len5 extremum and zero searches,
	// which may use the whole table.
	len5SearchN = 2.0
)

// Fixed-point starting estimate for zero and extremum searches.
const searchStart = 0.0
