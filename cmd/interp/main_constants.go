package main

// Default command-line flag values
const (
	defaultMode  = modeValue
	defaultSteps = 11 // sweep points including both ends
)

// Query modes
const (
	modeValue    = "value"
	modeExtremum = "extremum"
	modeZero     = "zero"
	modeSweep    = "sweep"
)

// Output formatting
const (
	valuePrecision = 10 // significant digits for plain values
	anglePrecision = 3  // decimal places of arcseconds
	minSweepSteps  = 2
)
