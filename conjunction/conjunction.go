// Package conjunction finds the time of conjunction in right ascension of
// two bodies, or of a body and a fixed star, from five-row ephemerides.
package conjunction

import (
	"fmt"

	"github.com/soniakeys/unit"

	interp "github.com/tphakala/go-interp"
	"github.com/tphakala/go-interp/internal/mathutil"
)

const ephemerisRows = 5

// ErrFiveRows indicates an ephemeris without exactly five rows.
var ErrFiveRows = fmt.Errorf("five rows required in ephemerides: %w", interp.ErrInvalidArity)

// Planetary computes a conjunction between two moving objects, such as
// planets.
//
// The ephemerides give right ascension and declination of each object at
// five equally spaced times from t1 to t5. The conjunction must fall in
// the middle half of that span.
//
// δt is the time of conjunction in the units of t1 and t5. Δd is the
// declination of object 2 minus that of object 1 at that time.
//
// An error is returned when the ephemerides are malformed or when no
// conjunction is found; the latter wraps the interpolator error, such as
// interp.ErrZeroOutOfRange or interp.ErrNoConvergence.
func Planetary(t1, t5 float64, ra1, dec1, ra2, dec2 []unit.Angle) (δt float64, Δd unit.Angle, err error) {
	if len(ra1) != ephemerisRows || len(dec1) != ephemerisRows ||
		len(ra2) != ephemerisRows || len(dec2) != ephemerisRows {
		return 0, 0, ErrFiveRows
	}
	dr := make([]float64, ephemerisRows)
	dd := make([]float64, ephemerisRows)
	for i := range ephemerisRows {
		dr[i] = mathutil.WrapPi(ra2[i].Rad() - ra1[i].Rad())
		dd[i] = dec2[i].Rad() - dec1[i].Rad()
	}
	return conj(t1, t5, dr, dd)
}

// Stellar computes a conjunction between a moving object and a fixed
// star at right ascension r1, declination d1.
//
// Results and errors are as for Planetary, with the star as object 1.
func Stellar(t1, t5 float64, r1, d1 unit.Angle, ra2, dec2 []unit.Angle) (δt float64, Δd unit.Angle, err error) {
	if len(ra2) != ephemerisRows || len(dec2) != ephemerisRows {
		return 0, 0, ErrFiveRows
	}
	dr := make([]float64, ephemerisRows)
	dd := make([]float64, ephemerisRows)
	for i := range ephemerisRows {
		dr[i] = mathutil.WrapPi(ra2[i].Rad() - r1.Rad())
		dd[i] = dec2[i].Rad() - d1.Rad()
	}
	return conj(t1, t5, dr, dd)
}

func conj(t1, t5 float64, dr, dd []float64) (float64, unit.Angle, error) {
	l5, err := interp.NewLen5(t1, t5, dr)
	if err != nil {
		return 0, 0, fmt.Errorf("right ascension table: %w", err)
	}
	δt, err := l5.Zero(true)
	if err != nil {
		return 0, 0, fmt.Errorf("no conjunction found: %w", err)
	}
	if l5, err = interp.NewLen5(t1, t5, dd); err != nil {
		return 0, 0, fmt.Errorf("declination table: %w", err)
	}
	Δd, err := l5.InterpolateXStrict(δt)
	if err != nil {
		return 0, 0, fmt.Errorf("conjunction outside middle of ephemeris: %w", err)
	}
	return δt, unit.Angle(Δd), nil
}
