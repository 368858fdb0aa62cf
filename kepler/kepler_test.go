package kepler

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-interp/iterate"
)

type solver func(e float64, M unit.Angle) (unit.Angle, error)

func withPlaces(f func(float64, unit.Angle, int) (unit.Angle, error), places int) solver {
	return func(e float64, M unit.Angle) (unit.Angle, error) {
		return f(e, M, places)
	}
}

// residual returns E - e sin E - M, zero for an exact solution.
func residual(e float64, M, E unit.Angle) float64 {
	return E.Rad() - e*E.Sin() - M.Rad()
}

// TestKepler1 tests Example 30.a.
func TestKepler1(t *testing.T) {
	E, err := Kepler1(.1, unit.AngleFromDeg(5), 8)
	require.NoError(t, err)
	assert.InDelta(t, 5.554589, E.Deg(), 5e-7)
}

// TestSolvers_Residual tests every iterative solver on moderate orbits.
func TestSolvers_Residual(t *testing.T) {
	solvers := map[string]solver{
		"Kepler1":  withPlaces(Kepler1, 12),
		"Kepler2":  withPlaces(Kepler2, 12),
		"Kepler2a": withPlaces(Kepler2a, 12),
		"Kepler2b": Kepler2b,
		"Kepler3":  Kepler3,
	}
	cases := []struct {
		e float64
		M unit.Angle
	}{
		{0, unit.AngleFromDeg(40)},
		{.1, unit.AngleFromDeg(5)},
		{.3, unit.AngleFromDeg(120)},
		{.5, unit.AngleFromDeg(-30)},
	}

	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			for _, c := range cases {
				E, err := solve(c.e, c.M)
				require.NoError(t, err, "e=%v M=%v", c.e, c.M.Deg())
				assert.InDelta(t, 0, residual(c.e, c.M, E), 1e-11, "e=%v M=%v", c.e, c.M.Deg())
			}
		})
	}
}

// TestHighEccentricity tests e = 0.99, where the simple iteration fails
// and the Newton and binary solvers agree.
func TestHighEccentricity(t *testing.T) {
	M := unit.Angle(.01)

	_, err := Kepler1(.99, M, 10)
	assert.ErrorIs(t, err, iterate.ErrNoConvergence)

	e2, err := Kepler2(.99, M, 12)
	require.NoError(t, err)
	e2a, err := Kepler2a(.99, M, 12)
	require.NoError(t, err)
	e2b, err := Kepler2b(.99, M)
	require.NoError(t, err)
	e3, err := Kepler3(.99, M)
	require.NoError(t, err)

	assert.InDelta(t, 0.3422703164917755, e2.Rad(), 1e-11)
	assert.InDelta(t, e2.Rad(), e2a.Rad(), 1e-11)
	assert.InDelta(t, e2.Rad(), e2b.Rad(), 1e-11)
	assert.InDelta(t, e2.Rad(), e3.Rad(), 1e-11)
}

// TestSolvers_ZeroAnomaly tests that M = 0 gives E = 0 exactly.
func TestSolvers_ZeroAnomaly(t *testing.T) {
	for name, solve := range map[string]solver{"Kepler2b": Kepler2b, "Kepler3": Kepler3} {
		E, err := solve(.5, 0)
		require.NoError(t, err, name)
		assert.Equal(t, 0.0, E.Rad(), name)
	}
}

// TestKepler3_MatchesKepler2b tests the bisection against full-precision
// Newton iteration.
func TestKepler3_MatchesKepler2b(t *testing.T) {
	for _, e := range []float64{.05, .3, .7, .95} {
		for deg := 10.0; deg < 180; deg += 20 {
			M := unit.AngleFromDeg(deg)
			newton, err := Kepler2b(e, M)
			require.NoError(t, err)
			bisect, err := Kepler3(e, M)
			require.NoError(t, err)
			assert.InDelta(t, newton.Rad(), bisect.Rad(), 1e-14, "e=%v M=%v°", e, deg)
		}
	}
}

// TestKepler3_Range tests the binary search across a whole revolution.
func TestKepler3_Range(t *testing.T) {
	for deg := -180.0; deg <= 540; deg += 15 {
		M := unit.AngleFromDeg(deg)
		E, err := Kepler3(.7, M)
		require.NoError(t, err)
		assert.LessOrEqual(t, math.Abs(E.Rad()), math.Pi+1e-12)
		r := residual(.7, M, E)
		// Compare modulo a full turn.
		r = math.Remainder(r, 2*math.Pi)
		assert.InDelta(t, 0, r, 1e-14, "M=%v°", deg)
	}
}

// TestKepler4 tests the approximation against an exact solution.
func TestKepler4(t *testing.T) {
	M := unit.AngleFromDeg(5)
	approx, err := Kepler4(.1, M)
	require.NoError(t, err)
	exact, err := Kepler3(.1, M)
	require.NoError(t, err)
	assert.InDelta(t, exact.Deg(), approx.Deg(), 0.01)

	zero, err := Kepler4(0, M)
	require.NoError(t, err)
	assert.InDelta(t, M.Rad(), zero.Rad(), 1e-15)
}

// TestEccentricityErrors tests the eccentricity bound on every solver.
func TestEccentricityErrors(t *testing.T) {
	solvers := map[string]solver{
		"Kepler1":  withPlaces(Kepler1, 8),
		"Kepler2":  withPlaces(Kepler2, 8),
		"Kepler2a": withPlaces(Kepler2a, 8),
		"Kepler2b": Kepler2b,
		"Kepler3":  Kepler3,
		"Kepler4":  Kepler4,
	}
	for name, solve := range solvers {
		for _, e := range []float64{-0.1, 1, 1.5, math.NaN()} {
			_, err := solve(e, 1)
			assert.ErrorIs(t, err, ErrEccentricity, "%s e=%v", name, e)
		}
	}
}

// TestTrueAndRadius tests Example 30.a's anomaly and radius for a = 1.
func TestTrueAndRadius(t *testing.T) {
	e := .1
	E, err := Kepler3(e, unit.AngleFromDeg(5))
	require.NoError(t, err)

	nu := True(E, e)
	// cos ν = (cos E - e) / (1 - e cos E)
	assert.InDelta(t, (E.Cos()-e)/(1-e*E.Cos()), nu.Cos(), 1e-14)
	assert.Greater(t, nu.Rad(), E.Rad())

	r := Radius(E, e, 1)
	assert.InDelta(t, (1-e*e)/(1+e*nu.Cos()), r, 1e-14)

	assert.InDelta(t, 0.0, True(0, e).Rad(), 1e-15)
	assert.InDelta(t, 1-e, Radius(0, e, 1), 1e-15)
}

// BenchmarkKepler2 benchmarks Newton's method at full useful precision.
func BenchmarkKepler2(b *testing.B) {
	M := unit.AngleFromDeg(5)
	for b.Loop() {
		_, _ = Kepler2(.1, M, 14)
	}
}

// BenchmarkKepler3 benchmarks the binary search.
func BenchmarkKepler3(b *testing.B) {
	M := unit.AngleFromDeg(5)
	for b.Loop() {
		_, _ = Kepler3(.1, M)
	}
}
