package interp_test

import (
	"fmt"

	"github.com/soniakeys/unit"

	interp "github.com/tphakala/go-interp"
)

// Example 3.a: a distance in AU interpolated for November 8 at 4ʰ21ᵐ TD.
func ExampleLen3_InterpolateN() {
	d, err := interp.NewLen3(7, 9, []float64{0.884226, 0.877366, 0.870531})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.6f\n", d.InterpolateN(4.35/24))
	// Output:
	// 0.876125
}

// Example 3.b: least distance of Mars, tabulated for November 12, 16 and 20.
func ExampleLen3_Extremum() {
	d, err := interp.NewLen3(12, 20, []float64{1.3814294, 1.3812213, 1.3812453})
	if err != nil {
		fmt.Println(err)
		return
	}
	x, y, err := d.Extremum()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("distance = %.7f AU\n", y)
	fmt.Printf("date     = %.4f\n", x)
	// Output:
	// distance = 1.3812030 AU
	// date     = 17.5864
}

// Example 3.c: Mercury's declination crosses zero.
func ExampleLen3_Zero() {
	d, err := interp.NewLen3(26, 28, []float64{
		unit.FromSexa('-', 0, 28, 13.4),
		unit.FromSexa(' ', 0, 6, 46.3),
		unit.FromSexa(' ', 0, 38, 23.2),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	x, err := d.Zero(false)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Feb %.5f\n", x)
	// Output:
	// Feb 26.79873
}

// Example 3.d: a table where only the Newton iteration converges.
func ExampleLen3_Zero_strong() {
	d, err := interp.NewLen3(-1, 1, []float64{-2, 3, 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	x, err := d.Zero(true)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("x = %.12f\n", x)
	// Output:
	// x = -0.720759220056
}

// Example 3.e: the Moon's horizontal parallax on 1992 May 28 3ʰ20ᵐ TD.
func ExampleLen5_InterpolateX() {
	d, err := interp.NewLen5(27, 29, []float64{
		unit.FromSexa(' ', 0, 54, 36.125),
		unit.FromSexa(' ', 0, 54, 24.606),
		unit.FromSexa(' ', 0, 54, 15.486),
		unit.FromSexa(' ', 0, 54, 8.694),
		unit.FromSexa(' ', 0, 54, 4.185),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.7f°\n", d.InterpolateX(28+(3+20./60)/24))
	// Output:
	// 0.9037134°
}

// Example 3.g: sin 30° from a table of unequally spaced sines.
func ExampleLagrange() {
	table := []interp.XY{
		{X: 29.43, Y: .4913598528},
		{X: 30.97, Y: .5145891926},
		{X: 27.69, Y: .4646875083},
		{X: 28.11, Y: .4711658342},
		{X: 31.58, Y: .5236885653},
		{X: 33.05, Y: .5453707057},
	}
	y, err := interp.Lagrange(30, table)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.10f\n", y)
	// Output:
	// 0.5000000000
}

func ExampleLagrangePoly() {
	// Rows on y = 1 - x².
	c, err := interp.LagrangePoly([]interp.XY{{X: 1, Y: 0}, {X: 2, Y: -3}, {X: 3, Y: -8}})
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, v := range c {
		fmt.Printf("x^%d: %.3f\n", i, v+0)
	}
	// Output:
	// x^0: 1.000
	// x^1: 0.000
	// x^2: -1.000
}
