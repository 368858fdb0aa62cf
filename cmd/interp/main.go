// Command interp evaluates a tabulated function read from a YAML file.
//
// Usage:
//
//	interp -table file.yaml [-mode value|extremum|zero|sweep] [-x value]
//	       [-strict] [-strong] [-steps n] [-angle]
//
// A table file holds either a fixed-node table of three or five equally
// spaced values:
//
//	x1: 8
//	xlast: 12
//	y: [0.884226, 0.877366, 0.870531]
//
// or a list of arbitrary points, interpolated with Lagrange's formula:
//
//	points:
//	  - {x: 29.43, y: 0.4913598528}
//	  - {x: 30.97, y: 0.5145891926}
//
// Modes:
//
//	value     interpolate at -x (default)
//	extremum  locate the maximum or minimum (fixed-node tables only)
//	zero      locate the zero (fixed-node tables only)
//	sweep     print -steps evenly spaced values across the table range
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats"

	interp "github.com/tphakala/go-interp"
)

// options holds parsed command-line settings.
type options struct {
	mode   string
	x      float64
	strict bool
	strong bool
	steps  int
	angle  bool
}

var errUnknownMode = errors.New("unknown mode")

func main() {
	var (
		tablePath = flag.String("table", "", "YAML table file (required)")
		mode      = flag.String("mode", defaultMode, "Query: value, extremum, zero, sweep")
		x         = flag.Float64("x", 0, "Abscissa for value mode")
		strict    = flag.Bool("strict", false, "Reject x outside the table range")
		strong    = flag.Bool("strong", false, "Use Newton iteration for zeros")
		steps     = flag.Int("steps", defaultSteps, "Number of points for sweep mode")
		angle     = flag.Bool("angle", false, "Print y values as sexagesimal degrees")
	)
	flag.Parse()

	if *tablePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	tf, err := Load(*tablePath)
	if err != nil {
		log.Fatalf("Failed to load table: %v", err)
	}

	opts := options{
		mode:   *mode,
		x:      *x,
		strict: *strict,
		strong: *strong,
		steps:  *steps,
		angle:  *angle || tf.Angle,
	}
	if err := run(os.Stdout, tf, opts); err != nil {
		log.Fatalf("Query failed: %v", err)
	}
}

// run answers one query against tf and writes the result to w.
func run(w io.Writer, tf *TableFile, opts options) error {
	if tf.General() {
		return runGeneral(w, tf, opts)
	}

	t, err := tf.Fixed()
	if err != nil {
		return err
	}

	switch opts.mode {
	case modeValue:
		y := t.InterpolateX(opts.x)
		if opts.strict {
			if y, err = t.InterpolateXStrict(opts.x); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "y(%g) = %s\n", opts.x, formatY(y, opts.angle))

	case modeExtremum:
		x, y, err := t.Extremum()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "extremum at x = %.*g\n", valuePrecision, x)
		fmt.Fprintf(w, "         y = %s\n", formatY(y, opts.angle))

	case modeZero:
		x, err := t.Zero(opts.strong)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "zero at x = %.*g\n", valuePrecision, x)

	case modeSweep:
		return sweep(w, tf, opts, func(x float64) (float64, error) {
			return t.InterpolateX(x), nil
		})

	default:
		return fmt.Errorf("%w: %q", errUnknownMode, opts.mode)
	}
	return nil
}

func runGeneral(w io.Writer, tf *TableFile, opts options) error {
	table := tf.XY()

	switch opts.mode {
	case modeValue:
		if opts.strict {
			lo, hi := tf.Span()
			if opts.x < lo || opts.x > hi {
				return fmt.Errorf("%w: x=%g outside [%g, %g]", interp.ErrOutOfRange, opts.x, lo, hi)
			}
		}
		y, err := interp.Lagrange(opts.x, table)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "y(%g) = %s\n", opts.x, formatY(y, opts.angle))

	case modeSweep:
		return sweep(w, tf, opts, func(x float64) (float64, error) {
			return interp.Lagrange(x, table)
		})

	case modeExtremum, modeZero:
		return fmt.Errorf("%w: %s", errNotSupported, opts.mode)

	default:
		return fmt.Errorf("%w: %q", errUnknownMode, opts.mode)
	}
	return nil
}

// sweep prints evenly spaced values across the table range.
func sweep(w io.Writer, tf *TableFile, opts options, eval func(float64) (float64, error)) error {
	if opts.steps < minSweepSteps {
		return fmt.Errorf("%w: steps=%d, need at least %d", errInvalidTable, opts.steps, minSweepSteps)
	}
	lo, hi := tf.Span()
	xs := floats.Span(make([]float64, opts.steps), lo, hi)
	for _, x := range xs {
		y, err := eval(x)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-14.*g %s\n", valuePrecision, x, formatY(y, opts.angle))
	}
	return nil
}

// formatY renders y as a plain number or, for angles, in degrees,
// minutes and seconds.
func formatY(y float64, angle bool) string {
	if angle {
		return fmt.Sprintf("%.*s", anglePrecision, sexa.FmtAngle(unit.AngleFromDeg(y)))
	}
	return fmt.Sprintf("%.*g", valuePrecision, y)
}
