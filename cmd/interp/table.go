package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	interp "github.com/tphakala/go-interp"
)

// Point is one row of a general (Lagrange) table.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// TableFile is the YAML document read by the command.
//
// A fixed-node table gives x1, xlast and three or five y values. A
// general table gives points instead and supports value and sweep modes
// only.
type TableFile struct {
	Name   string    `yaml:"name"`
	X1     float64   `yaml:"x1"`
	XLast  float64   `yaml:"xlast"`
	Y      []float64 `yaml:"y"`
	Points []Point   `yaml:"points"`

	// Angle marks y values as degrees, printed in sexagesimal notation.
	Angle bool `yaml:"angle"`
}

// fixedTable is the query surface shared by interp.Len3 and interp.Len5.
type fixedTable interface {
	Range() (x1, xLast float64)
	InterpolateX(x float64) float64
	InterpolateXStrict(x float64) (float64, error)
	Extremum() (x, y float64, err error)
	Zero(strong bool) (float64, error)
}

var (
	_ fixedTable = (*interp.Len3)(nil)
	_ fixedTable = (*interp.Len5)(nil)
)

// Errors reported for table files.
var (
	errInvalidTable = errors.New("invalid table file")
	errNotSupported = errors.New("mode not supported for general tables")
)

// Load reads and validates a table file.
func Load(path string) (*TableFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file: %w", err)
	}

	var tf TableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse table file: %w", err)
	}
	if err := tf.Validate(); err != nil {
		return nil, err
	}
	return &tf, nil
}

// Validate checks that the file describes exactly one kind of table.
func (tf *TableFile) Validate() error {
	switch {
	case len(tf.Points) > 0 && len(tf.Y) > 0:
		return fmt.Errorf("%w: give either y or points, not both", errInvalidTable)
	case len(tf.Points) == 0 && len(tf.Y) == 0:
		return fmt.Errorf("%w: no y values or points", errInvalidTable)
	case len(tf.Y) > 0 && len(tf.Y) != 3 && len(tf.Y) != 5:
		return fmt.Errorf("%w: %d y values, want 3 or 5", errInvalidTable, len(tf.Y))
	}
	return nil
}

// General reports whether the file holds a Lagrange table.
func (tf *TableFile) General() bool {
	return len(tf.Points) > 0
}

// Fixed builds the Len3 or Len5 interpolator for a fixed-node table.
func (tf *TableFile) Fixed() (fixedTable, error) {
	if len(tf.Y) == 3 {
		return interp.NewLen3(tf.X1, tf.XLast, tf.Y)
	}
	return interp.NewLen5(tf.X1, tf.XLast, tf.Y)
}

// XY converts the points of a general table.
func (tf *TableFile) XY() []interp.XY {
	table := make([]interp.XY, len(tf.Points))
	for i, p := range tf.Points {
		table[i] = interp.XY{X: p.X, Y: p.Y}
	}
	return table
}

// Span returns the x range covered by the table.
func (tf *TableFile) Span() (lo, hi float64) {
	if !tf.General() {
		return tf.X1, tf.XLast
	}
	lo, hi = tf.Points[0].X, tf.Points[0].X
	for _, p := range tf.Points[1:] {
		lo = min(lo, p.X)
		hi = max(hi, p.X)
	}
	return lo, hi
}
