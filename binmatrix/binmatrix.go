// Package binmatrix records scalar snapshots of the boolean read-by-variant
// matrices the clustering pipeline works on.
package binmatrix

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"strainstats/internal/yamlutil"
	"strainstats/pkg/schema"
)

// ErrEmptyMatrix is returned when density or sparsity is requested for a
// matrix with zero cells.
var ErrEmptyMatrix = errors.New("empty matrix: density and sparsity are undefined")

// Source is the boolean-matrix collaborator interface: anything that reports
// its shape and true/false cell counts. Stats itself satisfies it.
type Source interface {
	Rows() int
	Columns() int
	Ones() int
	Zeros() int
}

// Stats is an immutable snapshot of one boolean matrix.
type Stats struct {
	rows     int
	columns  int
	ones     int
	zeros    int
	density  float64
	sparsity float64
}

// New builds a Stats from all six recorded values, as-is.
func New(rows, columns, ones, zeros int, density, sparsity float64) Stats {
	return Stats{
		rows:     rows,
		columns:  columns,
		ones:     ones,
		zeros:    zeros,
		density:  density,
		sparsity: sparsity,
	}
}

// FromCounts builds a Stats from the four counts, deriving density and
// sparsity. It fails on a zero-cell matrix, where the ratios are undefined.
func FromCounts(rows, columns, ones, zeros int) (Stats, error) {
	cells := rows * columns
	if cells == 0 {
		return Stats{}, fmt.Errorf("%dx%d matrix: %w", rows, columns, ErrEmptyMatrix)
	}
	return Stats{
		rows:     rows,
		columns:  columns,
		ones:     ones,
		zeros:    zeros,
		density:  float64(ones) / float64(cells),
		sparsity: float64(zeros) / float64(cells),
	}, nil
}

// FromMatrix derives a Stats from a boolean matrix source. The empty matrix
// is recorded with zero density and sparsity instead of failing.
func FromMatrix(m Source) Stats {
	s, err := FromCounts(m.Rows(), m.Columns(), m.Ones(), m.Zeros())
	if err != nil {
		return New(m.Rows(), m.Columns(), m.Ones(), m.Zeros(), 0, 0)
	}
	return s
}

func (s Stats) Rows() int         { return s.rows }
func (s Stats) Columns() int      { return s.columns }
func (s Stats) Ones() int         { return s.ones }
func (s Stats) Zeros() int        { return s.zeros }
func (s Stats) Density() float64  { return s.density }
func (s Stats) Sparsity() float64 { return s.sparsity }

// CountsConsistent reports whether ones+zeros equals rows*columns.
func (s Stats) CountsConsistent() bool {
	return s.ones+s.zeros == s.rows*s.columns
}

// String returns the human-readable multi-line summary.
func (s Stats) String() string {
	return strings.Join([]string{
		fmt.Sprintf("Dimensions: %d x %d (%d)", s.rows, s.columns, s.rows*s.columns),
		fmt.Sprintf("Number of ones: %d", s.ones),
		fmt.Sprintf("Number of zeros: %d", s.zeros),
		fmt.Sprintf("Density: %g", s.density),
		fmt.Sprintf("Sparsity: %g", s.sparsity),
	}, "\n")
}

// ToV1 converts to the wire schema.
func (s Stats) ToV1() schema.MatrixStatsV1 {
	return schema.MatrixStatsV1{
		NumberOfRows:    s.rows,
		NumberOfColumns: s.columns,
		NumberOfOnes:    s.ones,
		NumberOfZeros:   s.zeros,
		Density:         s.density,
		Sparsity:        s.sparsity,
	}
}

// StatsFromNode decodes one matrix-stats mapping node.
func StatsFromNode(n *yaml.Node) (Stats, error) {
	rows, err := yamlutil.Int(n, schema.KeyNumberOfRows)
	if err != nil {
		return Stats{}, err
	}
	columns, err := yamlutil.Int(n, schema.KeyNumberOfColumns)
	if err != nil {
		return Stats{}, err
	}
	ones, err := yamlutil.Int(n, schema.KeyNumberOfOnes)
	if err != nil {
		return Stats{}, err
	}
	zeros, err := yamlutil.Int(n, schema.KeyNumberOfZeros)
	if err != nil {
		return Stats{}, err
	}
	density, err := yamlutil.Float(n, schema.KeyDensity)
	if err != nil {
		return Stats{}, err
	}
	sparsity, err := yamlutil.Float(n, schema.KeySparsity)
	if err != nil {
		return Stats{}, err
	}
	return New(rows, columns, ones, zeros, density, sparsity), nil
}
