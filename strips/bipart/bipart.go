// Package bipart records the binary split of a strip into its two inferred
// haplotype classes.
package bipart

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"strainstats/binmatrix"
	"strainstats/internal/yamlutil"
	"strainstats/pkg/schema"
)

// Class is one of the two bipartition classes.
type Class int

const (
	ClassZero Class = iota
	ClassOne
)

// Complement returns the other class.
func (c Class) Complement() Class {
	switch c {
	case ClassZero:
		return ClassOne
	default:
		return ClassZero
	}
}

// Int returns the wire value, 0 or 1.
func (c Class) Int() int { return int(c) }

func (c Class) String() string {
	if c == ClassZero {
		return "ZERO"
	}
	return "ONE"
}

// ClassFromInt validates a wire value. Anything outside {0, 1} is rejected.
func ClassFromInt(v int) (Class, error) {
	switch v {
	case 0:
		return ClassZero, nil
	case 1:
		return ClassOne, nil
	default:
		return 0, &schema.ClassError{Value: v}
	}
}

// Stats is one bipartition outcome: a matrix snapshot tagged with the
// partition index and class.
type Stats struct {
	index  int
	class  Class
	matrix binmatrix.Stats
}

// New builds a bipartition record.
func New(index int, class Class, matrix binmatrix.Stats) Stats {
	return Stats{index: index, class: class, matrix: matrix}
}

func (s Stats) Index() int                   { return s.index }
func (s Stats) Class() Class                 { return s.class }
func (s Stats) MatrixStats() binmatrix.Stats { return s.matrix }

func (s Stats) String() string {
	return strings.Join([]string{
		fmt.Sprintf("index: %d", s.index),
		fmt.Sprintf("bipart class: %d", s.class.Int()),
		"",
		"binmatrix stats",
		"---------------",
		s.matrix.String(),
		"",
	}, "\n")
}

// ToV1 converts to the wire schema.
func (s Stats) ToV1() schema.BiPartStatsV1 {
	return schema.BiPartStatsV1{
		Index:          s.index,
		Class:          s.class.Int(),
		BinMatrixStats: s.matrix.ToV1(),
	}
}

// StatsFromNode decodes one bipart-stats mapping node.
func StatsFromNode(n *yaml.Node) (Stats, error) {
	index, err := yamlutil.Int(n, schema.KeyIndex)
	if err != nil {
		return Stats{}, err
	}
	rawClass, err := yamlutil.Int(n, schema.KeyClass)
	if err != nil {
		return Stats{}, err
	}
	class, err := ClassFromInt(rawClass)
	if err != nil {
		if ce, ok := err.(*schema.ClassError); ok {
			ce.Line = n.Line
		}
		return Stats{}, err
	}
	mn, err := yamlutil.Map(n, schema.KeyBinMatrixStats)
	if err != nil {
		return Stats{}, err
	}
	matrix, err := binmatrix.StatsFromNode(mn)
	if err != nil {
		return Stats{}, err
	}
	return New(index, class, matrix), nil
}
