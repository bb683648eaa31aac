package binmatrix

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type boolMatrix struct {
	rows, cols, ones int
}

func (m boolMatrix) Rows() int    { return m.rows }
func (m boolMatrix) Columns() int { return m.cols }
func (m boolMatrix) Ones() int    { return m.ones }
func (m boolMatrix) Zeros() int   { return m.rows*m.cols - m.ones }

func TestFromMatrix(t *testing.T) {
	s := FromMatrix(boolMatrix{rows: 4, cols: 3, ones: 5})
	if s.Rows() != 4 || s.Columns() != 3 || s.Ones() != 5 || s.Zeros() != 7 {
		t.Fatalf("counts wrong: %+v", s)
	}
	if math.Abs(s.Density()-5.0/12) > 1e-12 || math.Abs(s.Sparsity()-7.0/12) > 1e-12 {
		t.Fatalf("ratios wrong: density=%v sparsity=%v", s.Density(), s.Sparsity())
	}
	if math.Abs(s.Density()+s.Sparsity()-1) > 1e-12 {
		t.Fatalf("density+sparsity = %v, want 1", s.Density()+s.Sparsity())
	}
	if !s.CountsConsistent() {
		t.Fatalf("counts inconsistent: %+v", s)
	}
}

func TestFromMatrix_Empty(t *testing.T) {
	s := FromMatrix(boolMatrix{rows: 0, cols: 7})
	if s.Rows() != 0 || s.Columns() != 7 || s.Density() != 0 || s.Sparsity() != 0 {
		t.Fatalf("empty matrix not special-cased: %+v", s)
	}
}

func TestFromCounts_EmptyFails(t *testing.T) {
	if _, err := FromCounts(0, 0, 0, 0); !errors.Is(err, ErrEmptyMatrix) {
		t.Fatalf("want ErrEmptyMatrix, got %v", err)
	}
	if _, err := FromCounts(3, 0, 0, 0); !errors.Is(err, ErrEmptyMatrix) {
		t.Fatalf("want ErrEmptyMatrix for 3x0, got %v", err)
	}
}

func TestStats_RoundTrip(t *testing.T) {
	in := New(2, 4, 6, 2, 0.75, 0.25)
	data, err := yaml.Marshal(in.ToV1())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := StatsFromNode(n.Content[0])
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip changed value: got %+v want %+v", out, in)
	}
}

func TestStats_String(t *testing.T) {
	s := New(4, 3, 5, 7, 5.0/12, 7.0/12)
	out := s.String()
	for _, want := range []string{"Dimensions: 4 x 3 (12)", "Number of ones: 5", "Number of zeros: 7", "Density:", "Sparsity:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}
