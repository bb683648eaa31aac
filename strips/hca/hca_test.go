package hca

import (
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"strainstats/binmatrix"
	"strainstats/strips/bipart"
)

func matrix(rows, cols, ones int) binmatrix.Stats {
	s, err := binmatrix.FromCounts(rows, cols, ones, rows*cols-ones)
	if err != nil {
		panic(err)
	}
	return s
}

func roundTrip(t *testing.T, p *ProcessStats) *ProcessStats {
	t.Helper()
	data, err := yaml.Marshal(p.ToV1())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := ProcessStatsFromNode(n.Content[0])
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestProcessStats_RoundTrip(t *testing.T) {
	var pre PreStripCollection
	pre.Append(matrix(2, 2, 1))
	pre.Extend(matrix(4, 3, 5), matrix(1, 8, 8))

	strip := NewStripStats(0, 10,
		bipart.New(0, bipart.ClassZero, matrix(3, 10, 12)),
		bipart.New(0, bipart.ClassOne, matrix(5, 10, 31)),
	)
	var high StripCollection
	high.Append(strip)

	var low LowQualityStripCollection
	low.Append(NewLowQualityStripStats(2, 6, matrix(2, 6, 4), matrix(1, 6, 6)))

	in := NewProcessStats(pre, NewPreStripCollection(), low, high)
	out := roundTrip(t, in)
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip changed bundle:\ngot  %+v\nwant %+v", out, in)
	}
}

func TestProcessStats_EmptyRoundTrip(t *testing.T) {
	in := NewProcessStats(
		NewPreStripCollection(),
		NewPreStripCollection(),
		NewLowQualityStripCollection(),
		NewStripCollection(),
	)
	out := roundTrip(t, in)
	if out == nil {
		t.Fatal("empty bundle decoded to nil")
	}
	if out.LowQualityPrestrips().Len() != 0 || out.HighQualityStrips().Len() != 0 {
		t.Fatalf("empty bundle gained elements: %+v", out)
	}
}

func TestPreStripCollection_OrderPreserved(t *testing.T) {
	var c PreStripCollection
	want := []binmatrix.Stats{matrix(1, 2, 0), matrix(2, 2, 4), matrix(3, 1, 2)}
	for _, m := range want {
		c.Append(m)
	}
	in := NewProcessStats(c, NewPreStripCollection(), NewLowQualityStripCollection(), NewStripCollection())
	out := roundTrip(t, in)
	got := out.LowQualityPrestrips()
	if got.Len() != len(want) {
		t.Fatalf("length changed: got %d want %d", got.Len(), len(want))
	}
	for i, m := range want {
		if got.At(i) != m {
			t.Fatalf("element %d reordered: got %+v want %+v", i, got.At(i), m)
		}
	}
}

func TestStripStats_SetNumberOfColumns(t *testing.T) {
	s := NewStripStats(1, 0)
	s.AddBipartStats(bipart.New(0, bipart.ClassZero, matrix(2, 4, 3)))
	s.SetNumberOfColumns(4)
	if s.NumberOfColumns() != 4 {
		t.Fatalf("columns not updated: %d", s.NumberOfColumns())
	}
	if s.NumberOfBiparts() != 1 || s.BipartAt(0).Class() != bipart.ClassZero {
		t.Fatalf("biparts wrong: %+v", s)
	}
}

func TestLowQualityStripStats_Accessors(t *testing.T) {
	s := NewLowQualityStripStats(-1, 5, matrix(1, 5, 2))
	if s.StripNumber() != -1 || s.NumberOfColumns() != 5 || s.NumberOfMatrices() != 1 {
		t.Fatalf("accessors wrong: %+v", s)
	}
	ms := s.Matrices()
	if len(ms) != 1 || ms[0] != s.MatrixAt(0) {
		t.Fatalf("matrices copy wrong: %+v", ms)
	}
}
