package qbc

import (
	"reflect"
	"strings"
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

func TestProcessStats_RoundTripNoTrash(t *testing.T) {
	strip := NewStripStats(0, 12,
		[]bipart.Stats{
			bipart.New(0, bipart.ClassZero, matrix(4, 12, 20)),
			bipart.New(0, bipart.ClassOne, matrix(6, 12, 33)),
		},
		[]UnassignedReadStats{NewUnassignedReadStats("read-17", 9, 3)},
	)
	var strips StripCollection
	strips.Append(strip)
	in := NewProcessStats(strips, nil)

	out := roundTrip(t, in)
	if out.TrashStrip() != nil {
		t.Fatalf("absent trash strip decoded as present: %+v", out.TrashStrip())
	}
	got := out.HighQualityStrips()
	if got.Len() != 1 {
		t.Fatalf("strip count changed: %d", got.Len())
	}
	if got.At(0).NumberOfBiparts() != 2 || got.At(0).NumberOfUnassignedReads() != 1 {
		t.Fatalf("strip contents changed: %d biparts, %d unassigned",
			got.At(0).NumberOfBiparts(), got.At(0).NumberOfUnassignedReads())
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip changed bundle:\ngot  %+v\nwant %+v", out, in)
	}
}

func TestProcessStats_RoundTripWithTrash(t *testing.T) {
	trash := NewTrashStripStats(-1, matrix(3, 7, 10))
	in := NewProcessStats(NewStripCollection(), &trash)

	out := roundTrip(t, in)
	if out.TrashStrip() == nil {
		t.Fatal("trash strip lost in round trip")
	}
	if *out.TrashStrip() != trash {
		t.Fatalf("trash strip changed: got %+v want %+v", *out.TrashStrip(), trash)
	}
}

func TestProcessStats_AbsentTrashEncodesNull(t *testing.T) {
	in := NewProcessStats(NewStripCollection(), nil)
	data, err := yaml.Marshal(in.ToV1())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), "trash_strip_stats: null") {
		t.Fatalf("trash key not written as explicit null:\n%s", data)
	}
}

func TestStripStats_Mutators(t *testing.T) {
	s := NewStripStats(2, 0, nil, nil)
	s.AddBipartStats(bipart.New(1, bipart.ClassOne, matrix(2, 3, 2)))
	s.AddUnassignedRead(NewUnassignedReadStats("r1", 2, 1))
	s.AddUnassignedRead(NewUnassignedReadStats("r2", 0, 3))
	s.SetNumberOfColumns(3)
	if s.NumberOfColumns() != 3 || s.NumberOfBiparts() != 1 || s.NumberOfUnassignedReads() != 2 {
		t.Fatalf("mutators wrong: %+v", s)
	}
	if s.UnassignedReadAt(1).ReadID() != "r2" {
		t.Fatalf("unassigned order wrong: %+v", s.UnassignedReads())
	}
}

func TestUnassignedReadStats_RoundTrip(t *testing.T) {
	in := NewUnassignedReadStats("contig1_read_042", 11, 4)
	data, err := yaml.Marshal(in.ToV1())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := UnassignedReadStatsFromNode(n.Content[0])
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip changed value: got %+v want %+v", out, in)
	}
}
