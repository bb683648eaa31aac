// Package qbc records the outcome of the quasi-biclique clustering stage
// (stage B): accepted strips with their bipartitions and the reads the stage
// could not place, plus an optional rejected trash strip.
package qbc

import (
	"gopkg.in/yaml.v3"

	"strainstats/binmatrix"
	"strainstats/internal/yamlutil"
	"strainstats/pkg/schema"
	"strainstats/strips/bipart"
)

// UnassignedReadStats records one read the stage could not confidently place
// into either bipartition class.
type UnassignedReadStats struct {
	readID string
	ones   int
	zeros  int
}

// NewUnassignedReadStats builds an unassigned-read record.
func NewUnassignedReadStats(readID string, ones, zeros int) UnassignedReadStats {
	return UnassignedReadStats{readID: readID, ones: ones, zeros: zeros}
}

func (s UnassignedReadStats) ReadID() string { return s.readID }
func (s UnassignedReadStats) Ones() int      { return s.ones }
func (s UnassignedReadStats) Zeros() int     { return s.zeros }

// ToV1 converts to the wire schema.
func (s UnassignedReadStats) ToV1() schema.UnassignedReadV1 {
	return schema.UnassignedReadV1{
		ReadID:        s.readID,
		NumberOfOnes:  s.ones,
		NumberOfZeros: s.zeros,
	}
}

// UnassignedReadStatsFromNode decodes one unassigned-read mapping node.
func UnassignedReadStatsFromNode(n *yaml.Node) (UnassignedReadStats, error) {
	readID, err := yamlutil.String(n, schema.KeyReadID)
	if err != nil {
		return UnassignedReadStats{}, err
	}
	ones, err := yamlutil.Int(n, schema.KeyNumberOfOnes)
	if err != nil {
		return UnassignedReadStats{}, err
	}
	zeros, err := yamlutil.Int(n, schema.KeyNumberOfZeros)
	if err != nil {
		return UnassignedReadStats{}, err
	}
	return NewUnassignedReadStats(readID, ones, zeros), nil
}

// StripStats is a strip accepted by stage B. Besides its bipartitions it
// tracks the reads left unassigned. The column count is settable after
// construction, like its stage-A counterpart.
type StripStats struct {
	index      int
	columns    int
	biparts    []bipart.Stats
	unassigned []UnassignedReadStats
}

// NewStripStats builds an accepted-strip record.
func NewStripStats(index, columns int, biparts []bipart.Stats, unassigned []UnassignedReadStats) StripStats {
	return StripStats{
		index:      index,
		columns:    columns,
		biparts:    append([]bipart.Stats(nil), biparts...),
		unassigned: append([]UnassignedReadStats(nil), unassigned...),
	}
}

func (s *StripStats) Index() int               { return s.index }
func (s *StripStats) NumberOfColumns() int     { return s.columns }
func (s *StripStats) SetNumberOfColumns(n int) { s.columns = n }

func (s *StripStats) AddBipartStats(b bipart.Stats) { s.biparts = append(s.biparts, b) }
func (s *StripStats) NumberOfBiparts() int          { return len(s.biparts) }
func (s *StripStats) BipartAt(i int) bipart.Stats   { return s.biparts[i] }

// BipartStats returns a copy of the bipartitions in insertion order.
func (s *StripStats) BipartStats() []bipart.Stats {
	return append([]bipart.Stats(nil), s.biparts...)
}

func (s *StripStats) AddUnassignedRead(r UnassignedReadStats)    { s.unassigned = append(s.unassigned, r) }
func (s *StripStats) NumberOfUnassignedReads() int               { return len(s.unassigned) }
func (s *StripStats) UnassignedReadAt(i int) UnassignedReadStats { return s.unassigned[i] }

// UnassignedReads returns a copy of the unassigned reads in insertion order.
func (s *StripStats) UnassignedReads() []UnassignedReadStats {
	return append([]UnassignedReadStats(nil), s.unassigned...)
}

// ToV1 converts to the wire schema.
func (s *StripStats) ToV1() schema.QBCStripV1 {
	out := schema.QBCStripV1{
		Index:           s.index,
		NumberOfColumns: s.columns,
		BipartStats:     make([]schema.BiPartStatsV1, 0, len(s.biparts)),
		UnassignedReads: make([]schema.UnassignedReadV1, 0, len(s.unassigned)),
	}
	for _, b := range s.biparts {
		out.BipartStats = append(out.BipartStats, b.ToV1())
	}
	for _, r := range s.unassigned {
		out.UnassignedReads = append(out.UnassignedReads, r.ToV1())
	}
	return out
}

// StripStatsFromNode decodes one accepted-strip mapping node.
func StripStatsFromNode(n *yaml.Node) (StripStats, error) {
	index, err := yamlutil.Int(n, schema.KeyIndex)
	if err != nil {
		return StripStats{}, err
	}
	columns, err := yamlutil.Int(n, schema.KeyNumberOfColumns)
	if err != nil {
		return StripStats{}, err
	}
	bipartItems, err := yamlutil.Seq(n, schema.KeyBipartStats)
	if err != nil {
		return StripStats{}, err
	}
	var biparts []bipart.Stats
	for _, item := range bipartItems {
		b, err := bipart.StatsFromNode(item)
		if err != nil {
			return StripStats{}, err
		}
		biparts = append(biparts, b)
	}
	readItems, err := yamlutil.Seq(n, schema.KeyUnassignedReads)
	if err != nil {
		return StripStats{}, err
	}
	var unassigned []UnassignedReadStats
	for _, item := range readItems {
		r, err := UnassignedReadStatsFromNode(item)
		if err != nil {
			return StripStats{}, err
		}
		unassigned = append(unassigned, r)
	}
	return StripStats{index: index, columns: columns, biparts: biparts, unassigned: unassigned}, nil
}

// StripCollection is an ordered collection of accepted strips.
type StripCollection struct {
	strips []StripStats
}

// NewStripCollection builds a collection holding strips in the given order.
func NewStripCollection(strips ...StripStats) StripCollection {
	return StripCollection{strips: append([]StripStats(nil), strips...)}
}

func (c *StripCollection) Append(s StripStats)    { c.strips = append(c.strips, s) }
func (c *StripCollection) Extend(s ...StripStats) { c.strips = append(c.strips, s...) }
func (c *StripCollection) Len() int               { return len(c.strips) }
func (c *StripCollection) At(i int) *StripStats   { return &c.strips[i] }

// Slice returns a copy of the collection in insertion order.
func (c *StripCollection) Slice() []StripStats {
	return append([]StripStats(nil), c.strips...)
}

// ToV1 converts to the wire schema.
func (c *StripCollection) ToV1() []schema.QBCStripV1 {
	out := make([]schema.QBCStripV1, 0, len(c.strips))
	for i := range c.strips {
		out = append(out, c.strips[i].ToV1())
	}
	return out
}

// StripCollectionFromNodes decodes a sequence of accepted-strip nodes.
func StripCollectionFromNodes(items []*yaml.Node) (StripCollection, error) {
	var c StripCollection
	for _, item := range items {
		s, err := StripStatsFromNode(item)
		if err != nil {
			return StripCollection{}, err
		}
		c.strips = append(c.strips, s)
	}
	return c, nil
}

// TrashStripStats is the strip stage B rejected, kept only as a diagnostic
// matrix snapshot. A bundle holds at most one.
type TrashStripStats struct {
	index  int
	matrix binmatrix.Stats
}

// NewTrashStripStats builds a trash-strip record.
func NewTrashStripStats(index int, matrix binmatrix.Stats) TrashStripStats {
	return TrashStripStats{index: index, matrix: matrix}
}

func (s TrashStripStats) Index() int                   { return s.index }
func (s TrashStripStats) MatrixStats() binmatrix.Stats { return s.matrix }

// ToV1 converts to the wire schema.
func (s TrashStripStats) ToV1() schema.QBCTrashStripV1 {
	return schema.QBCTrashStripV1{
		Index:       s.index,
		MatrixStats: s.matrix.ToV1(),
	}
}

// TrashStripStatsFromNode decodes one trash-strip mapping node.
func TrashStripStatsFromNode(n *yaml.Node) (TrashStripStats, error) {
	index, err := yamlutil.Int(n, schema.KeyIndex)
	if err != nil {
		return TrashStripStats{}, err
	}
	mn, err := yamlutil.Map(n, schema.KeyMatrixStats)
	if err != nil {
		return TrashStripStats{}, err
	}
	matrix, err := binmatrix.StatsFromNode(mn)
	if err != nil {
		return TrashStripStats{}, err
	}
	return NewTrashStripStats(index, matrix), nil
}

// ProcessStats bundles all stage-B records for one window. The trash strip is
// optional; nil means the stage rejected nothing.
type ProcessStats struct {
	highStrips StripCollection
	trash      *TrashStripStats
}

// NewProcessStats builds the stage-B bundle.
func NewProcessStats(highStrips StripCollection, trash *TrashStripStats) *ProcessStats {
	if trash != nil {
		t := *trash
		trash = &t
	}
	return &ProcessStats{highStrips: highStrips, trash: trash}
}

func (p *ProcessStats) HighQualityStrips() *StripCollection { return &p.highStrips }

// TrashStrip returns the rejected strip, or nil when the stage kept
// everything.
func (p *ProcessStats) TrashStrip() *TrashStripStats { return p.trash }

// ToV1 converts to the wire schema. An absent trash strip becomes an explicit
// null on the wire.
func (p *ProcessStats) ToV1() *schema.QBCProcessV1 {
	out := &schema.QBCProcessV1{
		HighQualityStripsStats: p.highStrips.ToV1(),
	}
	if p.trash != nil {
		v := p.trash.ToV1()
		out.TrashStripStats = &v
	}
	return out
}

// ProcessStatsFromNode decodes one stage-B bundle mapping node. The
// trash_strip_stats key must be present; its value may be null.
func ProcessStatsFromNode(n *yaml.Node) (*ProcessStats, error) {
	items, err := yamlutil.Seq(n, schema.KeyHighQualityStripsStats)
	if err != nil {
		return nil, err
	}
	highStrips, err := StripCollectionFromNodes(items)
	if err != nil {
		return nil, err
	}
	tn, err := yamlutil.Require(n, schema.KeyTrashStripStats)
	if err != nil {
		return nil, err
	}
	var trash *TrashStripStats
	if !yamlutil.IsNull(tn) {
		t, err := TrashStripStatsFromNode(tn)
		if err != nil {
			return nil, err
		}
		trash = &t
	}
	return &ProcessStats{highStrips: highStrips, trash: trash}, nil
}
