// Package hca records the outcome of the hierarchical-clustering stage
// (stage A): diagnostic prestrip snapshots, rejected strips, and accepted
// strips with their bipartitions. All collections preserve insertion order,
// which reflects pipeline processing order.
package hca

import (
	"gopkg.in/yaml.v3"

	"strainstats/binmatrix"
	"strainstats/internal/yamlutil"
	"strainstats/pkg/schema"
	"strainstats/strips/bipart"
)

// PreStripCollection is an ordered collection of prestrip matrix snapshots.
type PreStripCollection struct {
	stats []binmatrix.Stats
}

// NewPreStripCollection builds a collection holding stats in the given order.
func NewPreStripCollection(stats ...binmatrix.Stats) PreStripCollection {
	return PreStripCollection{stats: append([]binmatrix.Stats(nil), stats...)}
}

func (c *PreStripCollection) Append(s binmatrix.Stats)    { c.stats = append(c.stats, s) }
func (c *PreStripCollection) Extend(s ...binmatrix.Stats) { c.stats = append(c.stats, s...) }
func (c *PreStripCollection) Len() int                    { return len(c.stats) }
func (c *PreStripCollection) At(i int) binmatrix.Stats    { return c.stats[i] }

// Slice returns a copy of the collection in insertion order.
func (c *PreStripCollection) Slice() []binmatrix.Stats {
	return append([]binmatrix.Stats(nil), c.stats...)
}

// ToV1 converts to the wire schema.
func (c *PreStripCollection) ToV1() []schema.MatrixStatsV1 {
	out := make([]schema.MatrixStatsV1, 0, len(c.stats))
	for _, s := range c.stats {
		out = append(out, s.ToV1())
	}
	return out
}

// PreStripCollectionFromNodes decodes a sequence of matrix-stats nodes.
func PreStripCollectionFromNodes(items []*yaml.Node) (PreStripCollection, error) {
	var c PreStripCollection
	for _, item := range items {
		s, err := binmatrix.StatsFromNode(item)
		if err != nil {
			return PreStripCollection{}, err
		}
		c.stats = append(c.stats, s)
	}
	return c, nil
}

// LowQualityStripStats is a strip rejected by quality filtering, retained as
// an ordered set of diagnostic matrix snapshots.
type LowQualityStripStats struct {
	stripNumber int
	columns     int
	matrices    []binmatrix.Stats
}

// NewLowQualityStripStats builds a rejected-strip record.
func NewLowQualityStripStats(stripNumber, columns int, matrices ...binmatrix.Stats) LowQualityStripStats {
	return LowQualityStripStats{
		stripNumber: stripNumber,
		columns:     columns,
		matrices:    append([]binmatrix.Stats(nil), matrices...),
	}
}

func (s LowQualityStripStats) StripNumber() int               { return s.stripNumber }
func (s LowQualityStripStats) NumberOfColumns() int           { return s.columns }
func (s LowQualityStripStats) NumberOfMatrices() int          { return len(s.matrices) }
func (s LowQualityStripStats) MatrixAt(i int) binmatrix.Stats { return s.matrices[i] }

// Matrices returns a copy of the snapshots in insertion order.
func (s LowQualityStripStats) Matrices() []binmatrix.Stats {
	return append([]binmatrix.Stats(nil), s.matrices...)
}

// ToV1 converts to the wire schema.
func (s LowQualityStripStats) ToV1() schema.LowQualityHCAStripV1 {
	out := schema.LowQualityHCAStripV1{
		StripNumber:      s.stripNumber,
		NumberOfColumns:  s.columns,
		BinMatricesStats: make([]schema.MatrixStatsV1, 0, len(s.matrices)),
	}
	for _, m := range s.matrices {
		out.BinMatricesStats = append(out.BinMatricesStats, m.ToV1())
	}
	return out
}

// LowQualityStripStatsFromNode decodes one rejected-strip mapping node.
func LowQualityStripStatsFromNode(n *yaml.Node) (LowQualityStripStats, error) {
	stripNumber, err := yamlutil.Int(n, schema.KeyStripNumber)
	if err != nil {
		return LowQualityStripStats{}, err
	}
	columns, err := yamlutil.Int(n, schema.KeyNumberOfColumns)
	if err != nil {
		return LowQualityStripStats{}, err
	}
	items, err := yamlutil.Seq(n, schema.KeyBinMatricesStats)
	if err != nil {
		return LowQualityStripStats{}, err
	}
	var matrices []binmatrix.Stats
	for _, item := range items {
		m, err := binmatrix.StatsFromNode(item)
		if err != nil {
			return LowQualityStripStats{}, err
		}
		matrices = append(matrices, m)
	}
	return LowQualityStripStats{stripNumber: stripNumber, columns: columns, matrices: matrices}, nil
}

// LowQualityStripCollection is an ordered collection of rejected strips.
type LowQualityStripCollection struct {
	strips []LowQualityStripStats
}

// NewLowQualityStripCollection builds a collection holding strips in the
// given order.
func NewLowQualityStripCollection(strips ...LowQualityStripStats) LowQualityStripCollection {
	return LowQualityStripCollection{strips: append([]LowQualityStripStats(nil), strips...)}
}

func (c *LowQualityStripCollection) Append(s LowQualityStripStats) { c.strips = append(c.strips, s) }
func (c *LowQualityStripCollection) Extend(s ...LowQualityStripStats) {
	c.strips = append(c.strips, s...)
}
func (c *LowQualityStripCollection) Len() int                      { return len(c.strips) }
func (c *LowQualityStripCollection) At(i int) LowQualityStripStats { return c.strips[i] }

// Slice returns a copy of the collection in insertion order.
func (c *LowQualityStripCollection) Slice() []LowQualityStripStats {
	return append([]LowQualityStripStats(nil), c.strips...)
}

// ToV1 converts to the wire schema.
func (c *LowQualityStripCollection) ToV1() []schema.LowQualityHCAStripV1 {
	out := make([]schema.LowQualityHCAStripV1, 0, len(c.strips))
	for _, s := range c.strips {
		out = append(out, s.ToV1())
	}
	return out
}

// LowQualityStripCollectionFromNodes decodes a sequence of rejected-strip
// nodes.
func LowQualityStripCollectionFromNodes(items []*yaml.Node) (LowQualityStripCollection, error) {
	var c LowQualityStripCollection
	for _, item := range items {
		s, err := LowQualityStripStatsFromNode(item)
		if err != nil {
			return LowQualityStripCollection{}, err
		}
		c.strips = append(c.strips, s)
	}
	return c, nil
}

// StripStats is a strip accepted by stage A, with its bipartition outcomes.
// The column count is the one field settable after construction: producers
// may learn it only once the strip has been fully assembled.
type StripStats struct {
	index   int
	columns int
	biparts []bipart.Stats
}

// NewStripStats builds an accepted-strip record.
func NewStripStats(index, columns int, biparts ...bipart.Stats) StripStats {
	return StripStats{
		index:   index,
		columns: columns,
		biparts: append([]bipart.Stats(nil), biparts...),
	}
}

func (s *StripStats) Index() int                    { return s.index }
func (s *StripStats) NumberOfColumns() int          { return s.columns }
func (s *StripStats) SetNumberOfColumns(n int)      { s.columns = n }
func (s *StripStats) AddBipartStats(b bipart.Stats) { s.biparts = append(s.biparts, b) }
func (s *StripStats) NumberOfBiparts() int          { return len(s.biparts) }
func (s *StripStats) BipartAt(i int) bipart.Stats   { return s.biparts[i] }

// BipartStats returns a copy of the bipartitions in insertion order.
func (s *StripStats) BipartStats() []bipart.Stats {
	return append([]bipart.Stats(nil), s.biparts...)
}

// ToV1 converts to the wire schema.
func (s *StripStats) ToV1() schema.HCAStripV1 {
	out := schema.HCAStripV1{
		Index:           s.index,
		NumberOfColumns: s.columns,
		BipartStats:     make([]schema.BiPartStatsV1, 0, len(s.biparts)),
	}
	for _, b := range s.biparts {
		out.BipartStats = append(out.BipartStats, b.ToV1())
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
	items, err := yamlutil.Seq(n, schema.KeyBipartStats)
	if err != nil {
		return StripStats{}, err
	}
	var biparts []bipart.Stats
	for _, item := range items {
		b, err := bipart.StatsFromNode(item)
		if err != nil {
			return StripStats{}, err
		}
		biparts = append(biparts, b)
	}
	return StripStats{index: index, columns: columns, biparts: biparts}, nil
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
func (c *StripCollection) ToV1() []schema.HCAStripV1 {
	out := make([]schema.HCAStripV1, 0, len(c.strips))
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

// ProcessStats bundles all stage-A records for one window. All four
// collections must be present; any of them may be empty.
type ProcessStats struct {
	lowPrestrips  PreStripCollection
	highPrestrips PreStripCollection
	lowStrips     LowQualityStripCollection
	highStrips    StripCollection
}

// NewProcessStats builds the stage-A bundle from its four collections.
func NewProcessStats(
	lowPrestrips, highPrestrips PreStripCollection,
	lowStrips LowQualityStripCollection,
	highStrips StripCollection,
) *ProcessStats {
	return &ProcessStats{
		lowPrestrips:  lowPrestrips,
		highPrestrips: highPrestrips,
		lowStrips:     lowStrips,
		highStrips:    highStrips,
	}
}

func (p *ProcessStats) LowQualityPrestrips() *PreStripCollection     { return &p.lowPrestrips }
func (p *ProcessStats) HighQualityPrestrips() *PreStripCollection    { return &p.highPrestrips }
func (p *ProcessStats) LowQualityStrips() *LowQualityStripCollection { return &p.lowStrips }
func (p *ProcessStats) HighQualityStrips() *StripCollection          { return &p.highStrips }

// ToV1 converts to the wire schema.
func (p *ProcessStats) ToV1() *schema.HCAProcessV1 {
	return &schema.HCAProcessV1{
		LowQualityPrestripsStats:  p.lowPrestrips.ToV1(),
		HighQualityPrestripsStats: p.highPrestrips.ToV1(),
		LowQualityHCAStripStats:   p.lowStrips.ToV1(),
		HighQualityHCAStripStats:  p.highStrips.ToV1(),
	}
}

// ProcessStatsFromNode decodes one stage-A bundle mapping node.
func ProcessStatsFromNode(n *yaml.Node) (*ProcessStats, error) {
	lowPre, err := yamlutil.Seq(n, schema.KeyLowQualityPrestripsStats)
	if err != nil {
		return nil, err
	}
	lowPrestrips, err := PreStripCollectionFromNodes(lowPre)
	if err != nil {
		return nil, err
	}
	highPre, err := yamlutil.Seq(n, schema.KeyHighQualityPrestripsStats)
	if err != nil {
		return nil, err
	}
	highPrestrips, err := PreStripCollectionFromNodes(highPre)
	if err != nil {
		return nil, err
	}
	low, err := yamlutil.Seq(n, schema.KeyLowQualityHCAStripStats)
	if err != nil {
		return nil, err
	}
	lowStrips, err := LowQualityStripCollectionFromNodes(low)
	if err != nil {
		return nil, err
	}
	high, err := yamlutil.Seq(n, schema.KeyHighQualityHCAStripStats)
	if err != nil {
		return nil, err
	}
	highStrips, err := StripCollectionFromNodes(high)
	if err != nil {
		return nil, err
	}
	return NewProcessStats(lowPrestrips, highPrestrips, lowStrips, highStrips), nil
}
