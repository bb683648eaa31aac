// Package contig holds the top of the statistics tree: per-contig records,
// their windows, and the persisted document.
package contig

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"strainstats/internal/yamlutil"
	"strainstats/lociwindow"
	"strainstats/pkg/schema"
)

// Stats identifies one contig.
type Stats struct {
	name   string
	length int
}

// NewStats builds a contig identity. The name must be non-empty and the
// length positive.
func NewStats(name string, length int) (Stats, error) {
	if name == "" {
		return Stats{}, fmt.Errorf("empty contig name")
	}
	if length <= 0 {
		return Stats{}, fmt.Errorf("contig %q: non-positive length %d", name, length)
	}
	return Stats{name: name, length: length}, nil
}

func (s Stats) Name() string { return s.name }
func (s Stats) Length() int  { return s.length }

// ToV1 converts to the wire schema.
func (s Stats) ToV1() schema.ContigStatsV1 {
	return schema.ContigStatsV1{ContigName: s.name, ContigLength: s.length}
}

// StatsFromNode decodes one contig-stats mapping node.
func StatsFromNode(n *yaml.Node) (Stats, error) {
	name, err := yamlutil.String(n, schema.KeyContigName)
	if err != nil {
		return Stats{}, err
	}
	length, err := yamlutil.Int(n, schema.KeyContigLength)
	if err != nil {
		return Stats{}, err
	}
	return Stats{name: name, length: length}, nil
}

// ProcessStats is one contig's record: identity plus its windows in pipeline
// traversal order.
type ProcessStats struct {
	contig  Stats
	windows lociwindow.Collection
}

// NewProcessStats builds a contig record.
func NewProcessStats(contig Stats, windows lociwindow.Collection) *ProcessStats {
	return &ProcessStats{contig: contig, windows: windows}
}

func (p *ProcessStats) ContigStats() Stats { return p.contig }

func (p *ProcessStats) LociWindows() *lociwindow.Collection { return &p.windows }

// ToV1 converts to the wire schema.
func (p *ProcessStats) ToV1() schema.ContigProcessV1 {
	return schema.ContigProcessV1{
		ContigStats:      p.contig.ToV1(),
		LociWindowsStats: p.windows.ToV1(),
	}
}

// ProcessStatsFromNode decodes one contig mapping node. Contig identity is
// validated before any window is visited.
func ProcessStatsFromNode(n *yaml.Node) (*ProcessStats, error) {
	cn, err := yamlutil.Map(n, schema.KeyContigStats)
	if err != nil {
		return nil, err
	}
	contig, err := StatsFromNode(cn)
	if err != nil {
		return nil, err
	}
	items, err := yamlutil.Seq(n, schema.KeyLociWindowsStats)
	if err != nil {
		return nil, err
	}
	windows, err := lociwindow.CollectionFromNodes(items)
	if err != nil {
		return nil, err
	}
	return &ProcessStats{contig: contig, windows: windows}, nil
}
