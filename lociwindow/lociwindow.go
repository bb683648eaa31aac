// Package lociwindow records per-window pipeline outcomes. A window's three
// stage results are independently optional: a nil bundle means the stage was
// skipped, which is distinct from a stage that ran and produced nothing.
package lociwindow

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"strainstats/internal/yamlutil"
	"strainstats/pkg/schema"
	"strainstats/postprocess"
	"strainstats/strips/hca"
	"strainstats/strips/qbc"
)

// Stats is the position range of one loci window.
type Stats struct {
	startPos int
	stopPos  int
}

// NewStats builds a window range. Start must be non-negative and stop must
// not precede start.
func NewStats(startPos, stopPos int) (Stats, error) {
	if startPos < 0 {
		return Stats{}, fmt.Errorf("negative start position %d", startPos)
	}
	if stopPos < startPos {
		return Stats{}, fmt.Errorf("stop position %d precedes start %d", stopPos, startPos)
	}
	return Stats{startPos: startPos, stopPos: stopPos}, nil
}

func (s Stats) StartPos() int { return s.startPos }
func (s Stats) StopPos() int  { return s.stopPos }

// ToV1 converts to the wire schema.
func (s Stats) ToV1() schema.LociWindowV1 {
	return schema.LociWindowV1{StartPos: s.startPos, StopPos: s.stopPos}
}

// StatsFromNode decodes one window-range mapping node.
func StatsFromNode(n *yaml.Node) (Stats, error) {
	start, err := yamlutil.Int(n, schema.KeyStartPos)
	if err != nil {
		return Stats{}, err
	}
	stop, err := yamlutil.Int(n, schema.KeyStopPos)
	if err != nil {
		return Stats{}, err
	}
	return Stats{startPos: start, stopPos: stop}, nil
}

// ProcessStats is one window's full record: the range plus whichever stage
// bundles were produced for it.
type ProcessStats struct {
	window Stats
	hca    *hca.ProcessStats
	qbc    *qbc.ProcessStats
	post   *postprocess.Stats
}

// NewProcessStats builds a window record. Any of the three stage bundles may
// be nil when that stage did not run.
func NewProcessStats(window Stats, hcaStats *hca.ProcessStats, qbcStats *qbc.ProcessStats, postStats *postprocess.Stats) *ProcessStats {
	if postStats != nil {
		p := *postStats
		postStats = &p
	}
	return &ProcessStats{window: window, hca: hcaStats, qbc: qbcStats, post: postStats}
}

func (p *ProcessStats) WindowStats() Stats { return p.window }

// HCAProcessStats returns the stage-A bundle, or nil when stage A was skipped.
func (p *ProcessStats) HCAProcessStats() *hca.ProcessStats { return p.hca }

// QBCProcessStats returns the stage-B bundle, or nil when stage B was skipped.
func (p *ProcessStats) QBCProcessStats() *qbc.ProcessStats { return p.qbc }

// PostProcessStats returns the postprocess record, or nil when postprocessing
// was skipped.
func (p *ProcessStats) PostProcessStats() *postprocess.Stats { return p.post }

// ToV1 converts to the wire schema. Skipped stages become explicit nulls
// under their keys, never omitted keys.
func (p *ProcessStats) ToV1() schema.LociWindowProcessV1 {
	out := schema.LociWindowProcessV1{
		LociWindowStats: p.window.ToV1(),
	}
	if p.hca != nil {
		out.HCAProcessStats = p.hca.ToV1()
	}
	if p.qbc != nil {
		out.QBCProcessStats = p.qbc.ToV1()
	}
	if p.post != nil {
		v := p.post.ToV1()
		out.PostprocessStats = &v
	}
	return out
}

// ProcessStatsFromNode decodes one window mapping node. All four keys must be
// present; the three stage values may each be null.
func ProcessStatsFromNode(n *yaml.Node) (*ProcessStats, error) {
	wn, err := yamlutil.Map(n, schema.KeyLociWindowStats)
	if err != nil {
		return nil, err
	}
	window, err := StatsFromNode(wn)
	if err != nil {
		return nil, err
	}

	out := &ProcessStats{window: window}

	hn, err := yamlutil.Require(n, schema.KeyHCAProcessStats)
	if err != nil {
		return nil, err
	}
	if !yamlutil.IsNull(hn) {
		out.hca, err = hca.ProcessStatsFromNode(hn)
		if err != nil {
			return nil, err
		}
	}

	qn, err := yamlutil.Require(n, schema.KeyQBCProcessStats)
	if err != nil {
		return nil, err
	}
	if !yamlutil.IsNull(qn) {
		out.qbc, err = qbc.ProcessStatsFromNode(qn)
		if err != nil {
			return nil, err
		}
	}

	pn, err := yamlutil.Require(n, schema.KeyPostprocessStats)
	if err != nil {
		return nil, err
	}
	if !yamlutil.IsNull(pn) {
		ps, err := postprocess.StatsFromNode(pn)
		if err != nil {
			return nil, err
		}
		out.post = &ps
	}

	return out, nil
}

// Collection is an ordered collection of window records. Order reflects
// pipeline traversal, not necessarily genomic position.
type Collection struct {
	windows []*ProcessStats
}

// NewCollection builds a collection holding windows in the given order.
func NewCollection(windows ...*ProcessStats) Collection {
	return Collection{windows: append([]*ProcessStats(nil), windows...)}
}

func (c *Collection) Append(w *ProcessStats)    { c.windows = append(c.windows, w) }
func (c *Collection) Extend(w ...*ProcessStats) { c.windows = append(c.windows, w...) }
func (c *Collection) Len() int                  { return len(c.windows) }
func (c *Collection) At(i int) *ProcessStats    { return c.windows[i] }

// Slice returns a copy of the collection in insertion order.
func (c *Collection) Slice() []*ProcessStats {
	return append([]*ProcessStats(nil), c.windows...)
}

// ToV1 converts to the wire schema.
func (c *Collection) ToV1() []schema.LociWindowProcessV1 {
	out := make([]schema.LociWindowProcessV1, 0, len(c.windows))
	for _, w := range c.windows {
		out = append(out, w.ToV1())
	}
	return out
}

// CollectionFromNodes decodes a sequence of window nodes.
func CollectionFromNodes(items []*yaml.Node) (Collection, error) {
	var c Collection
	for _, item := range items {
		w, err := ProcessStatsFromNode(item)
		if err != nil {
			return Collection{}, err
		}
		c.windows = append(c.windows, w)
	}
	return c, nil
}
