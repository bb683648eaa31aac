// Package postprocess records haplotype filtering counts for one window.
package postprocess

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"strainstats/internal/yamlutil"
	"strainstats/pkg/schema"
)

// Stats holds the haplotype counts before and after quality filtering.
type Stats struct {
	initial    int
	lowQuality int
	final      int
}

// New builds a postprocess record. The filtered-out and final counts cannot
// exceed the initial count.
func New(initial, lowQuality, final int) (Stats, error) {
	if lowQuality > initial {
		return Stats{}, fmt.Errorf("low-quality haplotypes (%d) exceed initial (%d)", lowQuality, initial)
	}
	if final > initial {
		return Stats{}, fmt.Errorf("final haplotypes (%d) exceed initial (%d)", final, initial)
	}
	return Stats{initial: initial, lowQuality: lowQuality, final: final}, nil
}

func (s Stats) InitialHaplotypes() int    { return s.initial }
func (s Stats) LowQualityHaplotypes() int { return s.lowQuality }
func (s Stats) FinalHaplotypes() int      { return s.final }

// ToV1 converts to the wire schema.
func (s Stats) ToV1() schema.PostProcessV1 {
	return schema.PostProcessV1{
		NumberOfInitialHaplotypes:    s.initial,
		NumberOfLowQualityHaplotypes: s.lowQuality,
		NumberOfFinalHaplotypes:      s.final,
	}
}

// StatsFromNode decodes one postprocess mapping node. Decoded counts are kept
// as recorded, even when they disagree with the construction-time bounds.
func StatsFromNode(n *yaml.Node) (Stats, error) {
	initial, err := yamlutil.Int(n, schema.KeyNumberOfInitialHaplotypes)
	if err != nil {
		return Stats{}, err
	}
	lowQuality, err := yamlutil.Int(n, schema.KeyNumberOfLowQualityHaplotypes)
	if err != nil {
		return Stats{}, err
	}
	final, err := yamlutil.Int(n, schema.KeyNumberOfFinalHaplotypes)
	if err != nil {
		return Stats{}, err
	}
	return Stats{initial: initial, lowQuality: lowQuality, final: final}, nil
}
