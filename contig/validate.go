package contig

import (
	"fmt"

	"strainstats/binmatrix"
	"strainstats/pkg/schema"
	"strainstats/strips/hca"
	"strainstats/strips/qbc"
)

// checkInvariants walks every matrix snapshot in the document and collects
// those whose counts disagree with their shape, labeled by position.
func (d *Document) checkInvariants() []*schema.InvariantError {
	var errs []*schema.InvariantError
	for _, c := range d.contigs {
		name := c.ContigStats().Name()
		wins := c.LociWindows()
		for wi := 0; wi < wins.Len(); wi++ {
			w := wins.At(wi)
			prefix := fmt.Sprintf("contig %q window %d", name, wi)
			if h := w.HCAProcessStats(); h != nil {
				checkHCA(&errs, prefix, h)
			}
			if q := w.QBCProcessStats(); q != nil {
				checkQBC(&errs, prefix, q)
			}
		}
	}
	return errs
}

func checkHCA(errs *[]*schema.InvariantError, prefix string, h *hca.ProcessStats) {
	low := h.LowQualityPrestrips()
	for i := 0; i < low.Len(); i++ {
		check(errs, fmt.Sprintf("%s low-quality prestrip %d", prefix, i), low.At(i))
	}
	high := h.HighQualityPrestrips()
	for i := 0; i < high.Len(); i++ {
		check(errs, fmt.Sprintf("%s high-quality prestrip %d", prefix, i), high.At(i))
	}
	lowStrips := h.LowQualityStrips()
	for i := 0; i < lowStrips.Len(); i++ {
		s := lowStrips.At(i)
		for j := 0; j < s.NumberOfMatrices(); j++ {
			check(errs, fmt.Sprintf("%s low-quality strip %d matrix %d", prefix, i, j), s.MatrixAt(j))
		}
	}
	strips := h.HighQualityStrips()
	for i := 0; i < strips.Len(); i++ {
		s := strips.At(i)
		for j := 0; j < s.NumberOfBiparts(); j++ {
			check(errs, fmt.Sprintf("%s hca strip %d bipart %d", prefix, i, j), s.BipartAt(j).MatrixStats())
		}
	}
}

func checkQBC(errs *[]*schema.InvariantError, prefix string, q *qbc.ProcessStats) {
	strips := q.HighQualityStrips()
	for i := 0; i < strips.Len(); i++ {
		s := strips.At(i)
		for j := 0; j < s.NumberOfBiparts(); j++ {
			check(errs, fmt.Sprintf("%s qbc strip %d bipart %d", prefix, i, j), s.BipartAt(j).MatrixStats())
		}
	}
	if t := q.TrashStrip(); t != nil {
		check(errs, prefix+" trash strip", t.MatrixStats())
	}
}

func check(errs *[]*schema.InvariantError, path string, m binmatrix.Stats) {
	if m.CountsConsistent() {
		return
	}
	*errs = append(*errs, &schema.InvariantError{
		Path:    path,
		Rows:    m.Rows(),
		Columns: m.Columns(),
		Ones:    m.Ones(),
		Zeros:   m.Zeros(),
	})
}
