// Package schema holds the stable on-disk document schema for pipeline
// statistics. Field declaration order is the key order written to disk;
// existing documents depend on it. Keep fields, names, and types stable.
package schema

// MatrixStatsV1 is the wire form of one boolean-matrix snapshot.
type MatrixStatsV1 struct {
	NumberOfRows    int     `yaml:"number_of_rows"`
	NumberOfColumns int     `yaml:"number_of_columns"`
	NumberOfOnes    int     `yaml:"number_of_ones"`
	NumberOfZeros   int     `yaml:"number_of_zeros"`
	Density         float64 `yaml:"density"`
	Sparsity        float64 `yaml:"sparsity"`
}

// BiPartStatsV1 is the wire form of one bipartition outcome.
// Class is 0 or 1; any other value is rejected on decode.
type BiPartStatsV1 struct {
	Index          int           `yaml:"index"`
	Class          int           `yaml:"class"`
	BinMatrixStats MatrixStatsV1 `yaml:"binmatrix_stats"`
}

// UnassignedReadV1 records one read a stage could not place in either class.
type UnassignedReadV1 struct {
	ReadID        string `yaml:"read_id"`
	NumberOfOnes  int    `yaml:"number_of_ones"`
	NumberOfZeros int    `yaml:"number_of_zeros"`
}

// LowQualityHCAStripV1 is a strip rejected by stage-A quality filtering.
type LowQualityHCAStripV1 struct {
	StripNumber      int             `yaml:"strip_number"`
	NumberOfColumns  int             `yaml:"number_of_columns"`
	BinMatricesStats []MatrixStatsV1 `yaml:"bin_matrices_stats"`
}

// HCAStripV1 is a strip accepted by stage-A.
type HCAStripV1 struct {
	Index           int             `yaml:"index"`
	NumberOfColumns int             `yaml:"number_of_columns"`
	BipartStats     []BiPartStatsV1 `yaml:"bipart_stats"`
}

// HCAProcessV1 bundles all stage-A records for one window.
type HCAProcessV1 struct {
	LowQualityPrestripsStats  []MatrixStatsV1        `yaml:"low_quality_prestrips_stats"`
	HighQualityPrestripsStats []MatrixStatsV1        `yaml:"high_quality_prestrips_stats"`
	LowQualityHCAStripStats   []LowQualityHCAStripV1 `yaml:"low_quality_hca_strip_stats"`
	HighQualityHCAStripStats  []HCAStripV1           `yaml:"high_quality_hca_strip_stats"`
}

// QBCStripV1 is a strip accepted by stage-B.
type QBCStripV1 struct {
	Index           int                `yaml:"index"`
	NumberOfColumns int                `yaml:"number_of_columns"`
	BipartStats     []BiPartStatsV1    `yaml:"bipart_stats"`
	UnassignedReads []UnassignedReadV1 `yaml:"unassigned_reads"`
}

// QBCTrashStripV1 is the single strip stage-B rejected, kept as a diagnostic.
type QBCTrashStripV1 struct {
	Index       int           `yaml:"index"`
	MatrixStats MatrixStatsV1 `yaml:"matrix_stats"`
}

// QBCProcessV1 bundles all stage-B records for one window. TrashStripStats is
// written as an explicit null when absent, never omitted.
type QBCProcessV1 struct {
	HighQualityStripsStats []QBCStripV1     `yaml:"high_quality_strips_stats"`
	TrashStripStats        *QBCTrashStripV1 `yaml:"trash_strip_stats"`
}

// PostProcessV1 records haplotype filtering counts for one window.
type PostProcessV1 struct {
	NumberOfInitialHaplotypes    int `yaml:"number_of_initial_haplotypes"`
	NumberOfLowQualityHaplotypes int `yaml:"number_of_low_quality_haplotypes"`
	NumberOfFinalHaplotypes      int `yaml:"number_of_final_haplotypes"`
}

// LociWindowV1 is the position range of one loci window.
type LociWindowV1 struct {
	StartPos int `yaml:"start_pos"`
	StopPos  int `yaml:"stop_pos"`
}

// LociWindowProcessV1 is one window's record. The three stage fields are
// independently optional: a stage that did not run is an explicit null,
// which is distinct from a present-but-empty bundle.
type LociWindowProcessV1 struct {
	LociWindowStats  LociWindowV1   `yaml:"loci_window_stats"`
	HCAProcessStats  *HCAProcessV1  `yaml:"hca_process_stats"`
	QBCProcessStats  *QBCProcessV1  `yaml:"qbc_process_stats"`
	PostprocessStats *PostProcessV1 `yaml:"postprocess_stats"`
}

// ContigStatsV1 identifies the contig a set of windows belongs to.
type ContigStatsV1 struct {
	ContigName   string `yaml:"contig_name"`
	ContigLength int    `yaml:"contig_length"`
}

// ContigProcessV1 is one contig's record.
type ContigProcessV1 struct {
	ContigStats      ContigStatsV1         `yaml:"contig_stats"`
	LociWindowsStats []LociWindowProcessV1 `yaml:"loci_windows_stats"`
}

// DocumentV1 is the persisted top-level unit: an ordered sequence of contig
// records.
type DocumentV1 []ContigProcessV1
