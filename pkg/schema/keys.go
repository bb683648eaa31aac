package schema

// Canonical key strings, shared by the encode structs' tags and the decode
// path. Values must match the yaml tags in stats_v1.go.
const (
	KeyNumberOfRows    = "number_of_rows"
	KeyNumberOfColumns = "number_of_columns"
	KeyNumberOfOnes    = "number_of_ones"
	KeyNumberOfZeros   = "number_of_zeros"
	KeyDensity         = "density"
	KeySparsity        = "sparsity"

	KeyIndex          = "index"
	KeyClass          = "class"
	KeyBinMatrixStats = "binmatrix_stats"

	KeyReadID = "read_id"

	KeyStripNumber      = "strip_number"
	KeyBinMatricesStats = "bin_matrices_stats"
	KeyBipartStats      = "bipart_stats"
	KeyUnassignedReads  = "unassigned_reads"
	KeyMatrixStats      = "matrix_stats"

	KeyLowQualityPrestripsStats  = "low_quality_prestrips_stats"
	KeyHighQualityPrestripsStats = "high_quality_prestrips_stats"
	KeyLowQualityHCAStripStats   = "low_quality_hca_strip_stats"
	KeyHighQualityHCAStripStats  = "high_quality_hca_strip_stats"

	KeyHighQualityStripsStats = "high_quality_strips_stats"
	KeyTrashStripStats        = "trash_strip_stats"

	KeyNumberOfInitialHaplotypes    = "number_of_initial_haplotypes"
	KeyNumberOfLowQualityHaplotypes = "number_of_low_quality_haplotypes"
	KeyNumberOfFinalHaplotypes      = "number_of_final_haplotypes"

	KeyStartPos = "start_pos"
	KeyStopPos  = "stop_pos"

	KeyLociWindowStats  = "loci_window_stats"
	KeyHCAProcessStats  = "hca_process_stats"
	KeyQBCProcessStats  = "qbc_process_stats"
	KeyPostprocessStats = "postprocess_stats"

	KeyContigName       = "contig_name"
	KeyContigLength     = "contig_length"
	KeyContigStats      = "contig_stats"
	KeyLociWindowsStats = "loci_windows_stats"
)
