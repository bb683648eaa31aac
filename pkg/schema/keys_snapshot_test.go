package schema

import (
	"reflect"
	"strings"
	"testing"
)

func yamlKeys(t *testing.T, v any) []string {
	t.Helper()
	rt := reflect.TypeOf(v)
	keys := make([]string, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		tag := rt.Field(i).Tag.Get("yaml")
		if tag == "" {
			t.Fatalf("%s.%s has no yaml tag", rt.Name(), rt.Field(i).Name)
		}
		keys = append(keys, strings.Split(tag, ",")[0])
	}
	return keys
}

// Document key order is part of the on-disk format. These lists are the
// contract; a mismatch means existing documents would be rewritten
// incompatibly.
func TestWireKeys_Stable(t *testing.T) {
	cases := []struct {
		name string
		v    any
		want []string
	}{
		{"MatrixStatsV1", MatrixStatsV1{}, []string{
			KeyNumberOfRows, KeyNumberOfColumns, KeyNumberOfOnes, KeyNumberOfZeros, KeyDensity, KeySparsity,
		}},
		{"BiPartStatsV1", BiPartStatsV1{}, []string{KeyIndex, KeyClass, KeyBinMatrixStats}},
		{"UnassignedReadV1", UnassignedReadV1{}, []string{KeyReadID, KeyNumberOfOnes, KeyNumberOfZeros}},
		{"LowQualityHCAStripV1", LowQualityHCAStripV1{}, []string{KeyStripNumber, KeyNumberOfColumns, KeyBinMatricesStats}},
		{"HCAStripV1", HCAStripV1{}, []string{KeyIndex, KeyNumberOfColumns, KeyBipartStats}},
		{"HCAProcessV1", HCAProcessV1{}, []string{
			KeyLowQualityPrestripsStats, KeyHighQualityPrestripsStats, KeyLowQualityHCAStripStats, KeyHighQualityHCAStripStats,
		}},
		{"QBCStripV1", QBCStripV1{}, []string{KeyIndex, KeyNumberOfColumns, KeyBipartStats, KeyUnassignedReads}},
		{"QBCTrashStripV1", QBCTrashStripV1{}, []string{KeyIndex, KeyMatrixStats}},
		{"QBCProcessV1", QBCProcessV1{}, []string{KeyHighQualityStripsStats, KeyTrashStripStats}},
		{"PostProcessV1", PostProcessV1{}, []string{
			KeyNumberOfInitialHaplotypes, KeyNumberOfLowQualityHaplotypes, KeyNumberOfFinalHaplotypes,
		}},
		{"LociWindowV1", LociWindowV1{}, []string{KeyStartPos, KeyStopPos}},
		{"LociWindowProcessV1", LociWindowProcessV1{}, []string{
			KeyLociWindowStats, KeyHCAProcessStats, KeyQBCProcessStats, KeyPostprocessStats,
		}},
		{"ContigStatsV1", ContigStatsV1{}, []string{KeyContigName, KeyContigLength}},
		{"ContigProcessV1", ContigProcessV1{}, []string{KeyContigStats, KeyLociWindowsStats}},
	}
	for _, tc := range cases {
		got := yamlKeys(t, tc.v)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s keys changed:\n got:  %v\n want: %v", tc.name, got, tc.want)
		}
	}
}
