// Package textdiff renders unified diffs for test failure output, using
// github.com/pmezard/go-difflib/difflib.
package textdiff

import (
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// Unified produces a classic unified patch for want -> got. Returns "" when
// the inputs are equal.
func Unified(wantName, gotName, want, got string) string {
	if want == got {
		return ""
	}
	u := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(want),
		B:        splitLinesKeepNL(got),
		FromFile: wantName,
		ToFile:   gotName,
		Context:  3,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return "(diff unavailable: " + err.Error() + ")"
	}
	return s
}

func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.SplitAfter(s, "\n")
}
