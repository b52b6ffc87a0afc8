// Package fix applies the textual replacements proposed by lint
// diagnostics to source text.
package fix

import (
	"sort"

	"github.com/funvibe/funlint/internal/diagnostics"
)

// Collect extracts the fixes carried by a diagnostic list, preserving
// emission order.
func Collect(diags []*diagnostics.Diagnostic) []*diagnostics.Fix {
	var fixes []*diagnostics.Fix
	for _, d := range diags {
		if d.Fix != nil {
			fixes = append(fixes, d.Fix)
		}
	}
	return fixes
}

// Apply applies a maximal non-overlapping subset of the fixes, preferring
// earlier entries (diagnostic emission order: an alias fix wins over a fix
// inside the span it replaces). It returns the rewritten source and the
// number of fixes applied. Remaining fixes are picked up by re-running
// the analysis on the result.
func Apply(source string, fixes []*diagnostics.Fix) (string, int) {
	var selected []*diagnostics.Fix
	for _, f := range fixes {
		if f.Range.Start.Offset < 0 || f.Range.End.Offset > len(source) ||
			f.Range.End.Offset < f.Range.Start.Offset {
			continue
		}
		if overlapsAny(f, selected) {
			continue
		}
		selected = append(selected, f)
	}
	if len(selected) == 0 {
		return source, 0
	}

	// Splice right to left so earlier offsets stay valid.
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Range.Start.Offset > selected[j].Range.Start.Offset
	})
	out := source
	for _, f := range selected {
		out = out[:f.Range.Start.Offset] + f.Replacement + out[f.Range.End.Offset:]
	}
	return out, len(selected)
}

func overlapsAny(f *diagnostics.Fix, selected []*diagnostics.Fix) bool {
	for _, s := range selected {
		if f.Range.Start.Offset < s.Range.End.Offset && s.Range.Start.Offset < f.Range.End.Offset {
			return true
		}
	}
	return false
}
