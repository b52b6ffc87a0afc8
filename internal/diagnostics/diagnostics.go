// Package diagnostics defines the findings the lint engine produces: a
// coded message with human-readable details, a source range, and an
// optional textual fix.
package diagnostics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/funvibe/funlint/internal/token"
)

// Code identifies a finding kind.
type Code string

const (
	// CodeUnusedValue covers unused name bindings and record fields.
	CodeUnusedValue Code = "U001"
	// CodeTupleNotNeeded covers all-wildcard tuples of arity 2 or 3.
	CodeTupleNotNeeded Code = "U002"
	// CodeNamedNotNeeded covers all-wildcard constructor patterns in
	// destructuring position.
	CodeNamedNotNeeded Code = "U003"
	// CodeUnusedAlias covers unused pattern aliases.
	CodeUnusedAlias Code = "U004"
	// CodeWildcardNotNeeded covers `_ as name` where the wildcard is
	// redundant.
	CodeWildcardNotNeeded Code = "U005"
)

// The four fixed details templates.
const (
	detailsSingular  = "You should either use this value somewhere, or remove it at the location I pointed at."
	detailsPlural    = "You should either use these values somewhere, or remove them at the location I pointed at."
	detailsRemove    = "You should remove it at the location I pointed at."
	detailsRedundant = "This pattern is redundant, you should remove it at the location I pointed at."
)

// Fix is a textual replacement of a source range.
type Fix struct {
	Range       token.Range
	Replacement string
}

// Diagnostic is a single finding. It is created at pattern-reduction time,
// emitted immediately and never mutated afterwards.
type Diagnostic struct {
	Code    Code
	Message string
	Details string
	Range   token.Range
	Fix     *Fix // nil when no automatic fix applies
	File    string
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("%s:%s: %s: %s", d.File, d.Range.Start, d.Code, d.Message)
}

// UnusedValue reports a single unused name binding.
func UnusedValue(name string, rng token.Range, fix *Fix) *Diagnostic {
	return &Diagnostic{
		Code:    CodeUnusedValue,
		Message: fmt.Sprintf("Value `%s` is not used", name),
		Details: detailsSingular,
		Range:   rng,
		Fix:     fix,
	}
}

// UnusedValues reports one or more unused record fields in one finding.
func UnusedValues(names []string, rng token.Range, fix *Fix) *Diagnostic {
	if len(names) == 1 {
		d := UnusedValue(names[0], rng, fix)
		return d
	}
	return &Diagnostic{
		Code:    CodeUnusedValue,
		Message: fmt.Sprintf("Values %s are not used", joinNames(names)),
		Details: detailsPlural,
		Range:   rng,
		Fix:     fix,
	}
}

// TupleNotNeeded reports an all-wildcard tuple pattern.
func TupleNotNeeded(rng token.Range, fix *Fix) *Diagnostic {
	return &Diagnostic{
		Code:    CodeTupleNotNeeded,
		Message: "Tuple pattern is not needed",
		Details: detailsRedundant,
		Range:   rng,
		Fix:     fix,
	}
}

// NamedNotNeeded reports an all-wildcard constructor pattern in
// destructuring position.
func NamedNotNeeded(rng token.Range, fix *Fix) *Diagnostic {
	return &Diagnostic{
		Code:    CodeNamedNotNeeded,
		Message: "Named pattern is not needed",
		Details: detailsRedundant,
		Range:   rng,
		Fix:     fix,
	}
}

// UnusedAlias reports an unused `as` alias.
func UnusedAlias(name string, rng token.Range, fix *Fix) *Diagnostic {
	return &Diagnostic{
		Code:    CodeUnusedAlias,
		Message: fmt.Sprintf("Pattern alias `%s` is not used", name),
		Details: detailsSingular,
		Range:   rng,
		Fix:     fix,
	}
}

// WildcardNotNeeded reports a redundant wildcard under a used alias.
func WildcardNotNeeded(rng token.Range, fix *Fix) *Diagnostic {
	return &Diagnostic{
		Code:    CodeWildcardNotNeeded,
		Message: "Pattern `_` is not needed",
		Details: detailsRemove,
		Range:   rng,
		Fix:     fix,
	}
}

// joinNames renders `a`, `b` and `c`: comma separated, "and" before the
// last item.
func joinNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " and " + quoted[1]
	default:
		return strings.Join(quoted[:len(quoted)-1], ", ") + " and " + quoted[len(quoted)-1]
	}
}

// Sort orders diagnostics by source position for deterministic output.
func Sort(diags []*Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i].Range.Start, diags[j].Range.Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}
