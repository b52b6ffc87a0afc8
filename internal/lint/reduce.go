package lint

import (
	"github.com/funvibe/funlint/internal/ast"
	"github.com/funvibe/funlint/internal/diagnostics"
	"github.com/funvibe/funlint/internal/token"
)

// Pattern reduction runs once a pattern's owning scope is fully
// processed: every name still pending belongs to an unused binding, and
// the pattern is recursively reduced to its smallest equivalent. At most
// one diagnostic is emitted per composite node; a parent's collapse
// supersedes reporting on its children.

func wildcardFix(rng token.Range) *diagnostics.Fix {
	return &diagnostics.Fix{Range: rng, Replacement: "_"}
}

// reducePattern walks a pattern bottom-up, emitting diagnostics for its
// unused parts and retiring the reported names from the pending set.
func (r *Rule) reducePattern(pat ast.Pattern, ctx PatternContext) []*diagnostics.Diagnostic {
	switch p := pat.(type) {
	case *ast.WildcardPattern, *ast.LiteralPattern:
		return nil

	case *ast.IdentifierPattern:
		if !r.unused[p.Value] {
			return nil
		}
		delete(r.unused, p.Value)
		return []*diagnostics.Diagnostic{
			diagnostics.UnusedValue(p.Value, p.Range(), wildcardFix(p.Range())),
		}

	case *ast.TuplePattern:
		// A 2- or 3-tuple of bare wildcards binds nothing and collapses
		// whole. Larger or mixed tuples reduce element-wise.
		if n := len(p.Elements); (n == 2 || n == 3) && allWildcards(p.Elements) {
			return []*diagnostics.Diagnostic{
				diagnostics.TupleNotNeeded(p.Range(), wildcardFix(p.Range())),
			}
		}
		return r.reduceAll(p.Elements, ctx)

	case *ast.ListPattern:
		return r.reduceAll(p.Elements, ctx)

	case *ast.ConsPattern:
		out := r.reducePattern(p.Head, ctx)
		return append(out, r.reducePattern(p.Tail, ctx)...)

	case *ast.ConstructorPattern:
		// In destructuring position an all-wildcard constructor carries
		// no information; in matching position its shape selects the
		// branch and must stay.
		if ctx == Destructuring && allWildcards(p.Elements) {
			return []*diagnostics.Diagnostic{
				diagnostics.NamedNotNeeded(p.Range(), wildcardFix(p.Range())),
			}
		}
		return r.reduceAll(p.Elements, ctx)

	case *ast.RecordPattern:
		return r.reduceRecord(p)

	case *ast.AsPattern:
		return r.reduceAs(p, ctx)

	case *ast.ParenPattern:
		return r.reducePattern(p.Pattern, ctx)

	default:
		// Unknown shapes are opaque: nothing to report.
		return nil
	}
}

func (r *Rule) reduceAll(patterns []ast.Pattern, ctx PatternContext) []*diagnostics.Diagnostic {
	var out []*diagnostics.Diagnostic
	for _, pat := range patterns {
		out = append(out, r.reducePattern(pat, ctx)...)
	}
	return out
}

// reduceRecord partitions the fields into used and unused and reports the
// unused ones in a single finding. A fully unused record collapses to a
// wildcard; a partially used one is rewritten with only its used fields.
func (r *Rule) reduceRecord(p *ast.RecordPattern) []*diagnostics.Diagnostic {
	var used, unused []*ast.Identifier
	for _, f := range p.Fields {
		if r.unused[f.Value] {
			unused = append(unused, f)
		} else {
			used = append(used, f)
		}
	}
	if len(unused) == 0 {
		return nil
	}

	names := make([]string, len(unused))
	for i, f := range unused {
		names[i] = f.Value
		delete(r.unused, f.Value)
	}

	if len(used) == 0 {
		return []*diagnostics.Diagnostic{
			diagnostics.UnusedValues(names, p.Range(), wildcardFix(p.Range())),
		}
	}

	rng := unused[0].Range()
	for _, f := range unused[1:] {
		rng = rng.Union(f.Range())
	}
	reduced := &ast.RecordPattern{Token: p.Token, Fields: used, EndTok: p.EndTok}
	fix := &diagnostics.Fix{Range: p.Range(), Replacement: r.render.RenderPattern(reduced)}
	return []*diagnostics.Diagnostic{diagnostics.UnusedValues(names, rng, fix)}
}

// reduceAs handles `inner as name`. The inner pattern reduces first; the
// alias finding, if any, is prepended so it leads the inner ones.
func (r *Rule) reduceAs(p *ast.AsPattern, ctx PatternContext) []*diagnostics.Diagnostic {
	inner := r.reducePattern(p.Pattern, ctx)

	if r.unused[p.Name.Value] {
		delete(r.unused, p.Name.Value)
		fix := &diagnostics.Fix{
			Range:       p.Range(),
			Replacement: r.render.RenderPattern(p.Pattern),
		}
		alias := diagnostics.UnusedAlias(p.Name.Value, p.Name.Range(), fix)
		return append([]*diagnostics.Diagnostic{alias}, inner...)
	}

	if w, ok := p.Pattern.(*ast.WildcardPattern); ok {
		// The alias is used, so aliasing a wildcard is just a rename:
		// `_ as n` becomes `n`. Removal below is idempotent.
		delete(r.unused, p.Name.Value)
		fix := &diagnostics.Fix{Range: p.Range(), Replacement: p.Name.Value}
		return append([]*diagnostics.Diagnostic{
			diagnostics.WildcardNotNeeded(w.Range(), fix),
		}, inner...)
	}

	return inner
}

// allWildcards reports whether every pattern is a bare wildcard. An empty
// list counts as all wildcards.
func allWildcards(patterns []ast.Pattern) bool {
	for _, pat := range patterns {
		if _, ok := pat.(*ast.WildcardPattern); !ok {
			return false
		}
	}
	return true
}
