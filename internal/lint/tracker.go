package lint

import (
	"github.com/funvibe/funlint/internal/ast"
)

// Scope binding tracker: bindings are inserted when a pattern is
// registered on scope entry and retired the moment a plain reference to
// the name is observed. Only "used at least once" matters, so a use
// simply deletes the entry.

// enterScope marks a batch of names as pending. Re-inserting a name is
// idempotent.
func (r *Rule) enterScope(names ...string) {
	for _, name := range names {
		r.unused[name] = true
	}
}

// RecordUse retires a pending binding. A name that is not pending refers
// to something outside any tracked pattern, or was already consumed or
// reported; either way it is a no-op.
func (r *Rule) RecordUse(name string) {
	delete(r.unused, name)
}

// RegisterPattern inserts every name the pattern binds. Registration is
// identical in both contexts; the context changes reduction only.
func (r *Rule) RegisterPattern(pat ast.Pattern, ctx PatternContext) {
	switch p := pat.(type) {
	case *ast.IdentifierPattern:
		if p.Value != "_" {
			r.enterScope(p.Value)
		}

	case *ast.TuplePattern:
		for _, el := range p.Elements {
			r.RegisterPattern(el, ctx)
		}

	case *ast.ListPattern:
		for _, el := range p.Elements {
			r.RegisterPattern(el, ctx)
		}

	case *ast.ConsPattern:
		r.RegisterPattern(p.Head, ctx)
		r.RegisterPattern(p.Tail, ctx)

	case *ast.RecordPattern:
		// Record fields bind names directly.
		for _, f := range p.Fields {
			r.enterScope(f.Value)
		}

	case *ast.ConstructorPattern:
		// Nested patterns are registered regardless of context.
		for _, el := range p.Elements {
			r.RegisterPattern(el, ctx)
		}

	case *ast.AsPattern:
		r.enterScope(p.Name.Value)
		r.RegisterPattern(p.Pattern, ctx)

	case *ast.ParenPattern:
		r.RegisterPattern(p.Pattern, ctx)

	case *ast.WildcardPattern, *ast.LiteralPattern:
		// No new bindings.

	default:
		// Unknown shapes are opaque: they never introduce names.
	}
}
