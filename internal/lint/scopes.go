package lint

import (
	"github.com/funvibe/funlint/internal/ast"
	"github.com/funvibe/funlint/internal/diagnostics"
)

// Scope aggregation: the walk driver brackets every scope with an
// enter/exit pair, and these callbacks register patterns on entry and
// reduce them on exit. The Rule satisfies walk.Visitor.

func (r *Rule) DeclarationEnter(params []ast.Pattern) {
	for _, p := range params {
		r.RegisterPattern(p, Destructuring)
	}
}

func (r *Rule) DeclarationExit(params []ast.Pattern) {
	for _, p := range params {
		r.report(r.reducePattern(p, Destructuring))
	}
}

func (r *Rule) LambdaEnter(params []ast.Pattern) {
	for _, p := range params {
		r.RegisterPattern(p, Destructuring)
	}
}

func (r *Rule) LambdaExit(params []ast.Pattern) {
	for _, p := range params {
		r.report(r.reducePattern(p, Destructuring))
	}
}

// LetEnter registers every declaration before any use inside the let is
// visited: a function-style binding contributes its own name and its
// parameter patterns, a destructuring binding contributes its pattern.
func (r *Rule) LetEnter(decls []*ast.LetDeclaration) {
	for _, d := range decls {
		if d.Pattern != nil {
			r.RegisterPattern(d.Pattern, Destructuring)
			continue
		}
		if d.Name != nil {
			r.enterScope(d.Name.Value)
		}
		for _, p := range d.Params {
			r.RegisterPattern(p, Destructuring)
		}
	}
}

// LetExit reduces declarations in source order. Earlier declarations are
// reduced, and their removals applied, before later ones: later
// declarations must see the state as mutated by the earlier findings.
func (r *Rule) LetExit(decls []*ast.LetDeclaration) {
	for _, d := range decls {
		if d.Pattern != nil {
			r.report(r.reducePattern(d.Pattern, Destructuring))
			continue
		}
		if d.Name != nil && r.unused[d.Name.Value] {
			delete(r.unused, d.Name.Value)
			// A name followed by a parameter list must stay a name;
			// only a plain binding can be blanked to `_`.
			var fx *diagnostics.Fix
			if len(d.Params) == 0 {
				fx = wildcardFix(d.Name.Range())
			}
			r.report([]*diagnostics.Diagnostic{
				diagnostics.UnusedValue(d.Name.Value, d.Name.Range(), fx),
			})
		}
		for _, p := range d.Params {
			r.report(r.reducePattern(p, Destructuring))
		}
	}
}

// CaseBranchEnter registers one branch's pattern. Branches are bracketed
// one at a time by the driver, so sibling branches never share bindings.
func (r *Rule) CaseBranchEnter(arm *ast.MatchArm) {
	r.RegisterPattern(arm.Pattern, Matching)
}

func (r *Rule) CaseBranchExit(arm *ast.MatchArm) {
	r.report(r.reducePattern(arm.Pattern, Matching))
}

// NameReference retires the pending binding for a bare identifier use.
func (r *Rule) NameReference(name string) {
	r.RecordUse(name)
}
