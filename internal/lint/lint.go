// Package lint implements the unused pattern-binding analysis: every name
// a destructuring pattern introduces must be referenced somewhere in its
// enclosing scope, otherwise the binding is reported together with a fix
// that removes or simplifies the pattern.
package lint

import (
	"github.com/funvibe/funlint/internal/ast"
	"github.com/funvibe/funlint/internal/diagnostics"
	"github.com/funvibe/funlint/internal/walk"
)

// PatternContext tells the reducer how a pattern is being used.
type PatternContext int

const (
	// Destructuring covers argument and let bindings, where a pattern
	// that binds nothing is pointless and collapses to a wildcard.
	Destructuring PatternContext = iota
	// Matching covers match branches, where a constructor's shape is
	// semantically meaningful even if all its arguments are wildcards.
	Matching
)

// Renderer turns a pattern back into source text. It is injected so the
// engine stays independent of the concrete syntax.
type Renderer interface {
	RenderPattern(pat ast.Pattern) string
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(pat ast.Pattern) string

func (f RendererFunc) RenderPattern(pat ast.Pattern) string { return f(pat) }

// Rule is the analysis state for one top-level declaration: the set of
// names that are bound but not yet known to be used, and the findings
// produced so far. Scopes are processed in strict enter/exit order, so a
// single flat set is sufficient; no state survives across declarations.
type Rule struct {
	unused map[string]bool
	render Renderer
	diags  []*diagnostics.Diagnostic
}

// NewRule returns a rule with empty state.
func NewRule(render Renderer) *Rule {
	r := &Rule{render: render}
	r.Reset()
	return r
}

// Reset discards all pending bindings and findings.
func (r *Rule) Reset() {
	r.unused = make(map[string]bool)
	r.diags = nil
}

// Diagnostics returns the findings in emission order. The order is part
// of the contract: an alias finding precedes the findings of its inner
// pattern, and earlier let declarations precede later ones.
func (r *Rule) Diagnostics() []*diagnostics.Diagnostic {
	return r.diags
}

func (r *Rule) report(diags []*diagnostics.Diagnostic) {
	r.diags = append(r.diags, diags...)
}

// AnalyzeDeclaration runs the analysis over a single top-level
// declaration and returns its findings.
func AnalyzeDeclaration(decl *ast.FunctionDeclaration, render Renderer) []*diagnostics.Diagnostic {
	rule := NewRule(render)
	walk.Declaration(decl, rule)
	return rule.Diagnostics()
}

// Analyze runs the analysis over every declaration of a program. Each
// declaration is analyzed with fresh state.
func Analyze(prog *ast.Program, render Renderer) []*diagnostics.Diagnostic {
	if prog == nil {
		return nil
	}
	var out []*diagnostics.Diagnostic
	for _, decl := range prog.Declarations {
		out = append(out, AnalyzeDeclaration(decl, render)...)
	}
	return out
}
