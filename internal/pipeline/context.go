package pipeline

import (
	"github.com/funvibe/funlint/internal/ast"
	"github.com/funvibe/funlint/internal/diagnostics"
	"github.com/funvibe/funlint/internal/token"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Context carries one file through the stages: source text in, tokens,
// AST, then diagnostics out.
type Context struct {
	FilePath string
	Source   string

	Tokens  []token.Token
	AstRoot *ast.Program

	// Errors are lex/parse failures; Diagnostics are lint findings in
	// engine emission order.
	Errors      []*diagnostics.Diagnostic
	Diagnostics []*diagnostics.Diagnostic
}

// NewContext builds a context for a single source file.
func NewContext(filePath, source string) *Context {
	return &Context{FilePath: filePath, Source: source}
}

// AddError records a syntax diagnostic, stamping the file path.
func (ctx *Context) AddError(err *diagnostics.Diagnostic) {
	if err.File == "" {
		err.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, err)
}
