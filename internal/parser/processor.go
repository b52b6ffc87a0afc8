package parser

import (
	"github.com/funvibe/funlint/internal/diagnostics"
	"github.com/funvibe/funlint/internal/pipeline"
	"github.com/funvibe/funlint/internal/token"
)

// Processor is the parsing stage of the pipeline.
type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.Tokens == nil {
		ctx.AddError(diagnostics.NewError(
			diagnostics.CodeParseError, token.Token{}, "parser: token stream is nil",
		))
		return ctx
	}

	p := New(ctx.Tokens, ctx)
	ctx.AstRoot = p.ParseProgram()
	if ctx.AstRoot != nil {
		ctx.AstRoot.File = ctx.FilePath
	}
	return ctx
}
