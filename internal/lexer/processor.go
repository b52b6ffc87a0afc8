package lexer

import (
	"github.com/funvibe/funlint/internal/diagnostics"
	"github.com/funvibe/funlint/internal/pipeline"
	"github.com/funvibe/funlint/internal/token"
)

// Processor is the lexing stage of the pipeline.
type Processor struct{}

func (lp *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	ctx.Tokens = Tokenize(ctx.Source)
	for _, tok := range ctx.Tokens {
		if tok.Type == token.ILLEGAL {
			ctx.AddError(diagnostics.NewError(
				diagnostics.CodeLexError, tok,
				"unexpected character %q", tok.Lexeme,
			))
		}
	}
	return ctx
}
