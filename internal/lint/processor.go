package lint

import (
	"github.com/funvibe/funlint/internal/pipeline"
	"github.com/funvibe/funlint/internal/prettyprinter"
)

// Processor is the analysis stage of the pipeline. It runs after the
// parser and leaves findings on the context in emission order.
type Processor struct{}

func (lp *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.AstRoot == nil {
		return ctx
	}
	diags := Analyze(ctx.AstRoot, RendererFunc(prettyprinter.RenderPattern))
	for _, d := range diags {
		d.File = ctx.FilePath
	}
	ctx.Diagnostics = append(ctx.Diagnostics, diags...)
	return ctx
}
