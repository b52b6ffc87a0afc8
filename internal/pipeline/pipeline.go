package pipeline

// Pipeline chains the per-file stages: lex, parse, lint.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run pushes a file's context through every stage. Later stages run
// even when earlier ones recorded errors: the LSP publishes syntax
// errors and lint findings from the same pass.
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
