// Package prettyprinter renders AST nodes back to source text. The lint
// engine uses it when a fix needs the text of a reduced pattern (a record
// with fewer fields, or the inner pattern of a dropped alias).
package prettyprinter

import (
	"bytes"

	"github.com/funvibe/funlint/internal/ast"
)

// --- Code Printer (output looks like source code) ---

type CodePrinter struct {
	buf bytes.Buffer
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

// PrintPattern appends the source form of a pattern to the printer.
func (p *CodePrinter) PrintPattern(pat ast.Pattern) {
	switch n := pat.(type) {
	case *ast.WildcardPattern:
		p.write("_")
	case *ast.LiteralPattern:
		p.write(n.Token.Lexeme)
	case *ast.IdentifierPattern:
		p.write(n.Value)
	case *ast.ConstructorPattern:
		if n.Name != nil {
			p.write(n.Name.Value)
		} else {
			p.write("<???>")
		}
		if len(n.Elements) > 0 {
			p.write("(")
			for i, el := range n.Elements {
				if i > 0 {
					p.write(", ")
				}
				p.PrintPattern(el)
			}
			p.write(")")
		}
	case *ast.TuplePattern:
		p.write("(")
		for i, el := range n.Elements {
			if i > 0 {
				p.write(", ")
			}
			p.PrintPattern(el)
		}
		p.write(")")
	case *ast.ListPattern:
		p.write("[")
		for i, el := range n.Elements {
			if i > 0 {
				p.write(", ")
			}
			p.PrintPattern(el)
		}
		p.write("]")
	case *ast.ConsPattern:
		p.PrintPattern(n.Head)
		p.write(" :: ")
		p.PrintPattern(n.Tail)
	case *ast.RecordPattern:
		p.write("{ ")
		for i, f := range n.Fields {
			if i > 0 {
				p.write(", ")
			}
			p.write(f.Value)
		}
		p.write(" }")
	case *ast.AsPattern:
		p.PrintPattern(n.Pattern)
		p.write(" as ")
		p.write(n.Name.Value)
	case *ast.ParenPattern:
		p.write("(")
		p.PrintPattern(n.Pattern)
		p.write(")")
	default:
		p.write("<???>")
	}
}

// RenderPattern returns the source form of a pattern.
func RenderPattern(pat ast.Pattern) string {
	p := NewCodePrinter()
	p.PrintPattern(pat)
	return p.String()
}
