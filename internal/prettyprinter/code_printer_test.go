package prettyprinter

import (
	"testing"

	"github.com/funvibe/funlint/internal/ast"
	"github.com/funvibe/funlint/internal/token"
)

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Token: token.Token{Type: token.IDENT, Lexeme: name}, Value: name}
}

func identPat(name string) ast.Pattern {
	return &ast.IdentifierPattern{Token: token.Token{Type: token.IDENT, Lexeme: name}, Value: name}
}

func wildcard() ast.Pattern {
	return &ast.WildcardPattern{Token: token.Token{Type: token.UNDERSCORE, Lexeme: "_"}}
}

func TestRenderPattern(t *testing.T) {
	tests := []struct {
		name string
		pat  ast.Pattern
		want string
	}{
		{"wildcard", wildcard(), "_"},
		{"identifier", identPat("x"), "x"},
		{
			"literal",
			&ast.LiteralPattern{Token: token.Token{Type: token.INT, Lexeme: "42"}, Value: int64(42)},
			"42",
		},
		{
			"nullary constructor",
			&ast.ConstructorPattern{Name: ident("Nothing")},
			"Nothing",
		},
		{
			"constructor",
			&ast.ConstructorPattern{Name: ident("Pair"), Elements: []ast.Pattern{identPat("a"), wildcard()}},
			"Pair(a, _)",
		},
		{
			"tuple",
			&ast.TuplePattern{Elements: []ast.Pattern{identPat("a"), identPat("b"), identPat("c")}},
			"(a, b, c)",
		},
		{
			"empty list",
			&ast.ListPattern{},
			"[]",
		},
		{
			"list",
			&ast.ListPattern{Elements: []ast.Pattern{identPat("a"), identPat("b")}},
			"[a, b]",
		},
		{
			"cons",
			&ast.ConsPattern{Head: identPat("x"), Tail: identPat("xs")},
			"x :: xs",
		},
		{
			"record",
			&ast.RecordPattern{Fields: []*ast.Identifier{ident("a"), ident("b")}},
			"{ a, b }",
		},
		{
			"as",
			&ast.AsPattern{Pattern: &ast.ConsPattern{Head: identPat("x"), Tail: identPat("xs")}, Name: ident("whole")},
			"x :: xs as whole",
		},
		{
			"paren",
			&ast.ParenPattern{Pattern: identPat("x")},
			"(x)",
		},
		{
			"nested",
			&ast.ConstructorPattern{
				Name: ident("Wrap"),
				Elements: []ast.Pattern{
					&ast.TuplePattern{Elements: []ast.Pattern{wildcard(), identPat("v")}},
				},
			},
			"Wrap((_, v))",
		},
	}
	for _, tt := range tests {
		if got := RenderPattern(tt.pat); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestRenderUnknownPattern(t *testing.T) {
	if got := RenderPattern(nil); got != "<???>" {
		t.Errorf("expected placeholder for unknown pattern, got %q", got)
	}
}
