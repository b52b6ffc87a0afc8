package lexer

import (
	"testing"

	"github.com/funvibe/funlint/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `fun main(x, _) {
	let { (a, b) = x } in match a {
		Just(v) as whole -> v :: b ++ "ok"
		_ -> 3.14
	}
}`

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
	}{
		{token.FUN, "fun"},
		{token.IDENT, "main"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.COMMA, ","},
		{token.UNDERSCORE, "_"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.LET, "let"},
		{token.LBRACE, "{"},
		{token.LPAREN, "("},
		{token.IDENT, "a"},
		{token.COMMA, ","},
		{token.IDENT, "b"},
		{token.RPAREN, ")"},
		{token.ASSIGN, "="},
		{token.IDENT, "x"},
		{token.RBRACE, "}"},
		{token.IN, "in"},
		{token.MATCH, "match"},
		{token.IDENT, "a"},
		{token.LBRACE, "{"},
		{token.IDENT_UPPER, "Just"},
		{token.LPAREN, "("},
		{token.IDENT, "v"},
		{token.RPAREN, ")"},
		{token.AS, "as"},
		{token.IDENT, "whole"},
		{token.ARROW, "->"},
		{token.IDENT, "v"},
		{token.CONS, "::"},
		{token.IDENT, "b"},
		{token.CONCAT, "++"},
		{token.STRING, `"ok"`},
		{token.UNDERSCORE, "_"},
		{token.ARROW, "->"},
		{token.FLOAT, "3.14"},
		{token.RBRACE, "}"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong type. expected=%q, got=%q (%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - wrong lexeme. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `= == ! != < <= > >= + ++ - -> * / :: : . |>`
	expected := []token.TokenType{
		token.ASSIGN, token.EQ, token.BANG, token.NOT_EQ,
		token.LT, token.LT_EQ, token.GT, token.GT_EQ,
		token.PLUS, token.CONCAT, token.MINUS, token.ARROW,
		token.STAR, token.SLASH, token.CONS, token.COLON,
		token.DOT, token.PIPE, token.EOF,
	}
	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - expected %q, got %q (%q)", i, want, tok.Type, tok.Lexeme)
		}
	}
}

func TestLineComments(t *testing.T) {
	input := `a // trailing comment
// whole line
b`
	toks := Tokenize(input)
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(toks), toks)
	}
	if toks[0].Lexeme != "a" || toks[1].Lexeme != "b" {
		t.Errorf("comments must be skipped, got %q and %q", toks[0].Lexeme, toks[1].Lexeme)
	}
	if toks[1].Line != 3 {
		t.Errorf("expected b on line 3, got %d", toks[1].Line)
	}
}

func TestPositionsAndOffsets(t *testing.T) {
	input := "ab cd\nef"
	toks := Tokenize(input)

	want := []struct {
		lexeme string
		line   int
		column int
		offset int
	}{
		{"ab", 1, 1, 0},
		{"cd", 1, 4, 3},
		{"ef", 2, 1, 6},
	}
	for i, w := range want {
		tok := toks[i]
		if tok.Lexeme != w.lexeme || tok.Line != w.line || tok.Column != w.column || tok.Offset != w.offset {
			t.Errorf("tests[%d] - expected %q at %d:%d offset %d, got %q at %d:%d offset %d",
				i, w.lexeme, w.line, w.column, w.offset,
				tok.Lexeme, tok.Line, tok.Column, tok.Offset)
		}
	}
}

func TestTokenRangeCoversLexeme(t *testing.T) {
	toks := Tokenize("hello")
	rng := toks[0].Range()
	if rng.Start.Offset != 0 || rng.End.Offset != 5 {
		t.Errorf("expected offsets [0,5), got [%d,%d)", rng.Start.Offset, rng.End.Offset)
	}
	if rng.Start.Column != 1 || rng.End.Column != 6 {
		t.Errorf("expected columns [1,6), got [%d,%d)", rng.Start.Column, rng.End.Column)
	}
}

func TestStringEscapes(t *testing.T) {
	toks := Tokenize(`"a\nb\"c"`)
	if toks[0].Type != token.STRING {
		t.Fatalf("expected STRING, got %q", toks[0].Type)
	}
	if toks[0].Literal != "a\nb\"c" {
		t.Errorf("expected decoded literal %q, got %q", "a\nb\"c", toks[0].Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	toks := Tokenize(`"abc`)
	if toks[0].Type != token.ILLEGAL {
		t.Errorf("expected ILLEGAL for unterminated string, got %q", toks[0].Type)
	}
}

func TestCharLiteral(t *testing.T) {
	toks := Tokenize(`'x' '\n'`)
	if toks[0].Type != token.CHAR || toks[0].Literal != "x" {
		t.Errorf("expected char x, got %q %q", toks[0].Type, toks[0].Literal)
	}
	if toks[1].Type != token.CHAR || toks[1].Literal != "\n" {
		t.Errorf("expected newline char, got %q %q", toks[1].Type, toks[1].Literal)
	}
}

func TestIllegalRune(t *testing.T) {
	toks := Tokenize("a $ b")
	if toks[1].Type != token.ILLEGAL || toks[1].Lexeme != "$" {
		t.Errorf("expected ILLEGAL $, got %q %q", toks[1].Type, toks[1].Lexeme)
	}
}

func TestUnderscorePrefixedIdentifier(t *testing.T) {
	toks := Tokenize("_ _x")
	if toks[0].Type != token.UNDERSCORE {
		t.Errorf("expected UNDERSCORE, got %q", toks[0].Type)
	}
	if toks[1].Type != token.IDENT || toks[1].Lexeme != "_x" {
		t.Errorf("expected IDENT _x, got %q %q", toks[1].Type, toks[1].Lexeme)
	}
}
