package diagnostics

import (
	"testing"

	"github.com/funvibe/funlint/internal/token"
)

func rangeAt(line, column int) token.Range {
	return token.Range{
		Start: token.Position{Line: line, Column: column},
		End:   token.Position{Line: line, Column: column + 1},
	}
}

func TestUnusedValueMessage(t *testing.T) {
	d := UnusedValue("x", rangeAt(1, 1), nil)
	if d.Code != CodeUnusedValue {
		t.Errorf("expected %s, got %s", CodeUnusedValue, d.Code)
	}
	if d.Message != "Value `x` is not used" {
		t.Errorf("unexpected message: %q", d.Message)
	}
	if d.Details != "You should either use this value somewhere, or remove it at the location I pointed at." {
		t.Errorf("unexpected details: %q", d.Details)
	}
}

func TestUnusedValuesSingleNameFallsBackToSingular(t *testing.T) {
	d := UnusedValues([]string{"a"}, rangeAt(1, 1), nil)
	if d.Message != "Value `a` is not used" {
		t.Errorf("unexpected message: %q", d.Message)
	}
}

func TestUnusedValuesJoinsNames(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{[]string{"a", "b"}, "Values `a` and `b` are not used"},
		{[]string{"a", "b", "c"}, "Values `a`, `b` and `c` are not used"},
	}
	for _, tt := range tests {
		d := UnusedValues(tt.names, rangeAt(1, 1), nil)
		if d.Message != tt.want {
			t.Errorf("names %v: expected %q, got %q", tt.names, tt.want, d.Message)
		}
	}
}

func TestRedundantPatternDetails(t *testing.T) {
	want := "This pattern is redundant, you should remove it at the location I pointed at."
	if d := TupleNotNeeded(rangeAt(1, 1), nil); d.Details != want {
		t.Errorf("tuple details: %q", d.Details)
	}
	if d := NamedNotNeeded(rangeAt(1, 1), nil); d.Details != want {
		t.Errorf("named details: %q", d.Details)
	}
}

func TestWildcardNotNeededDetails(t *testing.T) {
	d := WildcardNotNeeded(rangeAt(1, 1), nil)
	if d.Message != "Pattern `_` is not needed" {
		t.Errorf("unexpected message: %q", d.Message)
	}
	if d.Details != "You should remove it at the location I pointed at." {
		t.Errorf("unexpected details: %q", d.Details)
	}
}

func TestIsSyntax(t *testing.T) {
	err := NewError(CodeParseError, token.Token{Line: 1, Column: 1}, "boom")
	if !err.IsSyntax() {
		t.Error("parse errors are syntax errors")
	}
	if UnusedValue("x", rangeAt(1, 1), nil).IsSyntax() {
		t.Error("lint findings are not syntax errors")
	}
}

func TestNewErrorFormatsMessage(t *testing.T) {
	tok := token.Token{Type: token.ILLEGAL, Lexeme: "$", Line: 2, Column: 5}
	err := NewError(CodeLexError, tok, "unexpected character %q", "$")
	if err.Message != `unexpected character "$"` {
		t.Errorf("unexpected message: %q", err.Message)
	}
	if err.Range.Start.Line != 2 || err.Range.Start.Column != 5 {
		t.Errorf("unexpected range: %v", err.Range)
	}
}

func TestSortOrdersByPosition(t *testing.T) {
	a := NewError(CodeParseError, token.Token{Line: 3, Column: 1}, "third")
	b := NewError(CodeParseError, token.Token{Line: 1, Column: 9}, "second")
	c := NewError(CodeParseError, token.Token{Line: 1, Column: 2}, "first")
	diags := []*Diagnostic{a, b, c}
	Sort(diags)
	if diags[0] != c || diags[1] != b || diags[2] != a {
		t.Errorf("unexpected order: %v %v %v", diags[0].Message, diags[1].Message, diags[2].Message)
	}
}
