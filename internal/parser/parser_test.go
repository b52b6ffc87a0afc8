package parser

import (
	"strings"
	"testing"

	"github.com/funvibe/funlint/internal/ast"
	"github.com/funvibe/funlint/internal/lexer"
	"github.com/funvibe/funlint/internal/pipeline"
	"github.com/funvibe/funlint/internal/prettyprinter"
)

func parseSource(t *testing.T, input string) (*ast.Program, *pipeline.Context) {
	t.Helper()
	ctx := pipeline.NewContext("test.fx", input)
	ctx.Tokens = lexer.Tokenize(input)
	prog := New(ctx.Tokens, ctx).ParseProgram()
	return prog, ctx
}

func parseValid(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, ctx := parseSource(t, input)
	if len(ctx.Errors) > 0 {
		var msgs []string
		for _, e := range ctx.Errors {
			msgs = append(msgs, e.String())
		}
		t.Fatalf("unexpected parse errors:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
	return prog
}

// parseDeclPattern parses a one-parameter declaration and returns the
// parameter pattern.
func parseDeclPattern(t *testing.T, pattern string) ast.Pattern {
	t.Helper()
	prog := parseValid(t, "fun f("+pattern+") { 1 }")
	if len(prog.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Declarations))
	}
	params := prog.Declarations[0].Params
	if len(params) != 1 {
		t.Fatalf("expected 1 parameter, got %d", len(params))
	}
	return params[0]
}

func TestFunctionDeclaration(t *testing.T) {
	prog := parseValid(t, "fun add(a, b) { a + b }")
	if len(prog.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Declarations))
	}
	decl := prog.Declarations[0]
	if decl.Name.Value != "add" {
		t.Errorf("expected name add, got %q", decl.Name.Value)
	}
	if len(decl.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(decl.Params))
	}
	infix, ok := decl.Body.(*ast.InfixExpression)
	if !ok {
		t.Fatalf("expected infix body, got %T", decl.Body)
	}
	if infix.Operator != "+" {
		t.Errorf("expected + operator, got %q", infix.Operator)
	}
}

func TestMultipleDeclarations(t *testing.T) {
	prog := parseValid(t, `
fun one() { 1 }
fun two() { 2 }
`)
	if len(prog.Declarations) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(prog.Declarations))
	}
}

// ---------------------------------------------------------------------------
// Patterns
// ---------------------------------------------------------------------------

// Pattern parsing is checked by rendering the tree back to text; the
// printer is exact for every pattern shape.
func TestPatternShapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"_", "_"},
		{"x", "x"},
		{"42", "42"},
		{"true", "true"},
		{"Nothing", "Nothing"},
		{"Just(x)", "Just(x)"},
		{"Pair(_, y)", "Pair(_, y)"},
		{"(a, b)", "(a, b)"},
		{"(a, b, c)", "(a, b, c)"},
		{"(x)", "(x)"},
		{"[]", "[]"},
		{"[a, b]", "[a, b]"},
		{"h :: t", "h :: t"},
		{"a :: b :: t", "a :: b :: t"},
		{"{a, b}", "{ a, b }"},
		{"x as y", "x as y"},
		{"x :: xs as whole", "x :: xs as whole"},
		{"Just((a, b))", "Just((a, b))"},
	}
	for _, tt := range tests {
		pat := parseDeclPattern(t, tt.input)
		if got := prettyprinter.RenderPattern(pat); got != tt.want {
			t.Errorf("pattern %q rendered as %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestConsPatternIsRightAssociative(t *testing.T) {
	pat := parseDeclPattern(t, "a :: b :: t")
	cons, ok := pat.(*ast.ConsPattern)
	if !ok {
		t.Fatalf("expected cons pattern, got %T", pat)
	}
	if _, ok := cons.Head.(*ast.IdentifierPattern); !ok {
		t.Errorf("expected identifier head, got %T", cons.Head)
	}
	if _, ok := cons.Tail.(*ast.ConsPattern); !ok {
		t.Errorf("expected nested cons tail, got %T", cons.Tail)
	}
}

func TestAsPatternBindsLoosest(t *testing.T) {
	pat := parseDeclPattern(t, "x :: xs as whole")
	as, ok := pat.(*ast.AsPattern)
	if !ok {
		t.Fatalf("expected as pattern at the top, got %T", pat)
	}
	if _, ok := as.Pattern.(*ast.ConsPattern); !ok {
		t.Errorf("expected the alias to cover the whole cons, got %T", as.Pattern)
	}
	if as.Name.Value != "whole" {
		t.Errorf("expected alias whole, got %q", as.Name.Value)
	}
}

func TestSingleParenPatternIsNotATuple(t *testing.T) {
	pat := parseDeclPattern(t, "(x)")
	if _, ok := pat.(*ast.ParenPattern); !ok {
		t.Fatalf("expected paren pattern, got %T", pat)
	}
}

func TestPatternRanges(t *testing.T) {
	// fun f(Pair(a, b)) { 1 }
	//       ^offset 6   ^rparen at 16
	pat := parseDeclPattern(t, "Pair(a, b)")
	rng := pat.Range()
	if rng.Start.Offset != 6 || rng.End.Offset != 16 {
		t.Errorf("expected range [6,16), got [%d,%d)", rng.Start.Offset, rng.End.Offset)
	}
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func TestOperatorPrecedence(t *testing.T) {
	prog := parseValid(t, "fun f(a, b, c) { a + b * c }")
	infix := prog.Declarations[0].Body.(*ast.InfixExpression)
	if infix.Operator != "+" {
		t.Fatalf("expected + at the top, got %q", infix.Operator)
	}
	right, ok := infix.Right.(*ast.InfixExpression)
	if !ok || right.Operator != "*" {
		t.Fatalf("expected * on the right, got %T", infix.Right)
	}
}

func TestCallExpression(t *testing.T) {
	prog := parseValid(t, "fun f(g, x) { g(x, 1) }")
	call, ok := prog.Declarations[0].Body.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected call, got %T", prog.Declarations[0].Body)
	}
	if len(call.Arguments) != 2 {
		t.Errorf("expected 2 arguments, got %d", len(call.Arguments))
	}
}

func TestAccessExpression(t *testing.T) {
	prog := parseValid(t, "fun f(r) { r.name }")
	access, ok := prog.Declarations[0].Body.(*ast.AccessExpression)
	if !ok {
		t.Fatalf("expected access, got %T", prog.Declarations[0].Body)
	}
	if access.Field.Value != "name" {
		t.Errorf("expected field name, got %q", access.Field.Value)
	}
}

func TestLetExpression(t *testing.T) {
	prog := parseValid(t, "fun f(p) { let { a = p; (x, y) = p; g(v) = v } in a }")
	let, ok := prog.Declarations[0].Body.(*ast.LetExpression)
	if !ok {
		t.Fatalf("expected let, got %T", prog.Declarations[0].Body)
	}
	if len(let.Declarations) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(let.Declarations))
	}
	if let.Declarations[0].Name == nil || let.Declarations[0].Name.Value != "a" {
		t.Errorf("first declaration must be name-style a")
	}
	if let.Declarations[1].Pattern == nil {
		t.Errorf("second declaration must be destructuring")
	}
	d := let.Declarations[2]
	if d.Name == nil || d.Name.Value != "g" || len(d.Params) != 1 {
		t.Errorf("third declaration must be function-style g with one parameter")
	}
}

func TestMatchExpression(t *testing.T) {
	prog := parseValid(t, "fun f(p) { match p { Just(x) -> x; _ -> 0 } }")
	m, ok := prog.Declarations[0].Body.(*ast.MatchExpression)
	if !ok {
		t.Fatalf("expected match, got %T", prog.Declarations[0].Body)
	}
	if len(m.Arms) != 2 {
		t.Fatalf("expected 2 arms, got %d", len(m.Arms))
	}
	if _, ok := m.Arms[0].Pattern.(*ast.ConstructorPattern); !ok {
		t.Errorf("expected constructor pattern in first arm, got %T", m.Arms[0].Pattern)
	}
	if _, ok := m.Arms[1].Pattern.(*ast.WildcardPattern); !ok {
		t.Errorf("expected wildcard in second arm, got %T", m.Arms[1].Pattern)
	}
}

func TestLambdaExpression(t *testing.T) {
	prog := parseValid(t, "fun f(p) { fn(x, _) { x } }")
	lam, ok := prog.Declarations[0].Body.(*ast.LambdaExpression)
	if !ok {
		t.Fatalf("expected lambda, got %T", prog.Declarations[0].Body)
	}
	if len(lam.Params) != 2 {
		t.Errorf("expected 2 params, got %d", len(lam.Params))
	}
}

// ---------------------------------------------------------------------------
// Errors and recovery
// ---------------------------------------------------------------------------

func TestTopLevelGarbageIsReported(t *testing.T) {
	_, ctx := parseSource(t, "42")
	if len(ctx.Errors) == 0 {
		t.Fatal("expected a parse error")
	}
}

func TestRecoveryAfterBadDeclaration(t *testing.T) {
	// The broken first declaration must not hide the second.
	prog, ctx := parseSource(t, `
fun broken( { 1 }
fun ok(x) { x }
`)
	if len(ctx.Errors) == 0 {
		t.Fatal("expected parse errors for the broken declaration")
	}
	found := false
	for _, d := range prog.Declarations {
		if d.Name.Value == "ok" {
			found = true
		}
	}
	if !found {
		t.Error("expected the parser to recover and parse fun ok")
	}
}

func TestErrorCarriesPosition(t *testing.T) {
	_, ctx := parseSource(t, "fun f(%) { 1 }")
	if len(ctx.Errors) == 0 {
		t.Fatal("expected a parse error")
	}
	if ctx.Errors[0].Range.Start.Line != 1 {
		t.Errorf("expected error on line 1, got %d", ctx.Errors[0].Range.Start.Line)
	}
	if ctx.Errors[0].File != "test.fx" {
		t.Errorf("expected file stamped on error, got %q", ctx.Errors[0].File)
	}
}
