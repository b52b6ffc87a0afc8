package ast

import (
	"github.com/funvibe/funlint/internal/token"
)

// AccessExpression represents field access on a record value: base.field
type AccessExpression struct {
	Token token.Token // the '.' token
	Base  Expression
	Field *Identifier
}

func (ae *AccessExpression) expressionNode()       {}
func (ae *AccessExpression) TokenLiteral() string  { return ae.Token.Lexeme }
func (ae *AccessExpression) GetToken() token.Token { return ae.Token }
func (ae *AccessExpression) Range() token.Range {
	return ae.Base.Range().Union(ae.Field.Range())
}

// CallExpression represents a function call: callee(a, b)
type CallExpression struct {
	Token     token.Token // the '(' token
	Callee    Expression
	Arguments []Expression
	EndTok    token.Token // the closing ')'
}

func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }
func (ce *CallExpression) Range() token.Range {
	return token.Range{Start: ce.Callee.Range().Start, End: ce.EndTok.End()}
}

// PrefixExpression represents a prefix operator: -x, !b
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()       {}
func (pe *PrefixExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }
func (pe *PrefixExpression) Range() token.Range {
	return pe.Token.Range().Union(pe.Right.Range())
}

// InfixExpression represents a binary operation: a + b, x :: xs
type InfixExpression struct {
	Token    token.Token // the operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (ie *InfixExpression) expressionNode()       {}
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token { return ie.Token }
func (ie *InfixExpression) Range() token.Range {
	return ie.Left.Range().Union(ie.Right.Range())
}

// TupleLiteral represents a tuple, e.g. (1, "hello", true)
type TupleLiteral struct {
	Token    token.Token // the '(' token
	Elements []Expression
	EndTok   token.Token // the closing ')'
}

func (tl *TupleLiteral) expressionNode()       {}
func (tl *TupleLiteral) TokenLiteral() string  { return tl.Token.Lexeme }
func (tl *TupleLiteral) GetToken() token.Token { return tl.Token }
func (tl *TupleLiteral) Range() token.Range {
	return token.Range{Start: tl.Token.Pos(), End: tl.EndTok.End()}
}

// ListLiteral represents a list, e.g. [1, 2, 3]
type ListLiteral struct {
	Token    token.Token // the '[' token
	Elements []Expression
	EndTok   token.Token // the closing ']'
}

func (ll *ListLiteral) expressionNode()       {}
func (ll *ListLiteral) TokenLiteral() string  { return ll.Token.Lexeme }
func (ll *ListLiteral) GetToken() token.Token { return ll.Token }
func (ll *ListLiteral) Range() token.Range {
	return token.Range{Start: ll.Token.Pos(), End: ll.EndTok.End()}
}

// RecordField is one key: value entry of a record literal.
type RecordField struct {
	Name  *Identifier
	Value Expression
}

// RecordLiteral represents a record instantiation, e.g. { x: 1, y: 2 }
type RecordLiteral struct {
	Token  token.Token // the '{' token
	Fields []*RecordField
	EndTok token.Token // the closing '}'
}

func (rl *RecordLiteral) expressionNode()       {}
func (rl *RecordLiteral) TokenLiteral() string  { return rl.Token.Lexeme }
func (rl *RecordLiteral) GetToken() token.Token { return rl.Token }
func (rl *RecordLiteral) Range() token.Range {
	return token.Range{Start: rl.Token.Pos(), End: rl.EndTok.End()}
}

// LambdaExpression represents an anonymous function: fn(p1, p2) { body }
type LambdaExpression struct {
	Token  token.Token // the 'fn' token
	Params []Pattern
	Body   Expression
	EndTok token.Token // the closing '}'
}

func (le *LambdaExpression) expressionNode()       {}
func (le *LambdaExpression) TokenLiteral() string  { return le.Token.Lexeme }
func (le *LambdaExpression) GetToken() token.Token { return le.Token }
func (le *LambdaExpression) Range() token.Range {
	return token.Range{Start: le.Token.Pos(), End: le.EndTok.End()}
}

// LetDeclaration is a single binding inside a let block. Name and Pattern
// are mutually exclusive: a function-style binding has a Name (and possibly
// parameter patterns), a destructuring binding has a Pattern.
//
//	let { x = 1; f(n) = n; (a, b) = pair } in ...
type LetDeclaration struct {
	Token   token.Token // first token of the declaration
	Name    *Identifier // function-style binding: f(n) = ... or x = ...
	Params  []Pattern   // parameter patterns of a function-style binding
	Pattern Pattern     // destructuring binding: (a, b) = ...
	Value   Expression
}

func (ld *LetDeclaration) TokenLiteral() string { return ld.Token.Lexeme }
func (ld *LetDeclaration) GetToken() token.Token {
	if ld == nil {
		return token.Token{}
	}
	return ld.Token
}

func (ld *LetDeclaration) Range() token.Range {
	r := ld.Token.Range()
	if ld.Value != nil {
		r = r.Union(ld.Value.Range())
	}
	return r
}

// LetExpression represents a let block: let { decls } in body
type LetExpression struct {
	Token        token.Token // the 'let' token
	Declarations []*LetDeclaration
	Body         Expression
}

func (le *LetExpression) expressionNode()       {}
func (le *LetExpression) TokenLiteral() string  { return le.Token.Lexeme }
func (le *LetExpression) GetToken() token.Token { return le.Token }
func (le *LetExpression) Range() token.Range {
	r := le.Token.Range()
	if le.Body != nil {
		r = r.Union(le.Body.Range())
	}
	return r
}

// MatchArm represents a single case in a match expression.
type MatchArm struct {
	Pattern    Pattern
	Expression Expression
}

// MatchExpression represents a match expression.
// match expr { pat -> expr; pat -> expr }
type MatchExpression struct {
	Token      token.Token // the 'match' token
	Expression Expression
	Arms       []*MatchArm
	EndTok     token.Token // the closing '}'
}

func (me *MatchExpression) expressionNode()       {}
func (me *MatchExpression) TokenLiteral() string  { return me.Token.Lexeme }
func (me *MatchExpression) GetToken() token.Token { return me.Token }
func (me *MatchExpression) Range() token.Range {
	return token.Range{Start: me.Token.Pos(), End: me.EndTok.End()}
}
