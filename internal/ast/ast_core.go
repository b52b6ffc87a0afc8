package ast

import (
	"github.com/funvibe/funlint/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
	Range() token.Range
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is a Node that destructures a value and optionally introduces
// names bound to its parts.
type Pattern interface {
	Node
	patternNode()
}

// Program is the root node of every AST the parser produces.
type Program struct {
	File         string // source file path
	Declarations []*FunctionDeclaration
}

func (p *Program) TokenLiteral() string {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].TokenLiteral()
	}
	return ""
}

func (p *Program) GetToken() token.Token {
	if p == nil || len(p.Declarations) == 0 {
		return token.Token{}
	}
	return p.Declarations[0].GetToken()
}

func (p *Program) Range() token.Range {
	if p == nil || len(p.Declarations) == 0 {
		return token.Range{}
	}
	return p.Declarations[0].Range().Union(p.Declarations[len(p.Declarations)-1].Range())
}

// FunctionDeclaration represents a top-level function.
// fun name(p1, p2) { body }
type FunctionDeclaration struct {
	Token  token.Token // the 'fun' token
	Name   *Identifier
	Params []Pattern
	Body   Expression
	EndTok token.Token // the closing '}'
}

func (fd *FunctionDeclaration) TokenLiteral() string { return fd.Token.Lexeme }
func (fd *FunctionDeclaration) GetToken() token.Token {
	if fd == nil {
		return token.Token{}
	}
	return fd.Token
}

func (fd *FunctionDeclaration) Range() token.Range {
	return token.Range{Start: fd.Token.Pos(), End: fd.EndTok.End()}
}

// Identifier represents a name use or a declared name.
type Identifier struct {
	Token token.Token // the token.IDENT token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}
func (i *Identifier) Range() token.Range { return i.Token.Range() }

// IntegerLiteral represents an integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }
func (il *IntegerLiteral) Range() token.Range    { return il.Token.Range() }

// FloatLiteral represents a floating point literal.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()       {}
func (fl *FloatLiteral) TokenLiteral() string  { return fl.Token.Lexeme }
func (fl *FloatLiteral) GetToken() token.Token { return fl.Token }
func (fl *FloatLiteral) Range() token.Range    { return fl.Token.Range() }

// BooleanLiteral represents boolean literals true/false.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()       {}
func (b *BooleanLiteral) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BooleanLiteral) GetToken() token.Token { return b.Token }
func (b *BooleanLiteral) Range() token.Range    { return b.Token.Range() }

// StringLiteral represents a string, e.g. "hello"
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }
func (sl *StringLiteral) Range() token.Range    { return sl.Token.Range() }

// CharLiteral represents a character, e.g. 'c'
type CharLiteral struct {
	Token token.Token
	Value rune
}

func (cl *CharLiteral) expressionNode()       {}
func (cl *CharLiteral) TokenLiteral() string  { return cl.Token.Lexeme }
func (cl *CharLiteral) GetToken() token.Token { return cl.Token }
func (cl *CharLiteral) Range() token.Range    { return cl.Token.Range() }
