package ast

import (
	"github.com/funvibe/funlint/internal/token"
)

// WildcardPattern: _
type WildcardPattern struct {
	Token token.Token
}

func (p *WildcardPattern) patternNode()          {}
func (p *WildcardPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *WildcardPattern) GetToken() token.Token { return p.Token }
func (p *WildcardPattern) Range() token.Range    { return p.Token.Range() }

// LiteralPattern: 1, "x", true
type LiteralPattern struct {
	Token token.Token
	Value interface{}
}

func (p *LiteralPattern) patternNode()          {}
func (p *LiteralPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *LiteralPattern) GetToken() token.Token { return p.Token }
func (p *LiteralPattern) Range() token.Range    { return p.Token.Range() }

// IdentifierPattern: x
type IdentifierPattern struct {
	Token token.Token
	Value string
}

func (p *IdentifierPattern) patternNode()          {}
func (p *IdentifierPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *IdentifierPattern) GetToken() token.Token { return p.Token }
func (p *IdentifierPattern) Range() token.Range    { return p.Token.Range() }

// ConstructorPattern: Just(x), Nothing
type ConstructorPattern struct {
	Token    token.Token // constructor name
	Name     *Identifier
	Elements []Pattern
	EndTok   token.Token // closing ')' when Elements is non-empty, else the name token
}

func (p *ConstructorPattern) patternNode()          {}
func (p *ConstructorPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *ConstructorPattern) GetToken() token.Token { return p.Token }
func (p *ConstructorPattern) Range() token.Range {
	return token.Range{Start: p.Token.Pos(), End: p.EndTok.End()}
}

// TuplePattern: (x, y, _)
type TuplePattern struct {
	Token    token.Token // '('
	Elements []Pattern
	EndTok   token.Token // ')'
}

func (p *TuplePattern) patternNode()          {}
func (p *TuplePattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *TuplePattern) GetToken() token.Token { return p.Token }
func (p *TuplePattern) Range() token.Range {
	return token.Range{Start: p.Token.Pos(), End: p.EndTok.End()}
}

// ListPattern: [], [x, y]
type ListPattern struct {
	Token    token.Token // '['
	Elements []Pattern
	EndTok   token.Token // ']'
}

func (p *ListPattern) patternNode()          {}
func (p *ListPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *ListPattern) GetToken() token.Token { return p.Token }
func (p *ListPattern) Range() token.Range {
	return token.Range{Start: p.Token.Pos(), End: p.EndTok.End()}
}

// ConsPattern: head :: tail
type ConsPattern struct {
	Token token.Token // the '::' token
	Head  Pattern
	Tail  Pattern
}

func (p *ConsPattern) patternNode()          {}
func (p *ConsPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *ConsPattern) GetToken() token.Token { return p.Token }
func (p *ConsPattern) Range() token.Range {
	return p.Head.Range().Union(p.Tail.Range())
}

// RecordPattern: { x, y }. Field names bind directly, there are no
// nested patterns behind them.
type RecordPattern struct {
	Token  token.Token // '{'
	Fields []*Identifier
	EndTok token.Token // '}'
}

func (p *RecordPattern) patternNode()          {}
func (p *RecordPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *RecordPattern) GetToken() token.Token { return p.Token }
func (p *RecordPattern) Range() token.Range {
	return token.Range{Start: p.Token.Pos(), End: p.EndTok.End()}
}

// AsPattern: inner as name
type AsPattern struct {
	Token   token.Token // the 'as' token
	Pattern Pattern
	Name    *Identifier
}

func (p *AsPattern) patternNode()          {}
func (p *AsPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *AsPattern) GetToken() token.Token { return p.Token }
func (p *AsPattern) Range() token.Range {
	return p.Pattern.Range().Union(p.Name.Range())
}

// ParenPattern: (p). Transparent wrapper kept for source fidelity.
type ParenPattern struct {
	Token   token.Token // '('
	Pattern Pattern
	EndTok  token.Token // ')'
}

func (p *ParenPattern) patternNode()          {}
func (p *ParenPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *ParenPattern) GetToken() token.Token { return p.Token }
func (p *ParenPattern) Range() token.Range {
	return token.Range{Start: p.Token.Pos(), End: p.EndTok.End()}
}
