package parser

import (
	"strconv"

	"github.com/funvibe/funlint/internal/ast"
	"github.com/funvibe/funlint/internal/diagnostics"
	"github.com/funvibe/funlint/internal/token"
)

// parsePatternList parses a comma-separated pattern list with curToken on
// the opening delimiter, leaving curToken on the closing one.
func (p *Parser) parsePatternList(end token.TokenType) ([]ast.Pattern, bool) {
	var patterns []ast.Pattern
	if p.peekTokenIs(end) {
		p.nextToken()
		return patterns, true
	}
	p.nextToken()
	first := p.parsePattern()
	if first == nil {
		return nil, false
	}
	patterns = append(patterns, first)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		pat := p.parsePattern()
		if pat == nil {
			return nil, false
		}
		patterns = append(patterns, pat)
	}
	if !p.expectPeek(end) {
		return nil, false
	}
	return patterns, true
}

// parsePattern parses a full pattern with curToken on its first token,
// leaving curToken on its last. `as` binds loosest: x :: xs as whole
// aliases the entire cons pattern.
func (p *Parser) parsePattern() ast.Pattern {
	pat := p.parseConsPattern()
	if pat == nil {
		return nil
	}
	for p.peekTokenIs(token.AS) {
		p.nextToken()
		asTok := p.curToken
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		pat = &ast.AsPattern{Token: asTok, Pattern: pat, Name: name}
	}
	return pat
}

// parseConsPattern handles the right-associative :: operator.
func (p *Parser) parseConsPattern() ast.Pattern {
	head := p.parsePrimaryPattern()
	if head == nil {
		return nil
	}
	if !p.peekTokenIs(token.CONS) {
		return head
	}
	p.nextToken()
	consTok := p.curToken
	p.nextToken()
	tail := p.parseConsPattern()
	if tail == nil {
		return nil
	}
	return &ast.ConsPattern{Token: consTok, Head: head, Tail: tail}
}

func (p *Parser) parsePrimaryPattern() ast.Pattern {
	switch p.curToken.Type {
	case token.UNDERSCORE:
		return &ast.WildcardPattern{Token: p.curToken}
	case token.IDENT:
		return &ast.IdentifierPattern{Token: p.curToken, Value: p.curToken.Lexeme}
	case token.INT:
		value, _ := strconv.ParseInt(p.curToken.Lexeme, 10, 64)
		return &ast.LiteralPattern{Token: p.curToken, Value: value}
	case token.FLOAT:
		value, _ := strconv.ParseFloat(p.curToken.Lexeme, 64)
		return &ast.LiteralPattern{Token: p.curToken, Value: value}
	case token.STRING:
		return &ast.LiteralPattern{Token: p.curToken, Value: p.curToken.Literal}
	case token.CHAR:
		return &ast.LiteralPattern{Token: p.curToken, Value: p.curToken.Literal}
	case token.TRUE:
		return &ast.LiteralPattern{Token: p.curToken, Value: true}
	case token.FALSE:
		return &ast.LiteralPattern{Token: p.curToken, Value: false}
	case token.IDENT_UPPER:
		return p.parseConstructorPattern()
	case token.LPAREN:
		return p.parseTupleOrParenPattern()
	case token.LBRACKET:
		return p.parseListPattern()
	case token.LBRACE:
		return p.parseRecordPattern()
	default:
		p.ctx.AddError(diagnostics.NewError(
			diagnostics.CodeParseError, p.curToken,
			"unexpected token %s in pattern", p.curToken.Type,
		))
		return nil
	}
}

// Just(x), Nothing
func (p *Parser) parseConstructorPattern() ast.Pattern {
	nameTok := p.curToken
	name := &ast.Identifier{Token: nameTok, Value: nameTok.Lexeme}
	pat := &ast.ConstructorPattern{Token: nameTok, Name: name, EndTok: nameTok}
	if !p.peekTokenIs(token.LPAREN) {
		return pat
	}
	p.nextToken()
	elements, ok := p.parsePatternList(token.RPAREN)
	if !ok {
		return nil
	}
	pat.Elements = elements
	pat.EndTok = p.curToken
	return pat
}

// (p) or (p1, p2, p3)
func (p *Parser) parseTupleOrParenPattern() ast.Pattern {
	lparen := p.curToken
	p.nextToken()
	first := p.parsePattern()
	if first == nil {
		return nil
	}
	if !p.peekTokenIs(token.COMMA) {
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return &ast.ParenPattern{Token: lparen, Pattern: first, EndTok: p.curToken}
	}

	elements := []ast.Pattern{first}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		el := p.parsePattern()
		if el == nil {
			return nil
		}
		elements = append(elements, el)
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.TuplePattern{Token: lparen, Elements: elements, EndTok: p.curToken}
}

// [], [x, y]
func (p *Parser) parseListPattern() ast.Pattern {
	lbracket := p.curToken
	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		return &ast.ListPattern{Token: lbracket, EndTok: p.curToken}
	}
	p.nextToken()
	first := p.parsePattern()
	if first == nil {
		return nil
	}
	elements := []ast.Pattern{first}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		el := p.parsePattern()
		if el == nil {
			return nil
		}
		elements = append(elements, el)
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.ListPattern{Token: lbracket, Elements: elements, EndTok: p.curToken}
}

// { x, y }: field names bind directly.
func (p *Parser) parseRecordPattern() ast.Pattern {
	lbrace := p.curToken
	var fields []*ast.Identifier
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	fields = append(fields, &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme})
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		fields = append(fields, &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme})
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.RecordPattern{Token: lbrace, Fields: fields, EndTok: p.curToken}
}
