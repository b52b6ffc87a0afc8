package parser

import (
	"github.com/funvibe/funlint/internal/ast"
	"github.com/funvibe/funlint/internal/diagnostics"
	"github.com/funvibe/funlint/internal/token"
)

// ParseProgram parses a whole source file: a sequence of top-level
// function declarations.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.FUN) {
			decl := p.parseFunctionDeclaration()
			if decl != nil {
				program.Declarations = append(program.Declarations, decl)
			} else {
				p.skipToNextDeclaration()
			}
		} else {
			p.ctx.AddError(diagnostics.NewError(
				diagnostics.CodeParseError, p.curToken,
				"expected 'fun' at top level, got %s", p.curToken.Type,
			))
			p.skipToNextDeclaration()
		}
		p.nextToken()
	}
	return program
}

// skipToNextDeclaration recovers from a parse error by advancing to the
// next 'fun' keyword so one bad declaration does not drown the rest of
// the file in cascading errors.
func (p *Parser) skipToNextDeclaration() {
	for !p.peekTokenIs(token.FUN) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
	}
}

// fun name(p1, p2) { body }
func (p *Parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	funTok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params, ok := p.parsePatternList(token.RPAREN)
	if !ok {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	if body == nil {
		return nil
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.FunctionDeclaration{
		Token:  funTok,
		Name:   name,
		Params: params,
		Body:   body,
		EndTok: p.curToken,
	}
}

// parseLetDeclaration parses a single binding inside a let block, with
// curToken on its first token. Name and Pattern are mutually exclusive
// on the resulting node.
func (p *Parser) parseLetDeclaration() *ast.LetDeclaration {
	startTok := p.curToken

	// Function-style binding: name = value, or name(p1, p2) = value.
	if p.curTokenIs(token.IDENT) && (p.peekTokenIs(token.ASSIGN) || p.peekTokenIs(token.LPAREN)) {
		name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		var params []ast.Pattern
		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			var ok bool
			params, ok = p.parsePatternList(token.RPAREN)
			if !ok {
				return nil
			}
		}
		if !p.expectPeek(token.ASSIGN) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		return &ast.LetDeclaration{Token: startTok, Name: name, Params: params, Value: value}
	}

	// Destructuring binding: pattern = value.
	pat := p.parsePattern()
	if pat == nil {
		return nil
	}
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	return &ast.LetDeclaration{Token: startTok, Pattern: pat, Value: value}
}
