package parser

import (
	"strconv"

	"github.com/funvibe/funlint/internal/ast"
	"github.com/funvibe/funlint/internal/diagnostics"
	"github.com/funvibe/funlint/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.ctx.AddError(diagnostics.NewError(
			diagnostics.CodeParseError, p.curToken,
			"expression too complex: recursion depth limit exceeded",
		))
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}
	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Lexeme, 10, 64)
	if err != nil {
		p.ctx.AddError(diagnostics.NewError(
			diagnostics.CodeParseError, p.curToken,
			"could not parse %q as integer", p.curToken.Lexeme,
		))
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	value, err := strconv.ParseFloat(p.curToken.Lexeme, 64)
	if err != nil {
		p.ctx.AddError(diagnostics.NewError(
			diagnostics.CodeParseError, p.curToken,
			"could not parse %q as float", p.curToken.Lexeme,
		))
		return nil
	}
	return &ast.FloatLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	var value rune
	for _, r := range p.curToken.Literal {
		value = r
		break
	}
	return &ast.CharLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(PREFIX)
	if right == nil {
		return nil
	}
	return &ast.PrefixExpression{Token: tok, Operator: tok.Lexeme, Right: right}
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	precedence := precedences[tok.Type]
	if rightAssoc[tok.Type] {
		precedence--
	}
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &ast.InfixExpression{Token: tok, Operator: tok.Lexeme, Left: left, Right: right}
}

// parseGroupedExpression handles both (expr) and tuple literals.
func (p *Parser) parseGroupedExpression() ast.Expression {
	lparen := p.curToken
	p.nextToken()
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	if !p.peekTokenIs(token.COMMA) {
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return first
	}

	elements := []ast.Expression{first}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		el := p.parseExpression(LOWEST)
		if el == nil {
			return nil
		}
		elements = append(elements, el)
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.TupleLiteral{Token: lparen, Elements: elements, EndTok: p.curToken}
}

func (p *Parser) parseListLiteral() ast.Expression {
	lbracket := p.curToken
	var elements []ast.Expression
	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		return &ast.ListLiteral{Token: lbracket, EndTok: p.curToken}
	}
	p.nextToken()
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	elements = append(elements, first)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		el := p.parseExpression(LOWEST)
		if el == nil {
			return nil
		}
		elements = append(elements, el)
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.ListLiteral{Token: lbracket, Elements: elements, EndTok: p.curToken}
}

// { x: 1, y: 2 }
func (p *Parser) parseRecordLiteral() ast.Expression {
	lbrace := p.curToken
	var fields []*ast.RecordField
	for !p.peekTokenIs(token.RBRACE) {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		fields = append(fields, &ast.RecordField{Name: name, Value: value})
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.RecordLiteral{Token: lbrace, Fields: fields, EndTok: p.curToken}
}

// fn(p1, p2) { body }
func (p *Parser) parseLambdaExpression() ast.Expression {
	fnTok := p.curToken
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
	return &ast.LambdaExpression{Token: fnTok, Params: params, Body: body, EndTok: p.curToken}
}

// let { d1; d2 } in body
func (p *Parser) parseLetExpression() ast.Expression {
	letTok := p.curToken
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	var decls []*ast.LetDeclaration
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if p.curTokenIs(token.SEMICOLON) {
			continue
		}
		decl := p.parseLetDeclaration()
		if decl == nil {
			return nil
		}
		decls = append(decls, decl)
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	if body == nil {
		return nil
	}
	return &ast.LetExpression{Token: letTok, Declarations: decls, Body: body}
}

// match expr { pat -> expr; pat -> expr }
func (p *Parser) parseMatchExpression() ast.Expression {
	matchTok := p.curToken
	p.nextToken()
	scrutinee := p.parseExpression(LOWEST)
	if scrutinee == nil {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	var arms []*ast.MatchArm
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if p.curTokenIs(token.SEMICOLON) {
			continue
		}
		pat := p.parsePattern()
		if pat == nil {
			return nil
		}
		if !p.expectPeek(token.ARROW) {
			return nil
		}
		p.nextToken()
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		arms = append(arms, &ast.MatchArm{Pattern: pat, Expression: expr})
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.MatchExpression{Token: matchTok, Expression: scrutinee, Arms: arms, EndTok: p.curToken}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	lparen := p.curToken
	var args []ast.Expression
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return &ast.CallExpression{Token: lparen, Callee: callee, EndTok: p.curToken}
	}
	p.nextToken()
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	args = append(args, first)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.CallExpression{Token: lparen, Callee: callee, Arguments: args, EndTok: p.curToken}
}

func (p *Parser) parseAccessExpression(base ast.Expression) ast.Expression {
	dotTok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	field := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	return &ast.AccessExpression{Token: dotTok, Base: base, Field: field}
}
