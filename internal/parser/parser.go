package parser

import (
	"github.com/funvibe/funlint/internal/ast"
	"github.com/funvibe/funlint/internal/diagnostics"
	"github.com/funvibe/funlint/internal/pipeline"
	"github.com/funvibe/funlint/internal/token"
)

// MaxRecursionDepth bounds expression nesting to keep malformed input from
// blowing the stack.
const MaxRecursionDepth = 500

// Operator precedence levels.
const (
	LOWEST int = iota
	PIPELINE      // |>
	EQUALS        // == !=
	LESSGREATER   // < > <= >=
	CONSPREC      // ::
	SUM           // + - ++
	PRODUCT       // * /
	PREFIX        // -x !x
	CALL          // f(x)
	ACCESS        // r.field
)

var precedences = map[token.TokenType]int{
	token.PIPE:    PIPELINE,
	token.EQ:      EQUALS,
	token.NOT_EQ:  EQUALS,
	token.LT:      LESSGREATER,
	token.GT:      LESSGREATER,
	token.LT_EQ:   LESSGREATER,
	token.GT_EQ:   LESSGREATER,
	token.CONS:    CONSPREC,
	token.PLUS:    SUM,
	token.MINUS:   SUM,
	token.CONCAT:  SUM,
	token.STAR:    PRODUCT,
	token.SLASH:   PRODUCT,
	token.LPAREN:  CALL,
	token.DOT:     ACCESS,
}

// rightAssoc operators parse their right operand at one level below their
// own precedence.
var rightAssoc = map[token.TokenType]bool{
	token.CONS: true,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	ctx   *pipeline.Context
	depth int

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(tokens []token.Token, ctx *pipeline.Context) *Parser {
	p := &Parser{tokens: tokens, ctx: ctx}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.IDENT_UPPER, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.CHAR, p.parseCharLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.LBRACKET, p.parseListLiteral)
	p.registerPrefix(token.LBRACE, p.parseRecordLiteral)
	p.registerPrefix(token.FN, p.parseLambdaExpression)
	p.registerPrefix(token.LET, p.parseLetExpression)
	p.registerPrefix(token.MATCH, p.parseMatchExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, t := range []token.TokenType{
		token.PIPE, token.EQ, token.NOT_EQ, token.LT, token.GT,
		token.LT_EQ, token.GT_EQ, token.CONS, token.PLUS, token.MINUS,
		token.CONCAT, token.STAR, token.SLASH,
	} {
		p.registerInfix(t, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.DOT, p.parseAccessExpression)

	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(t token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[t] = fn
}

func (p *Parser) registerInfix(t token.TokenType, fn infixParseFn) {
	p.infixParseFns[t] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	} else if len(p.tokens) > 0 {
		p.peekToken = p.tokens[len(p.tokens)-1] // EOF repeats
	}
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.ctx.AddError(diagnostics.NewError(
		diagnostics.CodeParseError, p.peekToken,
		"expected next token to be %s, got %s", t, p.peekToken.Type,
	))
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	p.ctx.AddError(diagnostics.NewError(
		diagnostics.CodeParseError, tok,
		"unexpected token %s in expression", tok.Type,
	))
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}
