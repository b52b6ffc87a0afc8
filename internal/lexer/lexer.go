package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/funlint/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

// NextToken scans and returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	line, column, offset := l.line, l.column, l.position

	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF, Line: line, Column: column, Offset: offset}
	case '=':
		if l.peekChar() == '=' {
			return l.twoCharToken(token.EQ, "==")
		}
		return l.oneCharToken(token.ASSIGN)
	case '+':
		if l.peekChar() == '+' {
			return l.twoCharToken(token.CONCAT, "++")
		}
		return l.oneCharToken(token.PLUS)
	case '-':
		if l.peekChar() == '>' {
			return l.twoCharToken(token.ARROW, "->")
		}
		return l.oneCharToken(token.MINUS)
	case '*':
		return l.oneCharToken(token.STAR)
	case '/':
		return l.oneCharToken(token.SLASH)
	case '!':
		if l.peekChar() == '=' {
			return l.twoCharToken(token.NOT_EQ, "!=")
		}
		return l.oneCharToken(token.BANG)
	case '<':
		if l.peekChar() == '=' {
			return l.twoCharToken(token.LT_EQ, "<=")
		}
		return l.oneCharToken(token.LT)
	case '>':
		if l.peekChar() == '=' {
			return l.twoCharToken(token.GT_EQ, ">=")
		}
		return l.oneCharToken(token.GT)
	case '|':
		if l.peekChar() == '>' {
			return l.twoCharToken(token.PIPE, "|>")
		}
		return l.illegalToken()
	case ':':
		if l.peekChar() == ':' {
			return l.twoCharToken(token.CONS, "::")
		}
		return l.oneCharToken(token.COLON)
	case '.':
		return l.oneCharToken(token.DOT)
	case ',':
		return l.oneCharToken(token.COMMA)
	case ';':
		return l.oneCharToken(token.SEMICOLON)
	case '(':
		return l.oneCharToken(token.LPAREN)
	case ')':
		return l.oneCharToken(token.RPAREN)
	case '{':
		return l.oneCharToken(token.LBRACE)
	case '}':
		return l.oneCharToken(token.RBRACE)
	case '[':
		return l.oneCharToken(token.LBRACKET)
	case ']':
		return l.oneCharToken(token.RBRACKET)
	case '"':
		return l.readString()
	case '\'':
		return l.readChar2()
	}

	if isLetter(l.ch) {
		return l.readIdentifier()
	}
	if unicode.IsDigit(l.ch) {
		return l.readNumber()
	}
	return l.illegalToken()
}

func (l *Lexer) oneCharToken(t token.TokenType) token.Token {
	tok := token.Token{
		Type: t, Lexeme: string(l.ch), Literal: string(l.ch),
		Line: l.line, Column: l.column, Offset: l.position,
	}
	l.readChar()
	return tok
}

func (l *Lexer) twoCharToken(t token.TokenType, lexeme string) token.Token {
	tok := token.Token{
		Type: t, Lexeme: lexeme, Literal: lexeme,
		Line: l.line, Column: l.column, Offset: l.position,
	}
	l.readChar()
	l.readChar()
	return tok
}

func (l *Lexer) illegalToken() token.Token {
	tok := token.Token{
		Type: token.ILLEGAL, Lexeme: string(l.ch), Literal: string(l.ch),
		Line: l.line, Column: l.column, Offset: l.position,
	}
	l.readChar()
	return tok
}

func (l *Lexer) readIdentifier() token.Token {
	line, column, offset := l.line, l.column, l.position
	start := l.position
	first := l.ch
	for isLetter(l.ch) || unicode.IsDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]

	typ := token.LookupIdent(lexeme)
	if typ == token.IDENT && unicode.IsUpper(first) {
		typ = token.IDENT_UPPER
	}
	return token.Token{
		Type: typ, Lexeme: lexeme, Literal: lexeme,
		Line: line, Column: column, Offset: offset,
	}
}

func (l *Lexer) readNumber() token.Token {
	line, column, offset := l.line, l.column, l.position
	start := l.position
	typ := token.INT
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && unicode.IsDigit(l.peekChar()) {
		typ = token.FLOAT
		l.readChar()
		for unicode.IsDigit(l.ch) {
			l.readChar()
		}
	}
	lexeme := l.input[start:l.position]
	return token.Token{
		Type: typ, Lexeme: lexeme, Literal: lexeme,
		Line: line, Column: column, Offset: offset,
	}
}

func (l *Lexer) readString() token.Token {
	line, column, offset := l.line, l.column, l.position
	start := l.position
	var out []rune
	l.readChar() // consume opening quote
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case '\\':
				out = append(out, '\\')
			case '"':
				out = append(out, '"')
			default:
				out = append(out, l.ch)
			}
		} else {
			out = append(out, l.ch)
		}
		l.readChar()
	}
	typ := token.STRING
	if l.ch == 0 {
		typ = token.ILLEGAL // unterminated
	} else {
		l.readChar() // consume closing quote
	}
	return token.Token{
		Type: typ, Lexeme: l.input[start:l.position], Literal: string(out),
		Line: line, Column: column, Offset: offset,
	}
}

// readChar2 scans a character literal like 'a' or '\n'.
func (l *Lexer) readChar2() token.Token {
	line, column, offset := l.line, l.column, l.position
	start := l.position
	l.readChar() // consume opening quote
	var value rune
	if l.ch == '\\' {
		l.readChar()
		switch l.ch {
		case 'n':
			value = '\n'
		case 't':
			value = '\t'
		default:
			value = l.ch
		}
	} else {
		value = l.ch
	}
	l.readChar()
	typ := token.CHAR
	if l.ch != '\'' {
		typ = token.ILLEGAL
	} else {
		l.readChar() // consume closing quote
	}
	return token.Token{
		Type: typ, Lexeme: l.input[start:l.position], Literal: string(value),
		Line: line, Column: column, Offset: offset,
	}
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

// Tokenize scans the whole input, always ending with an EOF token.
func Tokenize(input string) []token.Token {
	l := New(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}
