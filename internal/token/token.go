package token

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT       TokenType = "IDENT"       // lowercase: names, bindings
	IDENT_UPPER TokenType = "IDENT_UPPER" // uppercase: constructors, types
	INT         TokenType = "INT"
	FLOAT       TokenType = "FLOAT"
	STRING      TokenType = "STRING"
	CHAR        TokenType = "CHAR"
	TRUE        TokenType = "TRUE"
	FALSE       TokenType = "FALSE"

	// Operators
	ASSIGN TokenType = "="
	PLUS   TokenType = "+"
	MINUS  TokenType = "-"
	STAR   TokenType = "*"
	SLASH  TokenType = "/"
	CONCAT TokenType = "++"
	CONS   TokenType = "::"
	EQ     TokenType = "=="
	NOT_EQ TokenType = "!="
	LT     TokenType = "<"
	GT     TokenType = ">"
	LT_EQ  TokenType = "<="
	GT_EQ  TokenType = ">="
	ARROW  TokenType = "->"
	PIPE   TokenType = "|>"
	BANG   TokenType = "!"
	DOT    TokenType = "."

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	COLON     TokenType = ":"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"

	// Keywords
	FUN        TokenType = "FUN"
	FN         TokenType = "FN"
	LET        TokenType = "LET"
	IN         TokenType = "IN"
	MATCH      TokenType = "MATCH"
	AS         TokenType = "AS"
	UNDERSCORE TokenType = "UNDERSCORE"
)

var keywords = map[string]TokenType{
	"fun":   FUN,
	"fn":    FN,
	"let":   LET,
	"in":    IN,
	"match": MATCH,
	"as":    AS,
	"true":  TRUE,
	"false": FALSE,
	"_":     UNDERSCORE,
}

// LookupIdent returns the keyword type for an identifier, or IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Token is a single lexeme with its source location. Offset is the byte
// offset of the lexeme's first character in the file; fixes are textual
// range replacements and need byte-exact positions.
type Token struct {
	Type    TokenType
	Lexeme  string // raw source text of the token
	Literal string // decoded value for strings/chars, otherwise same as Lexeme
	Line    int    // 1-based
	Column  int    // 1-based, in runes
	Offset  int    // 0-based, in bytes
}

// Pos returns the position of the token's first character.
func (t Token) Pos() Position {
	return Position{Line: t.Line, Column: t.Column, Offset: t.Offset}
}

// End returns the position one past the token's last character.
// Lexemes never span lines.
func (t Token) End() Position {
	return Position{
		Line:   t.Line,
		Column: t.Column + len([]rune(t.Lexeme)),
		Offset: t.Offset + len(t.Lexeme),
	}
}

// Range returns the source range covered by the token.
func (t Token) Range() Range {
	return Range{Start: t.Pos(), End: t.End()}
}
