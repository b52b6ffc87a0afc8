package diagnostics

import (
	"fmt"

	"github.com/funvibe/funlint/internal/token"
)

// Syntax error codes. Lexing and parsing failures share the Diagnostic
// shape so every surface (CLI, LSP) renders them uniformly; they simply
// never carry a fix.
const (
	CodeLexError   Code = "L001"
	CodeParseError Code = "P001"
)

// NewError builds a syntax diagnostic at the given token.
func NewError(code Code, tok token.Token, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Range:   tok.Range(),
	}
}

// IsSyntax reports whether the diagnostic is a lex or parse failure
// rather than a lint finding.
func (d *Diagnostic) IsSyntax() bool {
	return d.Code == CodeLexError || d.Code == CodeParseError
}
