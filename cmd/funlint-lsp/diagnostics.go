package main

import (
	"github.com/funvibe/funlint/internal/diagnostics"
	"github.com/funvibe/funlint/internal/lexer"
	"github.com/funvibe/funlint/internal/lint"
	"github.com/funvibe/funlint/internal/parser"
	"github.com/funvibe/funlint/internal/pipeline"
	"github.com/funvibe/funlint/internal/token"
)

// fileDiagnostic pairs a published diagnostic with the fix it came from,
// so code action requests can offer the edit.
type fileDiagnostic struct {
	lsp Diagnostic
	fix *diagnostics.Fix
}

func analyze(uri, content string) []fileDiagnostic {
	p := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		&lint.Processor{},
	)
	ctx := p.Run(pipeline.NewContext(uri, content))

	var findings []fileDiagnostic
	for _, d := range ctx.Errors {
		findings = append(findings, fileDiagnostic{lsp: convertDiagnostic(d, SeverityError)})
	}
	for _, d := range ctx.Diagnostics {
		findings = append(findings, fileDiagnostic{
			lsp: convertDiagnostic(d, SeverityWarning),
			fix: d.Fix,
		})
	}
	return findings
}

func convertDiagnostic(d *diagnostics.Diagnostic, severity int) Diagnostic {
	msg := d.Message
	if d.Details != "" {
		msg += "\n" + d.Details
	}
	return Diagnostic{
		Range:    convertRange(d.Range),
		Severity: severity,
		Code:     string(d.Code),
		Source:   "funlint",
		Message:  msg,
	}
}

// convertRange translates 1-based lexer positions to 0-based LSP
// positions.
func convertRange(r token.Range) Range {
	return Range{
		Start: Position{Line: r.Start.Line - 1, Character: r.Start.Column - 1},
		End:   Position{Line: r.End.Line - 1, Character: r.End.Column - 1},
	}
}

func (s *LanguageServer) publishDiagnostics(uri string) error {
	doc, ok := s.document(uri)
	if !ok {
		return nil
	}
	findings := analyze(uri, doc.Content)

	s.mu.Lock()
	if current, ok := s.documents[uri]; ok {
		current.Findings = findings
	}
	s.mu.Unlock()

	published := make([]Diagnostic, 0, len(findings))
	for _, f := range findings {
		published = append(published, f.lsp)
	}
	return s.sendNotification("textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: published,
	})
}

// codeActions returns quick fixes whose diagnostics intersect the
// requested range.
func (s *LanguageServer) codeActions(params CodeActionParams) []CodeAction {
	uri := params.TextDocument.URI
	doc, ok := s.document(uri)
	if !ok {
		return []CodeAction{}
	}

	actions := []CodeAction{}
	for _, f := range doc.Findings {
		if f.fix == nil {
			continue
		}
		if !rangesOverlap(f.lsp.Range, params.Range) {
			continue
		}
		actions = append(actions, CodeAction{
			Title: f.lsp.Code + ": " + actionTitle(f.fix),
			Kind:  "quickfix",
			Edit: &WorkspaceEdit{
				Changes: map[string][]TextEdit{
					uri: {{
						Range:   convertRange(f.fix.Range),
						NewText: f.fix.Replacement,
					}},
				},
			},
		})
	}
	return actions
}

func actionTitle(fix *diagnostics.Fix) string {
	if fix.Replacement == "_" {
		return "replace with `_`"
	}
	return "replace with `" + fix.Replacement + "`"
}

func rangesOverlap(a, b Range) bool {
	if positionBefore(a.End, b.Start) {
		return false
	}
	if positionBefore(b.End, a.Start) {
		return false
	}
	return true
}

func positionBefore(p, q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Character < q.Character
}
