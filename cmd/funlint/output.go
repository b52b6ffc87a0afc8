package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/funlint/internal/diagnostics"
)

// useColor decides colored output from the config mode and the terminal.
func useColor(mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

type printer struct {
	w       io.Writer
	code    *color.Color
	message *color.Color
	details *color.Color
	fixable *color.Color
}

func newPrinter(w io.Writer, colored bool) *printer {
	p := &printer{
		w:       w,
		code:    color.New(color.FgRed, color.Bold),
		message: color.New(color.Bold),
		details: color.New(color.Faint),
		fixable: color.New(color.FgCyan),
	}
	if !colored {
		p.code.DisableColor()
		p.message.DisableColor()
		p.details.DisableColor()
		p.fixable.DisableColor()
	}
	return p
}

func (p *printer) printDiagnostic(d *diagnostics.Diagnostic) {
	fmt.Fprintf(p.w, "%s:%s: %s: %s\n",
		d.File, d.Range.Start,
		p.code.Sprint(string(d.Code)),
		p.message.Sprint(d.Message),
	)
	if d.Details != "" {
		fmt.Fprintf(p.w, "    %s\n", p.details.Sprint(d.Details))
	}
	if d.Fix != nil {
		fmt.Fprintf(p.w, "    %s\n", p.fixable.Sprintf("fix: replace with `%s`", d.Fix.Replacement))
	}
}

func (p *printer) printSummary(findings, files int) {
	if findings == 0 {
		fmt.Fprintf(p.w, "%d file(s) checked, no problems found\n", files)
		return
	}
	fmt.Fprintf(p.w, "%d file(s) checked, %d problem(s) found\n", files, findings)
}
