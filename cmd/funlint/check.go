package main

import (
	"os"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.fx|directory>...",
	Short: "Report unused destructuring bindings",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	files, err := collectFiles(args, cfg)
	if err != nil {
		return err
	}

	out := newPrinter(os.Stdout, useColor(cfg.Color))
	shown := 0
	findings := 0
	for _, file := range files {
		ctx, err := runFile(file)
		if err != nil {
			return err
		}
		for _, d := range filterDiagnostics(ctx.Errors, cfg, &shown) {
			out.printDiagnostic(d)
			findings++
		}
		for _, d := range filterDiagnostics(ctx.Diagnostics, cfg, &shown) {
			out.printDiagnostic(d)
			findings++
		}
	}
	out.printSummary(findings, len(files))
	if findings > 0 {
		hadFindings = true
	}
	return nil
}
