package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/funvibe/funlint/internal/config"
	"github.com/funvibe/funlint/internal/diagnostics"
	"github.com/funvibe/funlint/internal/lexer"
	"github.com/funvibe/funlint/internal/lint"
	"github.com/funvibe/funlint/internal/parser"
	"github.com/funvibe/funlint/internal/pipeline"
)

// loadConfig resolves the configuration: an explicit --config path, or
// discovery upwards from the working directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, err
	}
	var cfg *config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cwd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, wdErr
		}
		cfg, err = config.Discover(cwd)
	}
	if err != nil {
		return nil, err
	}

	if override, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err == nil && override > 0 {
		cfg.MaxDiagnostics = override
	}
	if override, err := cmd.Root().PersistentFlags().GetString("color"); err == nil && override != "" {
		cfg.Color = override
	}
	return cfg, nil
}

// collectFiles expands the argument list into source files, walking
// directories recursively.
func collectFiles(args []string, cfg *config.Config) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && cfg.IsSourceFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no source files found")
	}
	return files, nil
}

// runFile pushes one file through lex, parse and lint.
func runFile(path string) (*pipeline.Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return runSource(path, string(data))
}

func runSource(path, source string) (*pipeline.Context, error) {
	p := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		&lint.Processor{},
	)
	return p.Run(pipeline.NewContext(path, source)), nil
}

// filterDiagnostics drops findings whose code is disabled and caps the
// total count.
func filterDiagnostics(diags []*diagnostics.Diagnostic, cfg *config.Config, shown *int) []*diagnostics.Diagnostic {
	var out []*diagnostics.Diagnostic
	for _, d := range diags {
		if !cfg.CodeEnabled(string(d.Code)) {
			continue
		}
		if cfg.MaxDiagnostics > 0 && *shown >= cfg.MaxDiagnostics {
			break
		}
		*shown++
		out = append(out, d)
	}
	return out
}
