package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/funvibe/funlint/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.fx|directory>...",
	Short: "Apply available fixes to source files",
	Long:  "Run the analysis, apply the proposed pattern rewrites, and repeat until nothing is left to fix.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "print the rewritten source instead of writing files")
}

// maxFixRounds bounds the fix/re-analyze loop. Overlapping fixes are
// applied across rounds; each round strictly reduces the pattern, so the
// loop terminates long before this.
const maxFixRounds = 10

func runFix(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	files, err := collectFiles(args, cfg)
	if err != nil {
		return err
	}

	for _, file := range files {
		applied, result, err := fixFile(file)
		if err != nil {
			return err
		}
		if applied == 0 {
			continue
		}
		if dryRun {
			fmt.Print(result)
			continue
		}
		if err := os.WriteFile(file, []byte(result), 0o644); err != nil {
			return err
		}
		fmt.Printf("%s: applied %d fix(es)\n", file, applied)
	}
	return nil
}

func fixFile(path string) (int, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, "", err
	}
	source := string(data)
	total := 0
	for round := 0; round < maxFixRounds; round++ {
		ctx, err := runSource(path, source)
		if err != nil {
			return total, source, err
		}
		if len(ctx.Errors) > 0 {
			// Never rewrite a file that does not parse.
			return total, source, fmt.Errorf("%s has syntax errors, not fixing", path)
		}
		next, applied := fix.Apply(source, fix.Collect(ctx.Diagnostics))
		if applied == 0 {
			break
		}
		source = next
		total += applied
	}
	return total, source, nil
}
