package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/funvibe/funlint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "funlint",
	Short: "Linter for fx source files",
	Long:  "funlint finds unused destructuring bindings in fx source files and can rewrite the patterns to their minimal form.",
}

// hadFindings is set by subcommands when at least one problem was
// reported, so the process can exit non-zero after cobra unwinds.
var hadFindings bool

func main() {
	rootCmd.Version = version.Version
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to funlint.yaml (default: discovered upwards from cwd)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show (0 = from config)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	if hadFindings {
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the funlint version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("funlint", version.Version)
	},
}
