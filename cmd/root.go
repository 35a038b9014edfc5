// Package cmd implements the CLI commands for docforge using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docforge",
	Short: "docforge — convert styled HTML résumés and cover letters into documents",
	Long: `docforge converts the styled HTML résumé and cover-letter templates into
visually equivalent Word documents, with PDF and Markdown outputs available.

Usage:
  docforge resume [input.html] [output.docx]
  docforge letter [input.html] [output.docx]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
