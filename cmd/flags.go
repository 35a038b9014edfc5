// Package cmd — shared output flags and selection helpers.
// Both subcommands take the same format/theme/output flags; exactly one
// output format is active per run, DOCX by default.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattbfit/docforge/core/theme"
)

// Flag variables shared by the resume and letter commands.
var (
	flagDOCX      bool
	flagPDF       bool
	flagMarkdown  bool
	flagTheme     string
	flagOutputDir string
)

// outputFormat enumerates the selectable renderers.
type outputFormat int

const (
	formatDOCX outputFormat = iota
	formatPDF
	formatMarkdown
)

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagDOCX, "docx", false, "Output DOCX (default)")
	cmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	cmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output a Markdown preview")
	cmd.Flags().StringVar(&flagTheme, "theme", "", "YAML theme file overriding the built-in palette")
	cmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

// selectFormat checks the format flags are mutually exclusive and picks one.
func selectFormat() (outputFormat, error) {
	count := 0
	if flagDOCX {
		count++
	}
	if flagPDF {
		count++
	}
	if flagMarkdown {
		count++
	}
	if count > 1 {
		return formatDOCX, fmt.Errorf("only one output format allowed per run (got %d)", count)
	}

	switch {
	case flagPDF:
		return formatPDF, nil
	case flagMarkdown:
		return formatMarkdown, nil
	default:
		return formatDOCX, nil
	}
}

// loadTheme returns the built-in theme, or the flag-selected override file.
func loadTheme() (theme.Theme, error) {
	if flagTheme == "" {
		return theme.Default(), nil
	}
	return theme.Load(flagTheme)
}

// resolveInputPath returns the first positional arg or the default.
func resolveInputPath(args []string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fallback
}

// resolveOutputName returns the second positional arg verbatim, or the
// default base name with the selected renderer's extension.
func resolveOutputName(args []string, base, ext string) string {
	if len(args) > 1 {
		return args[1]
	}
	return base + ext
}
