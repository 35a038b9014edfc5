// Package cmd — letter command.
// Runs the cover-letter pipeline: load → extract → render → write.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattbfit/docforge/core"
	"github.com/mattbfit/docforge/core/extract"
	"github.com/mattbfit/docforge/core/input"
	"github.com/mattbfit/docforge/core/normalize"
	"github.com/mattbfit/docforge/core/output"
	"github.com/mattbfit/docforge/core/render"
)

var letterCmd = &cobra.Command{
	Use:   "letter [input.html] [output.docx]",
	Short: "Convert a cover-letter HTML file to a styled document",
	Long: `Letter reads a class-tagged cover-letter HTML file, extracts its
structured content, and renders a visually equivalent document.

Examples:
  docforge letter
  docforge letter coverletter.html coverletter.docx
  docforge letter coverletter.html --pdf`,
	Args: cobra.MaximumNArgs(2),
	RunE: runLetter,
}

func init() {
	rootCmd.AddCommand(letterCmd)
	addOutputFlags(letterCmd)
}

func runLetter(cmd *cobra.Command, args []string) error {
	format, err := selectFormat()
	if err != nil {
		return err
	}

	th, err := loadTheme()
	if err != nil {
		return err
	}

	var renderer core.LetterRenderer
	switch format {
	case formatPDF:
		renderer = render.NewLetterPDF(th)
	case formatMarkdown:
		renderer = render.NewLetterMarkdown(normalize.New())
	default:
		renderer = render.NewLetterDOCX(th)
	}

	src, err := input.New().Load(resolveInputPath(args, "coverletter.html"))
	if err != nil {
		return err
	}

	rec, err := extract.NewLetter().Extract(src.HTML)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	data, err := renderer.Render(rec)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	path, err := writer.Write(resolveOutputName(args, "coverletter", renderer.Extension()), data)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Generated %s\n", path)
	return nil
}
