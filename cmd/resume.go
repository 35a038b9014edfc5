// Package cmd — resume command.
// Runs the résumé pipeline: load → extract → render → write.
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

var resumeCmd = &cobra.Command{
	Use:   "resume [input.html] [output.docx]",
	Short: "Convert a résumé HTML file to a styled document",
	Long: `Resume reads a class-tagged résumé HTML file, extracts its structured
content, and renders a visually equivalent document.

Examples:
  docforge resume
  docforge resume resume.html resume.docx
  docforge resume resume.html --pdf
  docforge resume --markdown --output_dir ./out`,
	Args: cobra.MaximumNArgs(2),
	RunE: runResume,
}

func init() {
	rootCmd.AddCommand(resumeCmd)
	addOutputFlags(resumeCmd)
}

func runResume(cmd *cobra.Command, args []string) error {
	format, err := selectFormat()
	if err != nil {
		return err
	}

	th, err := loadTheme()
	if err != nil {
		return err
	}

	var renderer core.ResumeRenderer
	switch format {
	case formatPDF:
		renderer = render.NewResumePDF(th)
	case formatMarkdown:
		renderer = render.NewResumeMarkdown(normalize.New())
	default:
		renderer = render.NewResumeDOCX(th)
	}

	src, err := input.New().Load(resolveInputPath(args, "resume.html"))
	if err != nil {
		return err
	}

	rec, err := extract.NewResume().Extract(src.HTML)
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

	path, err := writer.Write(resolveOutputName(args, "resume", renderer.Extension()), data)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Generated %s\n", path)
	return nil
}
