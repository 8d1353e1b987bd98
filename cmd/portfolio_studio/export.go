package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-studio/internal/export"
	"github.com/jonathan/portfolio-studio/internal/synthesis"
)

var exportCommand = &cobra.Command{
	Use:   "export",
	Short: "Export a portfolio to PDF (requires Chrome/Chromium)",
	RunE:  runExportCmd,
}

var (
	exportEmail    string
	exportTemplate string
	exportPreview  bool
	exportAll      bool
	exportOutput   string
)

func init() {
	exportCommand.Flags().StringVar(&exportEmail, "email", "", "Email of the stored profile to export")
	exportCommand.Flags().StringVarP(&exportTemplate, "template", "t", synthesis.TemplateModern, "Portfolio template id")
	exportCommand.Flags().BoolVar(&exportPreview, "preview", false, "Export sample data instead of a stored profile")
	exportCommand.Flags().BoolVar(&exportAll, "all", false, "Export every template (output is a directory)")
	exportCommand.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file, or directory with --all")

	rootCmd.AddCommand(exportCommand)
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	data, err := resolveTemplateData(cmd, exportEmail, exportTemplate, exportPreview)
	if err != nil {
		return err
	}

	if exportAll {
		outDir := exportOutput
		if outDir == "" {
			outDir = "."
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		pdfs, err := export.All(cmd.Context(), data)
		if err != nil {
			return err
		}
		for id, pdf := range pdfs {
			path := filepath.Join(outDir, "portfolio-"+id+".pdf")
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Printf("Wrote %s\n", path)
		}
		return nil
	}

	pdf, err := export.ToPDF(cmd.Context(), exportTemplate, data)
	if err != nil {
		return err
	}

	out := exportOutput
	if out == "" {
		out = "portfolio-" + exportTemplate + ".pdf"
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}
