package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c7harry/bayform/internal/delivery"
	"github.com/c7harry/bayform/internal/rendering"
	"github.com/c7harry/bayform/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render <resume-id>",
	Short: "Render a stored resume into one output format",
	Long:  "Renders a stored resume into LaTeX source, a PDF file or a terminal preview using the selected template.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var (
	renderFormat    string
	renderTemplate  string
	renderClipboard bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "pdf", "Output format: latex, pdf or preview")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template name (defaults from config)")
	renderCmd.Flags().BoolVar(&renderClipboard, "clipboard", false, "Copy LaTeX source to the clipboard instead of writing a file")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	format := rendering.Format(renderFormat)
	if !format.Valid() {
		return fmt.Errorf("unknown format %q (expected latex, pdf or preview)", renderFormat)
	}
	if renderClipboard && format != rendering.FormatLaTeX {
		return fmt.Errorf("--clipboard only applies to the latex format")
	}

	template := renderTemplate
	if template == "" {
		if format == rendering.FormatLaTeX {
			template = cfg.LaTeXTemplate
		} else {
			template = cfg.PDFTemplate
		}
	}

	ctx := cmd.Context()
	repo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = repo.Close() }()

	doc, err := lookupResume(ctx, repo, args[0])
	if err != nil {
		return err
	}

	out, err := rendering.Render(*doc, rendering.Request{Format: format, Template: template})
	if err != nil {
		return err
	}

	switch format {
	case rendering.FormatLaTeX:
		if renderClipboard {
			if err := delivery.CopyToClipboard(out.LaTeX); err != nil {
				return err
			}
			logger.Info("LaTeX source copied to clipboard")
			return nil
		}
		tmpl, _ := types.ParseLaTeXTemplate(template)
		path, err := delivery.WriteTex(cfg.OutputDir, doc.PersonalInfo.FullName, tmpl, out.LaTeX)
		if err != nil {
			return err
		}
		logger.Info("wrote LaTeX source", "path", path)

	case rendering.FormatPDF:
		tmpl, _ := types.ParsePDFTemplate(template)
		path, err := delivery.WritePDF(cfg.OutputDir, doc.PersonalInfo.FullName, tmpl, out.PDF)
		if err != nil {
			return err
		}
		logger.Info("wrote PDF", "path", path)

	case rendering.FormatPreview:
		fmt.Fprintln(cmd.OutOrStdout(), out.Preview)
	}

	return nil
}
