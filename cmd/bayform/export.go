package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/c7harry/bayform/internal/compile"
	"github.com/c7harry/bayform/internal/delivery"
	"github.com/c7harry/bayform/internal/rendering"
	"github.com/c7harry/bayform/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <resume-id>",
	Short: "Export a resume in every format at once",
	Long:  "Renders every LaTeX variant and every PDF variant of a stored resume concurrently and writes them to the output directory. Optionally compiles the LaTeX source to PDF through a compilation service.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var (
	exportCompile      bool
	exportCompileLocal bool
)

func init() {
	exportCmd.Flags().BoolVar(&exportCompile, "compile", false, "Also compile LaTeX variants to PDF via a remote compilation service")
	exportCmd.Flags().BoolVar(&exportCompileLocal, "compile-local", false, "Compile LaTeX variants with a local pdflatex instead of the remote service")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	if exportCompile && exportCompileLocal {
		return fmt.Errorf("--compile and --compile-local are mutually exclusive")
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

	// Renderers are pure, so each variant renders on its own goroutine.
	g, gctx := errgroup.WithContext(ctx)

	for _, tmpl := range types.LaTeXTemplates {
		g.Go(func() error {
			out, err := rendering.Render(*doc, rendering.Request{
				Format:   rendering.FormatLaTeX,
				Template: string(tmpl),
			})
			if err != nil {
				return err
			}

			path, err := delivery.WriteTex(cfg.OutputDir, doc.PersonalInfo.FullName, tmpl, out.LaTeX)
			if err != nil {
				return err
			}
			logger.Info("wrote LaTeX source", "template", tmpl, "path", path)

			if !exportCompile && !exportCompileLocal {
				return nil
			}

			var pdf []byte
			if exportCompileLocal {
				pdf, err = compile.CompileLocal(gctx, out.LaTeX)
			} else {
				pdf, err = compile.NewClient(compile.DefaultProviders).Compile(gctx, out.LaTeX)
			}
			if err != nil {
				return err
			}

			name := strings.TrimSuffix(delivery.TexFilename(doc.PersonalInfo.FullName, tmpl), ".tex")
			compiled := filepath.Join(cfg.OutputDir, "compiled_"+name+".pdf")
			if err := os.WriteFile(compiled, pdf, 0644); err != nil {
				return fmt.Errorf("failed to write compiled PDF: %w", err)
			}
			logger.Info("compiled LaTeX to PDF", "template", tmpl, "path", compiled)
			return nil
		})
	}

	for _, tmpl := range types.PDFTemplates {
		g.Go(func() error {
			out, err := rendering.Render(*doc, rendering.Request{
				Format:   rendering.FormatPDF,
				Template: string(tmpl),
			})
			if err != nil {
				return err
			}

			path, err := delivery.WritePDF(cfg.OutputDir, doc.PersonalInfo.FullName, tmpl, out.PDF)
			if err != nil {
				return err
			}
			logger.Info("wrote PDF", "template", tmpl, "path", path)
			return nil
		})
	}

	return g.Wait()
}
