package compile

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CompileLocal compiles LaTeX source with a locally installed pdflatex and
// returns the PDF bytes. It is the offline alternative to the remote client;
// callers should prefer it when a TeX distribution is available.
func CompileLocal(ctx context.Context, source string) ([]byte, error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return nil, &CompilationError{
			Message: "pdflatex not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)",
			Cause:   err,
		}
	}

	workDir, err := os.MkdirTemp("", "bayform-compile-*")
	if err != nil {
		return nil, &CompilationError{Message: "failed to create temporary working directory", Cause: err}
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	texPath := filepath.Join(workDir, "resume.tex")
	if err := os.WriteFile(texPath, []byte(source), 0644); err != nil {
		return nil, &CompilationError{Message: "failed to write LaTeX source", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, CompilationTimeout)
	defer cancel()

	// -interaction=nonstopmode prevents interactive prompts on errors.
	cmd := exec.CommandContext(ctx, "pdflatex", "-interaction=nonstopmode", "-output-directory", workDir, texPath)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()
	logOutput := stdout.String() + stderr.String()

	pdfPath := filepath.Join(workDir, "resume.pdf")
	pdf, readErr := os.ReadFile(pdfPath)
	if readErr != nil {
		return nil, &CompilationError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	// pdflatex can emit a usable PDF while still exiting non-zero; treat an
	// existing PDF as success and surface warnings through the log only.
	return pdf, nil
}
