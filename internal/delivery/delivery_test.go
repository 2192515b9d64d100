package delivery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c7harry/bayform/internal/types"
)

func TestTexFilename(t *testing.T) {
	assert.Equal(t, "Jane_Doe_Resume_Modern.tex", TexFilename("Jane Doe", types.LaTeXModern))
}

func TestTexFilename_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "Jane_van_Doe_Resume_Classic.tex", TexFilename("  Jane  van Doe ", types.LaTeXClassic))
}

func TestPDFFilename(t *testing.T) {
	assert.Equal(t, "Jane_Doe_Resume_Executive.pdf", PDFFilename("Jane Doe", types.PDFExecutive))
}

func TestWriteTex(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteTex(dir, "Jane Doe", types.LaTeXMinimal, `\documentclass{article}`)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Jane_Doe_Resume_Minimal.tex"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `\documentclass{article}`, string(content))
}

func TestWritePDF(t *testing.T) {
	dir := t.TempDir()
	path, err := WritePDF(dir, "Jane Doe", types.PDFTech, []byte("%PDF-1.4"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Jane_Doe_Resume_Tech.pdf"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))
}

func TestWriteTex_BadDirectory(t *testing.T) {
	_, err := WriteTex("/nonexistent/dir", "Jane", types.LaTeXModern, "x")
	assert.Error(t, err)
}
