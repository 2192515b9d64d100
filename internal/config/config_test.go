package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"store_path": "resumes.json",
		"output_dir": "/tmp",
		"pdf_template": "tech",
		"server_addr": ":9090"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "resumes.json", cfg.StorePath)
	assert.Equal(t, "/tmp", cfg.OutputDir)
	assert.Equal(t, "tech", cfg.PDFTemplate)
	assert.Equal(t, ":9090", cfg.ServerAddr)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parse config JSON")
}

func TestValidate_UnknownPDFTemplate(t *testing.T) {
	cfg := &Config{PDFTemplate: "brutalist"}
	assert.ErrorContains(t, cfg.Validate(), "brutalist")
}

func TestValidate_UnknownLaTeXTemplate(t *testing.T) {
	cfg := &Config{LaTeXTemplate: "executive"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_OutputDirIsFile(t *testing.T) {
	path := writeConfig(t, `{}`)
	cfg := &Config{OutputDir: path}
	assert.ErrorContains(t, cfg.Validate(), "not a directory")
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := &Config{PDFTemplate: "creative"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "creative", merged.PDFTemplate)
	assert.Equal(t, "bayform.json", merged.StorePath)
	assert.Equal(t, "modern", merged.LaTeXTemplate)
	assert.Equal(t, ":8080", merged.ServerAddr)
}

func TestMergeWithDefaults_KeepsSetFields(t *testing.T) {
	cfg := &Config{StorePath: "custom.json", ServerAddr: ":7000"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "custom.json", merged.StorePath)
	assert.Equal(t, ":7000", merged.ServerAddr)
}
