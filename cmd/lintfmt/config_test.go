package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintfmt/lintfmt/internal/lintfmt"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".lintfmt.yaml")
	configContent := `
verbose: true
color: true

render:
  findings:
    - "reports/**/*.json"
  output: out/report.txt
  format: plain
  level: errors
  max-messages: 5
  summary: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.True(t, k.Bool("color"))
	assert.Equal(t, []string{"reports/**/*.json"}, k.Strings("render.findings"))
	assert.Equal(t, "out/report.txt", k.String("render.output"))
	assert.Equal(t, "plain", k.String("render.format"))
	assert.Equal(t, "errors", k.String("render.level"))
	assert.Equal(t, 5, k.Int("render.max-messages"))
	assert.True(t, k.Bool("render.summary"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.lintfmt.yaml"))

	cfg := buildRunConfig(nil)
	assert.Equal(t, []string{"findings.json"}, cfg.Patterns)
	assert.Equal(t, "", cfg.Output)
	assert.Equal(t, lintfmt.LevelAll, cfg.Level)
	assert.Equal(t, 0, cfg.MaxOccurrences)
	assert.False(t, cfg.ShowSummary)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".lintfmt.yaml")
	configContent := `
render:
  level: all
  summary: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("LINTFMT_RENDER_LEVEL", "errors")
	t.Setenv("LINTFMT_RENDER_SUMMARY", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "errors", k.String("render.level"))
	assert.True(t, k.Bool("render.summary"))
}

func TestBuildRunConfig_ArgsWinOverConfiguredFindings(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".lintfmt.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
render:
  findings:
    - "configured.json"
`), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	cfg := buildRunConfig([]string{"explicit.json"})
	assert.Equal(t, []string{"explicit.json"}, cfg.Patterns)

	cfg = buildRunConfig(nil)
	assert.Equal(t, []string{"configured.json"}, cfg.Patterns)
}

func TestBuildRunConfig_ExplicitFormat(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".lintfmt.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
render:
  format: json
`), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	cfg := buildRunConfig(nil)
	assert.Equal(t, lintfmt.FormatJSON, cfg.Format)
}
