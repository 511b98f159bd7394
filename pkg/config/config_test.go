package config

import (
	"os"
	"path/filepath"
	"testing"

	"riskcalc/pkg/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.RefdataFile)
	assert.Empty(t, cfg.File)
	assert.Equal(t, reports.DefaultTitle, cfg.Report.Title)
	assert.Equal(t, "Letter", cfg.Report.PageSize)
	assert.True(t, cfg.Report.Compress)
	assert.Empty(t, cfg.Report.FontDir)
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
report:
  title: Board Pack
  page_size: A4
  compress: false
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Board Pack", cfg.Report.Title)
	assert.Equal(t, "A4", cfg.Report.PageSize)
	assert.False(t, cfg.Report.Compress)
	assert.Equal(t, path, cfg.File)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("riskcalc.yaml", []byte("log_level: error\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.NotEmpty(t, cfg.File)
}

func TestLoadSearchesHomeConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	dir := filepath.Join(home, ".config", "riskcalc")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "riskcalc.yaml"), []byte("report:\n  font_dir: /usr/share/fonts\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/fonts", cfg.Report.FontDir)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("RISKCALC_LOG_LEVEL", "info")
	t.Setenv("RISKCALC_REPORT_PAGE_SIZE", "Legal")
	t.Setenv("RISKCALC_REPORT_COMPRESS", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Legal", cfg.Report.PageSize)
	assert.False(t, cfg.Report.Compress)
}

func TestTables(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	tables, err := cfg.Tables()
	require.NoError(t, err)
	assert.Contains(t, tables.SectorNames(), "Retail")

	cfg.RefdataFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.Tables()
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
