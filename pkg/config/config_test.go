package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirWithEnvFile puts the test in a fresh directory holding an empty .env,
// matching the deployment layout Load expects.
func chdirWithEnvFile(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("# test\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdirWithEnvFile(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "I.E. San Martín de Porres", cfg.School.Name)
	assert.Equal(t, 2025, cfg.School.AcademicYear)
	assert.Equal(t, "./data/portal.json", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "./exports", cfg.Exports.Dir)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirWithEnvFile(t)
	t.Setenv("SCHOOL_NAME", "I.E. Mariscal Cáceres")
	t.Setenv("SCHOOL_ACADEMIC_YEAR", "2026")
	t.Setenv("STORE_PATH", "/var/lib/portal/portal.json")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "I.E. Mariscal Cáceres", cfg.School.Name)
	assert.Equal(t, 2026, cfg.School.AcademicYear)
	assert.Equal(t, "/var/lib/portal/portal.json", cfg.Store.Path)
	assert.Equal(t, "console", cfg.Log.Format)
}
