package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPath_ExplicitWins(t *testing.T) {
	assert.Equal(t, "/some/path.yaml", resolveConfigPath("/some/path.yaml"))
}

func TestResolveConfigPath_XDGCandidate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	// No file yet: no candidate.
	assert.Equal(t, "", resolveConfigPath(""))

	cfgDir := filepath.Join(dir, "rosterview")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	cfgPath := filepath.Join(cfgDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("defaults:\n  sort: activity\n"), 0o644))

	assert.Equal(t, cfgPath, resolveConfigPath(""))
}

func TestLoadMergedConfig_DefaultsOnly(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadMergedConfig("")
	require.NoError(t, err)
	assert.Len(t, cfg.Sections, 3)
	assert.Equal(t, "dark", cfg.Theme.Default)
}

func TestLoadMergedConfig_UserOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  default: light\ndefaults:\n  matcher: fuzzy\n"), 0o644))

	cfg, err := loadMergedConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme.Default)
	assert.Equal(t, "fuzzy", cfg.Defaults.Matcher)
	assert.Equal(t, "name", cfg.Defaults.Sort, "unset fields keep embedded defaults")
}

func TestLoadMergedConfig_MissingExplicitFileFails(t *testing.T) {
	_, err := loadMergedConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadMergedConfig_BadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sections: ["), 0o644))

	_, err := loadMergedConfig(path)
	assert.Error(t, err)
}
