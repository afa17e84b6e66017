package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, ".", cfg.Browser.Root)
	assert.False(t, cfg.Browser.ShowHidden)
	assert.Equal(t, 3, cfg.Display.PlaceholderRows)
	assert.Equal(t, 1500, cfg.FakeSource.DelayMS)
	assert.Equal(t, "default", cfg.Theme.Name)
	assert.NotEmpty(t, cfg.Theme.Folder)
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Browser.Root)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
browser:
  root: /tmp/stuff
  show_hidden: true
  ignore:
    - "*.bak"
display:
  placeholder_rows: 5
fake_source:
  delay_ms: 200
theme:
  name: dark
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/stuff", cfg.Browser.Root)
	assert.True(t, cfg.Browser.ShowHidden)
	assert.Equal(t, []string{"*.bak"}, cfg.Browser.Ignore)
	assert.Equal(t, 5, cfg.Display.PlaceholderRows)
	assert.Equal(t, 200, cfg.FakeSource.DelayMS)
	assert.Equal(t, "dark", cfg.Theme.Name)
	// Unset display fields keep defaults
	assert.Equal(t, 700, cfg.Display.Width)
}

func TestLoadConfigFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("browser: ["), 0644))

	_, err := LoadConfigFile(path)
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := New()
	cfg.Browser.Root = "/data"
	cfg.Display.PlaceholderRows = 2
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/data", loaded.Browser.Root)
	assert.Equal(t, 2, loaded.Display.PlaceholderRows)
}

func TestApplyThemeUnknownFallsBack(t *testing.T) {
	cfg := New()
	cfg.ApplyTheme("neon")
	assert.Equal(t, "default", cfg.Theme.Name)
	assert.Contains(t, ListThemes(), "dark")
}
