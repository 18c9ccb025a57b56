package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/simplelogin/internal/config"
	"github.com/rileyhilliard/simplelogin/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	output, err := runRoot(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, output, "Created "+config.ConfigFileName)

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(config.ConfigFileName, []byte("app_name: Mine\n"), 0o644))

	_, err := runRoot(t, "config", "init")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "--force")

	data, err := os.ReadFile(config.ConfigFileName)
	require.NoError(t, err)
	assert.Equal(t, "app_name: Mine\n", string(data), "existing file is untouched")

	_, err = runRoot(t, "config", "init", "--force")
	require.NoError(t, err)

	cfg, err := config.Load(config.ConfigFileName)
	require.NoError(t, err)
	assert.Equal(t, "SimpleLogin", cfg.AppName)
}

func TestConfigInitExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "login.yaml")

	output, err := runRoot(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, output, path)
	assert.FileExists(t, path)
}

func TestConfigShow(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())

		output, err := runRoot(t, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, output, "# source: built-in defaults")
		assert.Contains(t, output, "app_name: SimpleLogin")
	})

	t.Run("file and environment", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("HOME", t.TempDir())
		t.Setenv("SIMPLELOGIN_TAGLINE", "From the environment")
		require.NoError(t, os.WriteFile(config.ConfigFileName, []byte("app_name: Acme\n"), 0o644))

		output, err := runRoot(t, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, output, "# source: ")
		assert.Contains(t, output, config.ConfigFileName)
		assert.Contains(t, output, "app_name: Acme")
		assert.Contains(t, output, "tagline: From the environment")
	})

	t.Run("invalid pattern", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())
		require.NoError(t, os.WriteFile(config.ConfigFileName, []byte("username:\n  label: User\n  pattern: \"[a-\"\n"), 0o644))

		_, err := runRoot(t, "config", "show")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})
}
