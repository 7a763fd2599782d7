package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	out, _, err := runCLI(t, "config", "path")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "lvenv", "config.toml"), strings.TrimSpace(out))
}

func TestConfigPathHonorsFlag(t *testing.T) {
	isolateConfig(t)

	out, _, err := runCLI(t, "--config", "/etc/lvenv.toml", "config", "path")
	require.NoError(t, err)
	require.Equal(t, "/etc/lvenv.toml", strings.TrimSpace(out))
}

func TestConfigInitSetShow(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "lvenv", "config.toml")

	out, _, err := runCLI(t, "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote default config to "+path)

	out, _, err = runCLI(t, "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, "Config already exists at "+path)

	_, _, err = runCLI(t, "config", "set", "python.interpreter", "python2.7")
	require.NoError(t, err)
	_, _, err = runCLI(t, "config", "set", "create.diff_lines", "7")
	require.NoError(t, err)

	out, _, err = runCLI(t, "config", "show")
	require.NoError(t, err)
	require.Regexp(t, `interpreter = ['"]python2\.7['"]`, out)
	require.Contains(t, out, "diff_lines = 7")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "python2.7")
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	isolateConfig(t)

	_, _, err := runCLI(t, "config", "set", "python.version", "2.7")
	require.ErrorContains(t, err, "unknown config key")
}
