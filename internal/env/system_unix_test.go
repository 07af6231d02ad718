//go:build !windows

package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useHome(t *testing.T, home string) {
	t.Helper()
	prev := homedir.DisableCache
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = prev })
	t.Setenv("HOME", home)
}

func TestUserConfigDir_XDG(t *testing.T) {
	useHome(t, "/home/someone")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	dir, ok := RealSystem{}.UserConfigDir()
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/xdg", "icedtea-web"), dir)
}

func TestUserConfigDir_HomeFallback(t *testing.T) {
	useHome(t, "/home/someone")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, ok := RealSystem{}.UserConfigDir()
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/home/someone", ".config", "icedtea-web"), dir)
}

func TestLegacyUserConfigDir(t *testing.T) {
	useHome(t, "/home/someone")

	dir, ok := RealSystem{}.LegacyUserConfigDir()
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/home/someone", ".icedtea"), dir)
}

func TestSystemConfigDirs(t *testing.T) {
	legacy, ok := RealSystem{}.LegacySystemConfigDir()
	assert.True(t, ok)
	assert.Equal(t, "/etc/.java/.deploy", legacy)

	global, ok := RealSystem{}.SystemConfigDir()
	assert.True(t, ok)
	assert.Equal(t, "/etc/.java/deployment", global)
}

func TestPlatformTraits(t *testing.T) {
	sys := RealSystem{}
	_, ok := sys.RegistryJDK()
	assert.False(t, ok)
	assert.Equal(t, ":", sys.ClasspathSeparator())
	assert.Equal(t, []string{""}, sys.ExecutableSuffixes())
	assert.True(t, sys.ConsoleAttached())
}

func TestIsExecutable(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "java")
	plain := filepath.Join(dir, "java.txt")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(plain, []byte("#!/bin/sh\n"), 0o644))

	sys := RealSystem{}
	assert.True(t, sys.IsExecutable(exe))
	assert.False(t, sys.IsExecutable(plain))
	assert.False(t, sys.IsExecutable(dir))
	assert.False(t, sys.IsExecutable(filepath.Join(dir, "missing")))
}
