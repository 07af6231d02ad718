//go:build !windows

package env

import (
	"os"
	"path/filepath"
)

// UserConfigDir returns $XDG_CONFIG_HOME/icedtea-web, falling back to ~/.config/icedtea-web.
func (s RealSystem) UserConfigDir() (string, bool) {
	dir, ok := configHome(s)
	if !ok {
		return "", false
	}
	return filepath.Join(dir, "icedtea-web"), true
}

// LegacyUserConfigDir returns ~/.icedtea.
func (s RealSystem) LegacyUserConfigDir() (string, bool) {
	home, ok := s.HomeDir()
	if !ok {
		return "", false
	}
	return filepath.Join(home, ".icedtea"), true
}

func (RealSystem) LegacySystemConfigDir() (string, bool) {
	return "/etc/.java/.deploy", true
}

func (RealSystem) SystemConfigDir() (string, bool) {
	return "/etc/.java/deployment", true
}

// RegistryJDK always reports false; there is no registry outside Windows.
func (RealSystem) RegistryJDK() (string, bool) {
	return "", false
}

func (RealSystem) ClasspathSeparator() string {
	return ":"
}

func (RealSystem) ExecutableSuffixes() []string {
	return []string{""}
}

func (RealSystem) ConsoleAttached() bool {
	return true
}

// IsExecutable requires a regular file with any execute bit set.
func (RealSystem) IsExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
