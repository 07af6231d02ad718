package env

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// System abstracts the operating system facilities the launcher depends on.
// Platform differences stay behind this interface so resolution code never
// branches on GOOS itself.
type System interface {
	LookupEnv(key string) (string, bool)
	HomeDir() (string, bool)

	// Config directories in precedence order. Each returns false when the
	// platform has no such location or it cannot be computed.
	UserConfigDir() (string, bool)
	LegacyUserConfigDir() (string, bool)
	LegacySystemConfigDir() (string, bool)
	SystemConfigDir() (string, bool)

	// RegistryJDK returns the JRE home recorded in the platform registry.
	RegistryJDK() (string, bool)

	ClasspathSeparator() string
	ExecutableSuffixes() []string

	// IsExecutable reports whether path is a regular file the OS would run.
	IsExecutable(path string) bool

	// Executable returns the symlink-resolved path of the running launcher.
	Executable() (string, error)

	// ConsoleAttached reports whether child processes may inherit the
	// standard streams.
	ConsoleAttached() bool
}

// RealSystem implements System using the running OS.
type RealSystem struct{}

var (
	filepathAbs          = filepath.Abs
	filepathEvalSymlinks = filepath.EvalSymlinks
)

// LookupEnv returns the value of the environment variable named by key.
func (RealSystem) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// HomeDir returns the current user's home directory (HOME, or USERPROFILE on Windows).
func (RealSystem) HomeDir() (string, bool) {
	dir, err := homedir.Dir()
	if err != nil || dir == "" {
		return "", false
	}
	return dir, true
}

// Executable returns the absolute path of the running binary.
func (RealSystem) Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return ResolvePath(exe), nil
}

// ResolvePath returns the absolute, symlink-resolved form of a path.
// If resolution fails at any step, it returns the best result available.
func ResolvePath(path string) string {
	abs, err := filepathAbs(path)
	if err != nil {
		abs = path
	}
	eval, err := filepathEvalSymlinks(abs)
	if err == nil {
		return eval
	}
	return abs
}

// configHome follows the XDG base directory specification.
func configHome(sys System) (string, bool) {
	if dir, ok := sys.LookupEnv("XDG_CONFIG_HOME"); ok && dir != "" {
		return dir, true
	}
	home, ok := sys.HomeDir()
	if !ok {
		return "", false
	}
	return filepath.Join(home, ".config"), true
}
