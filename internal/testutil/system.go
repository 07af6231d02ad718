package testutil

import (
	"errors"
	"os"
	"runtime"
)

// ErrNoExecutable is returned by FakeSystem.Executable when Exe is empty.
var ErrNoExecutable = errors.New("fake system: executable not set")

// FakeSystem is a configurable stand-in for env.System. Empty string
// fields report the corresponding location as absent.
type FakeSystem struct {
	Env map[string]string

	Home               string
	UserConfig         string
	LegacyUserConfig   string
	LegacySystemConfig string
	SystemConfig       string
	Registry           string

	Separator string   // defaults to ":"
	Suffixes  []string // defaults to [""]
	Exe       string
	Detached  bool
}

func (s *FakeSystem) LookupEnv(key string) (string, bool) {
	v, ok := s.Env[key]
	return v, ok
}

func (s *FakeSystem) HomeDir() (string, bool)               { return present(s.Home) }
func (s *FakeSystem) UserConfigDir() (string, bool)         { return present(s.UserConfig) }
func (s *FakeSystem) LegacyUserConfigDir() (string, bool)   { return present(s.LegacyUserConfig) }
func (s *FakeSystem) LegacySystemConfigDir() (string, bool) { return present(s.LegacySystemConfig) }
func (s *FakeSystem) SystemConfigDir() (string, bool)       { return present(s.SystemConfig) }
func (s *FakeSystem) RegistryJDK() (string, bool)           { return present(s.Registry) }

func (s *FakeSystem) ClasspathSeparator() string {
	if s.Separator == "" {
		return ":"
	}
	return s.Separator
}

func (s *FakeSystem) ExecutableSuffixes() []string {
	if len(s.Suffixes) == 0 {
		return []string{""}
	}
	return s.Suffixes
}

func (s *FakeSystem) Executable() (string, error) {
	if s.Exe == "" {
		return "", ErrNoExecutable
	}
	return s.Exe, nil
}

// IsExecutable checks the real file, ignoring the execute bit on Windows.
func (s *FakeSystem) IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return runtime.GOOS == "windows" || info.Mode().Perm()&0o111 != 0
}

func (s *FakeSystem) ConsoleAttached() bool {
	return !s.Detached
}

func present(v string) (string, bool) {
	return v, v != ""
}
