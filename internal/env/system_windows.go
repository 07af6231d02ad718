//go:build windows

package env

import (
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const attachParentProcess = ^uint32(0)

var (
	kernel32      = windows.NewLazySystemDLL("kernel32.dll")
	attachConsole = kernel32.NewProc("AttachConsole")

	javaSoftRegPath = `SOFTWARE\JavaSoft`

	// The launcher is linked as a GUI binary; it gets a console only by
	// attaching to the one of the shell that started it.
	consoleAttached = sync.OnceValue(func() bool {
		r, _, _ := attachConsole.Call(uintptr(attachParentProcess))
		return r != 0
	})
)

// UserConfigDir returns %USERPROFILE%\.config\icedtea-web.
func (s RealSystem) UserConfigDir() (string, bool) {
	home, ok := s.HomeDir()
	if !ok {
		return "", false
	}
	return filepath.Join(home, ".config", "icedtea-web"), true
}

func (RealSystem) LegacyUserConfigDir() (string, bool) {
	return "", false
}

func (RealSystem) LegacySystemConfigDir() (string, bool) {
	return "", false
}

func (RealSystem) SystemConfigDir() (string, bool) {
	return "", false
}

// RegistryJDK scans HKLM\SOFTWARE\JavaSoft and picks a JavaHome by SelectRegistryEntry.
func (RealSystem) RegistryJDK() (string, bool) {
	return SelectRegistryEntry(readRegistryEntries())
}

func (RealSystem) ClasspathSeparator() string {
	return ";"
}

func (RealSystem) ExecutableSuffixes() []string {
	return []string{".exe", ""}
}

// IsExecutable accepts any regular file; Windows has no execute bit.
func (RealSystem) IsExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (RealSystem) ConsoleAttached() bool {
	return consoleAttached()
}

var javaSoftProducts = map[string]RegistryKind{
	"Java Runtime Environment": KindJRE,
	"JRE":                      KindJRE,
	"Java Development Kit":     KindJDK,
	"JDK":                      KindJDK,
}

// readRegistryEntries lists every <product>\<version>\JavaHome under JavaSoft.
func readRegistryEntries() []RegistryEntry {
	root, err := registry.OpenKey(registry.LOCAL_MACHINE, javaSoftRegPath, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil
	}
	defer root.Close()

	products, err := root.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}

	var entries []RegistryEntry
	for _, product := range products {
		kind, known := javaSoftProducts[product]
		if !known {
			continue
		}
		entries = append(entries, readProduct(javaSoftRegPath+`\`+product, kind)...)
	}
	return entries
}

func readProduct(path string, kind RegistryKind) []RegistryEntry {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil
	}
	defer key.Close()

	versions, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}

	entries := make([]RegistryEntry, 0, len(versions))
	for _, v := range versions {
		vk, err := registry.OpenKey(registry.LOCAL_MACHINE, path+`\`+v, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		home, _, err := vk.GetStringValue("JavaHome")
		vk.Close()
		if err != nil || home == "" {
			continue
		}
		entries = append(entries, RegistryEntry{Kind: kind, Version: v, Home: filepath.Clean(home)})
	}
	return entries
}
