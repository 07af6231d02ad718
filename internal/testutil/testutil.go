package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return writeScript(t, dir, name, fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
}

// WriteArgsRecorder writes a stub that stores its arguments, one per line, in out.
func WriteArgsRecorder(t *testing.T, dir string, name string, out string) string {
	t.Helper()
	return writeScript(t, dir, name, fmt.Sprintf("#!/bin/sh\nfor arg in \"$@\"; do\n  printf '%%s\\n' \"$arg\" >> %q\ndone\nexit 0\n", out))
}

// FakeJRE creates a directory that looks like a JRE home. When valid is
// false the bin/java executable is left out.
func FakeJRE(t *testing.T, valid bool) string {
	t.Helper()
	home := t.TempDir()
	bin := filepath.Join(home, "bin")
	if err := os.MkdirAll(bin, 0o755); err != nil {
		t.Fatalf("mkdir bin: %v", err)
	}
	if valid {
		WriteStubWithExit(t, bin, "java", 0)
	}
	return home
}

// FakeJREWithVersion creates a JRE home whose java prints a
// "java -version" banner for version on stderr.
func FakeJREWithVersion(t *testing.T, version string) string {
	t.Helper()
	home := FakeJRE(t, false)
	banner := fmt.Sprintf("openjdk version \"%s\" 2024-01-16\nOpenJDK Runtime Environment (build %s)\n", version, version)
	writeScript(t, filepath.Join(home, "bin"), "java", "#!/bin/sh\ncat >&2 <<'EOF'\n"+banner+"EOF\nexit 0\n")
	return home
}

// WriteFile writes content to dir/name, creating parents, and returns the path.
func WriteFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

// WriteProperties writes a deployment.properties built from lines.
func WriteProperties(t *testing.T, lines ...string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "deployment.properties", strings.Join(lines, "\n")+"\n")
}

func writeScript(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}
