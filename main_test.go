package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itw/internal/defaults"
	"itw/internal/launcher"
	"itw/internal/libs"
	"itw/internal/testutil"
)

func stubExecute(t *testing.T, err error) {
	t.Helper()
	orig := executeFunc
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return err
	}
	t.Cleanup(func() { executeFunc = orig })
}

func TestRunMain_ExitCodes(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		want      int
		wantPrint bool
	}{
		{"success", nil, 0, false},
		{"jvm status", &ExitError{Code: 3}, 3, false},
		{"spawn failure", fmt.Errorf("%w /jre/bin/java: no such file", launcher.ErrSpawn), launcher.ExitSpawnFailure, true},
		{"invalid default mode", fmt.Errorf("%w: %q", libs.ErrInvalidDefaultMode, "BOTH"), exitConfigError, true},
		{"other", errors.New("boom"), 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubExecute(t, tt.err)
			var stdout, stderr bytes.Buffer
			got := -1

			runMain([]string{"itw"}, &stdout, &stderr, func(code int) { got = code })

			assert.Equal(t, tt.want, got)
			if tt.wantPrint {
				assert.Contains(t, stderr.String(), tt.err.Error())
			} else {
				assert.Empty(t, stderr.String())
			}
		})
	}
}

func TestExitError(t *testing.T) {
	assert.Equal(t, "exit 7", (&ExitError{Code: 7}).Error())
}

// fakeInstall returns a FakeSystem whose JAVA_HOME holds a java that
// records its arguments, plus the recording file.
func fakeInstall(t *testing.T, javaExit int) (*testutil.FakeSystem, string, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs are not supported on windows")
	}
	jre := testutil.FakeJRE(t, false)
	out := filepath.Join(t.TempDir(), "args.txt")
	script := fmt.Sprintf("#!/bin/sh\nfor arg in \"$@\"; do\n  printf '%%s\\n' \"$arg\" >> %q\ndone\nexit %d\n", out, javaExit)
	require.NoError(t, os.WriteFile(filepath.Join(jre, "bin", "java"), []byte(script), 0o755))

	sys := &testutil.FakeSystem{
		Env:  map[string]string{"JAVA_HOME": jre},
		Home: t.TempDir(),
		Exe:  "/opt/itw/bin/javaws",
	}
	return sys, jre, out
}

func runRoot(t *testing.T, sys *testutil.FakeSystem, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(sys)
	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_LaunchesJavaHome(t *testing.T) {
	sys, jre, out := fakeInstall(t, 0)

	stdout, _, err := runRoot(t, sys, "-J-Xmx256m", "--verbose", "-headless", "foo.jnlp")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	recorded := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	// The first invocation is the version probe.
	require.Greater(t, len(recorded), 1)
	assert.Equal(t, "-version", recorded[0])
	jvmArgs := recorded[1:]
	assert.Equal(t, "-Xmx256m", jvmArgs[0])
	assert.Contains(t, jvmArgs, defaults.Main)
	assert.Contains(t, jvmArgs, "-Dicedtea-web.bin.name=javaws")
	assert.Equal(t, []string{"--verbose", "-headless", "foo.jnlp"}, jvmArgs[len(jvmArgs)-3:])
	for _, a := range jvmArgs {
		assert.False(t, strings.HasPrefix(a, "-splash:"), a)
	}

	assert.Contains(t, stdout, "selected jre")
	assert.Contains(t, stdout, jre)
}

func TestRootCmd_PropagatesJavaExit(t *testing.T) {
	sys, _, _ := fakeInstall(t, 5)

	_, _, err := runRoot(t, sys, "foo.jnlp")

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 5, exitErr.Code)
}

func TestRootCmd_SpawnFailure(t *testing.T) {
	orig := defaults.JRE
	defaults.JRE = filepath.Join(t.TempDir(), "missing-jre")
	t.Cleanup(func() { defaults.JRE = orig })
	sys := &testutil.FakeSystem{Env: map[string]string{}, Exe: "/opt/itw/bin/javaws"}

	_, _, err := runRoot(t, sys, "foo.jnlp")

	assert.ErrorIs(t, err, launcher.ErrSpawn)
}

func TestRootCmd_InvalidDefaultMode(t *testing.T) {
	orig := defaults.LibSearch
	defaults.LibSearch = "BOTH"
	t.Cleanup(func() { defaults.LibSearch = orig })

	_, _, err := runRoot(t, &testutil.FakeSystem{}, "foo.jnlp")

	assert.ErrorIs(t, err, libs.ErrInvalidDefaultMode)
}

func TestRootCmd_VerboseFromConfig(t *testing.T) {
	sys, _, _ := fakeInstall(t, 0)
	sys.UserConfig = t.TempDir()
	testutil.WriteFile(t, sys.UserConfig, "deployment.properties", "deployment.log=true\n")

	stdout, _, err := runRoot(t, sys, "foo.jnlp")

	require.NoError(t, err)
	assert.Contains(t, stdout, "DEBUG")
}

func TestRootCmd_InvalidLoggingValuesWarn(t *testing.T) {
	sys, _, _ := fakeInstall(t, 0)
	sys.UserConfig = t.TempDir()
	testutil.WriteFile(t, sys.UserConfig, "deployment.properties", "deployment.log=yes\ndeployment.log.file=maybe\n")

	stdout, stderr, err := runRoot(t, sys, "foo.jnlp")

	require.NoError(t, err)
	assert.Contains(t, stderr, "is not valid")
	assert.Contains(t, stderr, "yes")
	assert.Contains(t, stderr, "maybe")
	assert.NotContains(t, stdout, "DEBUG")
	entries, err := os.ReadDir(sys.UserConfig)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no log directory is created when deployment.log.file is invalid")
}
