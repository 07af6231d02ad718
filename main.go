// Command itw launches IcedTea-Web: it picks a Java runtime, builds the
// JVM command line and runs the JVM, exiting with its status.
//
// One binary is built per launcher (javaws, itweb-settings, ...), with the
// main class and install paths set at link time:
//
//	go build -ldflags "-X main.Version=1.8 -X itw/internal/defaults.Main=..."
//
// Windows builds add -H windowsgui; the launcher attaches to the parent
// console when there is one.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"itw/internal/config"
	"itw/internal/defaults"
	"itw/internal/env"
	"itw/internal/java"
	"itw/internal/launcher"
	"itw/internal/libs"
	"itw/internal/logging"
	"itw/internal/theme"
)

// Version is set during build time via ldflags
var Version = "dev"

// exitConfigError reports a launcher built with inconsistent defaults.
const exitConfigError = 2

var executeFunc = execute

// ExitError carries the JVM exit status back to main without printing.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// runMain executes the launcher and maps its outcome to an exit status.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	err := executeFunc(args, stdout, stderr)
	if err == nil {
		exit(0)
		return
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		exit(exitErr.Code)
		return
	}
	_, _ = fmt.Fprintln(stderr, theme.ErrorMessage(err.Error()))
	switch {
	case errors.Is(err, launcher.ErrSpawn):
		exit(launcher.ExitSpawnFailure)
	case errors.Is(err, libs.ErrInvalidDefaultMode):
		exit(exitConfigError)
	default:
		exit(1)
	}
}

// execute runs the root command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd(env.RealSystem{})
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// newRootCmd builds the launcher command. Every argument is passed
// through; -verbose, -headless and -J<flag> are only inspected.
func newRootCmd(sys env.System) *cobra.Command {
	return &cobra.Command{
		Use:                "itw [-J<jvm flag>...] [-verbose] [-headless] [args...]",
		Short:              "Launch IcedTea-Web on a Java runtime",
		Version:            Version,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := launch(sys, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
	}
}

// launch resolves the runtime, composes the command line and runs java.
func launch(sys env.System, args []string, stdout, stderr io.Writer) (int, error) {
	locs := config.DefaultLocations(sys)
	logger := newLogger(sys, locs, args, stdout, stderr)
	defer logger.Close()

	if exe, err := sys.Executable(); err == nil {
		logger.Debug("launcher binary", "path", exe)
	}

	mode, err := libs.ResolveMode(sys, logger, defaults.LibSearch)
	if err != nil {
		return exitConfigError, err
	}
	logger.Debug("itw mode", "mode", mode)

	detector := java.NewDetector(sys, logger)
	jreDir := java.NewResolver(sys, logger, detector, locs, mode).Find()
	logger.Info("selected jre", "jre", jreDir)

	jars := libs.NewJarResolver(sys, logger, mode)
	composer := launcher.NewComposer(sys, logger, detector, libs.NewBuilder(jars, logger, locs), defaults.Main)
	jvmArgs := composer.Compose(jreDir, args)

	return launcher.NewSpawner(logger, sys.ConsoleAttached()).Run(detector.JavaExecutable(jreDir), jvmArgs)
}

// newLogger configures logging from the command line and deployment.properties.
// Until the logger exists, rejected values of the logging keys are reported
// on stderr only.
func newLogger(sys env.System, locs config.Locations, args []string, stdout, stderr io.Writer) *logging.Logger {
	boot := logging.New(logging.Options{StdStreams: true, Stdout: io.Discard, Stderr: stderr})
	opts := logging.Options{
		Verbose:    launcher.IsVerbose(args) || config.Bool(boot, locs, config.KeyLogVerbose, false),
		StdStreams: config.Bool(boot, locs, config.KeyLogStdStreams, true),
		File:       config.Bool(boot, locs, config.KeyLogFile, false),
		System:     config.Bool(boot, locs, config.KeyLogSystem, false),
		Stdout:     stdout,
		Stderr:     stderr,
	}
	if dir := config.Direct(boot, locs, config.KeyLogDir); dir != "" {
		opts.Dir = dir
	} else if dir, ok := config.LogDir(sys); ok {
		opts.Dir = dir
	}
	return logging.New(opts)
}
