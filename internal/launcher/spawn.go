package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"itw/internal/logging"
)

// ExitSpawnFailure is the launcher's exit status when java cannot be started.
const ExitSpawnFailure = 126

// ErrSpawn means the JVM process could not be created.
var ErrSpawn = errors.New("cannot start java")

// Spawner starts the JVM and waits for it.
type Spawner struct {
	log *logging.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewSpawner returns a Spawner. When inherit is false the child's
// standard streams are discarded.
func NewSpawner(logger *logging.Logger, inherit bool) *Spawner {
	s := &Spawner{log: logger}
	if inherit {
		s.Stdin = os.Stdin
		s.Stdout = os.Stdout
		s.Stderr = os.Stderr
	}
	return s
}

// Run executes javaExe with args and returns its exit code verbatim.
// Only a failure to start the process is returned as an error.
func (s *Spawner) Run(javaExe string, args []string) (int, error) {
	s.log.Debug("spawning java", "java", javaExe, "args", args)
	cmd := exec.Command(javaExe, args...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	if err := cmd.Start(); err != nil {
		return ExitSpawnFailure, fmt.Errorf("%w %s: %w", ErrSpawn, javaExe, err)
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			s.log.Important("java was terminated", "state", exitErr.String())
			return terminatedStatus(exitErr), nil
		}
		return code, nil
	}
	return 1, fmt.Errorf("waiting for java: %w", err)
}
