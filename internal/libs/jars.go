package libs

import (
	"path/filepath"

	"itw/internal/env"
	"itw/internal/logging"
)

// EnvHome points at a directory searched for jars before anything else.
const EnvHome = "ITW_HOME"

// searchDirs are tried in order below every search root.
var searchDirs = []string{
	"libs",
	filepath.Join("..", "libs"),
	".",
	"bin",
	filepath.Join("..", "bin"),
}

// JarResolver locates the launcher's jars and resources.
type JarResolver struct {
	sys  env.System
	log  *logging.Logger
	mode Mode
}

// NewJarResolver creates a JarResolver for mode.
func NewJarResolver(sys env.System, logger *logging.Logger, mode Mode) *JarResolver {
	return &JarResolver{sys: sys, log: logger, mode: mode}
}

// Resolve finds the file named like hardcoded. It looks in ITW_HOME, then
// next to the launcher (BUNDLED, EMBEDDED) or at the hardcoded location
// (DISTRIBUTION). When all fail the hardcoded path is returned anyway.
func (j *JarResolver) Resolve(hardcoded string) string {
	name := filepath.Base(hardcoded)

	if home, ok := j.sys.LookupEnv(EnvHome); ok {
		if isDir(home) {
			if found, ok := j.searchUnder(home, name); ok {
				return found
			}
		} else {
			j.log.Important("custom ITW_HOME provided, but it does not exist or is not a directory", "ITW_HOME", home)
		}
	}

	if j.mode == Bundled || j.mode == Embedded {
		if root, ok := j.installRoot(); ok {
			if found, ok := j.searchUnder(root, name); ok {
				return found
			}
		}
	}

	if j.mode == Distribution && isFile(hardcoded) {
		j.log.Debug("found jar", "path", hardcoded)
		return hardcoded
	}

	j.log.Important("falling back to hardcoded path", "path", hardcoded)
	return hardcoded
}

// installRoot is the parent of the directory holding the launcher.
func (j *JarResolver) installRoot() (string, bool) {
	exe, err := j.sys.Executable()
	if err != nil {
		j.log.Debug("cannot locate the launcher binary", "err", err)
		return "", false
	}
	pgmDir := filepath.Dir(exe)
	parent := filepath.Dir(pgmDir)
	if parent == pgmDir {
		return pgmDir, true
	}
	return parent, true
}

func (j *JarResolver) searchUnder(root, name string) (string, bool) {
	for _, sub := range searchDirs {
		candidate := filepath.Join(root, sub, name)
		j.log.Debug("trying", "path", candidate)
		if isFile(candidate) {
			j.log.Debug("found jar", "path", candidate)
			return candidate, true
		}
	}
	return "", false
}
