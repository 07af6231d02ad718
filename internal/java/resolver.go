package java

import (
	"fmt"
	"path/filepath"
	"strings"

	"itw/internal/config"
	"itw/internal/defaults"
	"itw/internal/env"
	"itw/internal/libs"
	"itw/internal/logging"
)

// Resolver picks the JRE the launcher runs. Sources are tried in a fixed
// order, each at most once: config files, JAVA_HOME, a runtime embedded
// next to the launcher, the platform registry, PATH and finally the
// compiled-in default.
type Resolver struct {
	sys       env.System
	log       *logging.Logger
	detector  *Detector
	locations config.Locations
	mode      libs.Mode
	hardcoded string
}

// NewResolver creates a Resolver searching locs under the given library mode.
func NewResolver(sys env.System, logger *logging.Logger, detector *Detector, locs config.Locations, mode libs.Mode) *Resolver {
	return &Resolver{
		sys:       sys,
		log:       logger,
		detector:  detector,
		locations: locs,
		mode:      mode,
		hardcoded: defaults.JRE,
	}
}

// Find returns the selected JRE directory. It always returns a path; the
// compiled-in default is used unvalidated when nothing else matched.
func (r *Resolver) Find() string {
	steps := []struct {
		name string
		try  func() (string, bool)
	}{
		{"config files", r.fromConfig},
		{"JAVA_HOME", r.fromJavaHome},
		{"embedded jre", r.fromEmbedded},
		{"registry", r.fromRegistry},
		{"PATH", r.fromPath},
	}
	for _, step := range steps {
		r.log.Debug("trying jre source", "source", step.name)
		if dir, ok := step.try(); ok {
			r.log.Debug("jre found", "source", step.name, "jre", dir)
			return dir
		}
		r.log.Debug("jre not found", "source", step.name)
	}
	r.log.Debug("using hardcoded jre", "jre", r.hardcoded)
	return r.hardcoded
}

func (r *Resolver) fromConfig() (string, bool) {
	return config.Lookup(r.log, r.locations, config.KeyJREDir, jreValidator{detector: r.detector})
}

// fromJavaHome trusts JAVA_HOME without validation.
func (r *Resolver) fromJavaHome() (string, bool) {
	home, ok := r.sys.LookupEnv("JAVA_HOME")
	if !ok || home == "" {
		return "", false
	}
	if jre := filepath.Join(home, "jre"); isDir(jre) {
		return jre, true
	}
	return home, true
}

func (r *Resolver) fromEmbedded() (string, bool) {
	if r.mode != libs.Embedded {
		r.log.Debug("skipping embedded jre", "mode", r.mode)
		return "", false
	}
	exe, err := r.sys.Executable()
	if err != nil {
		r.log.Important("cannot locate the launcher binary, embedded jre unavailable", "err", err)
		return "", false
	}
	pgmDir := filepath.Dir(exe)
	for _, up := range []string{"..", filepath.Join("..", "..")} {
		home := filepath.Clean(filepath.Join(pgmDir, up))
		r.log.Debug("trying embedded jre", "jre", home)
		if _, ok := r.detector.findJava(filepath.Join(home, "bin")); ok {
			return home, true
		}
	}
	r.log.Important(fmt.Sprintf("Launcher is in %s mode, but no jre was found next to %s. This is a packaging error; falling back to system runtimes.", libs.Embedded, pgmDir))
	return "", false
}

func (r *Resolver) fromRegistry() (string, bool) {
	return r.sys.RegistryJDK()
}

func (r *Resolver) fromPath() (string, bool) {
	if r.mode == libs.Distribution {
		r.log.Debug("skipping PATH scan", "mode", r.mode)
		return "", false
	}
	path, ok := r.sys.LookupEnv("PATH")
	if !ok || path == "" {
		return "", false
	}
	for _, dir := range strings.Split(path, r.sys.ClasspathSeparator()) {
		if dir == "" {
			continue
		}
		exe, ok := r.detector.findJava(dir)
		if !ok {
			continue
		}
		if !r.sys.IsExecutable(exe) {
			r.log.Debug("java on PATH is not executable, skipping", "java", exe)
			continue
		}
		return r.jreFromJavaOnPath(exe), true
	}
	return "", false
}

// jreFromJavaOnPath strips bin/java from a canonicalised java binary,
// preferring a nested jre directory as the shell launchers did.
func (r *Resolver) jreFromJavaOnPath(exe string) string {
	canonical := env.ResolvePath(exe)
	r.log.Debug("found java on PATH", "java", exe, "canonical", canonical)
	bin := filepath.Dir(canonical)
	if filepath.Base(bin) != "bin" {
		r.log.Important("java on PATH is not inside a bin directory, guessing its jre", "java", canonical)
	}
	home := filepath.Dir(bin)
	if jre := filepath.Join(home, "jre"); isDir(jre) {
		return jre
	}
	return home
}

type jreValidator struct {
	detector *Detector
}

func (v jreValidator) Validate(value string) bool {
	return v.detector.IsValidJavaPath(value)
}

func (v jreValidator) FailMessage(key, value, file string) string {
	return fmt.Sprintf("Your custom JRE %s read from %s under key %s is not valid. "+
		"Trying other config files, then using default (%s, %s, registry or JAVA_HOME) in attempt to start. Please fix this.",
		value, file, key, defaults.Java, defaults.JRE)
}
