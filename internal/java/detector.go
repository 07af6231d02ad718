package java

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"

	"itw/internal/env"
	"itw/internal/logging"
)

// DefaultMajor is assumed whenever the runtime version cannot be detected.
const DefaultMajor = 8

var (
	versionRe       = regexp.MustCompile(`version\s+"([^"]+)"`)
	majorFromLegacy = regexp.MustCompile(`^1\.(\d+)`)
	majorFromModern = regexp.MustCompile(`^(\d+)`)
)

// Detector validates Java installations and inspects their version.
type Detector struct {
	sys env.System
	log *logging.Logger

	// runVersion executes "<java> -version" and returns its combined output.
	runVersion func(javaExe string) ([]byte, error)
}

// NewDetector creates a new Java detector
func NewDetector(sys env.System, logger *logging.Logger) *Detector {
	return &Detector{
		sys: sys,
		log: logger,
		runVersion: func(javaExe string) ([]byte, error) {
			return exec.Command(javaExe, "-version").CombinedOutput()
		},
	}
}

// IsValidJavaPath reports whether path is a JRE/JDK home, i.e. whether
// bin/java exists as a regular file for one of the platform's suffixes.
func (d *Detector) IsValidJavaPath(path string) bool {
	_, ok := d.findJava(filepath.Join(path, "bin"))
	return ok
}

// JavaExecutable returns the java binary inside jreDir. When none exists
// the first suffix is used so the caller gets a meaningful spawn error.
func (d *Detector) JavaExecutable(jreDir string) string {
	bin := filepath.Join(jreDir, "bin")
	if exe, ok := d.findJava(bin); ok {
		return exe
	}
	return filepath.Join(bin, "java"+d.sys.ExecutableSuffixes()[0])
}

func (d *Detector) findJava(dir string) (string, bool) {
	for _, suffix := range d.sys.ExecutableSuffixes() {
		candidate := filepath.Join(dir, "java"+suffix)
		if isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// GetVersion runs java -version for the installation in jreDir and
// returns the quoted version string, or "" when it cannot be determined.
func (d *Detector) GetVersion(jreDir string) string {
	output, err := d.runVersion(d.JavaExecutable(jreDir))
	if err != nil {
		d.log.Debug("failed to launch jdk recognition", "jre", jreDir, "err", err)
		return ""
	}
	return parseVersionOutput(string(output))
}

// MajorVersion returns the feature release of the runtime in jreDir
// ("1.8.0_292" is 8, "17.0.2" is 17), or DefaultMajor if unknown.
func (d *Detector) MajorVersion(jreDir string) int {
	v := d.GetVersion(jreDir)
	major, ok := parseMajor(v)
	if !ok {
		d.log.Debug("unrecognized jdk, falling back", "version", v, "major", DefaultMajor)
		return DefaultMajor
	}
	d.log.Debug("detected jdk", "version", v, "major", major)
	return major
}

// IsModular reports whether the runtime in jreDir uses the module system.
func (d *Detector) IsModular(jreDir string) bool {
	if d.MajorVersion(jreDir) > 8 {
		d.log.Debug("modular jdk")
		return true
	}
	d.log.Debug("non-modular jdk")
	return false
}

// parseVersionOutput parses the output of 'java -version'
func parseVersionOutput(output string) string {
	// Matches both: openjdk version "11.0.12" and java version "1.8.0_292"
	matches := versionRe.FindStringSubmatch(output)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

func parseMajor(v string) (int, bool) {
	m := majorFromLegacy.FindStringSubmatch(v)
	if m == nil {
		m = majorFromModern.FindStringSubmatch(v)
	}
	if m == nil {
		return 0, false
	}
	major, err := strconv.Atoi(m[1])
	if err != nil || major == 0 {
		return 0, false
	}
	return major, true
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
