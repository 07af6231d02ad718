package libs

import (
	"os"
	"path/filepath"
	"strings"

	"itw/internal/config"
	"itw/internal/defaults"
	"itw/internal/logging"
)

const bootClasspathSwitch = "-Xbootclasspath/a:"

// Builder assembles the boot classpath and classpath of the JVM.
type Builder struct {
	jars      *JarResolver
	log       *logging.Logger
	locations config.Locations
	separator string
}

// NewBuilder creates a Builder. locs is consulted for the add/remove keys.
func NewBuilder(jars *JarResolver, logger *logging.Logger, locs config.Locations) *Builder {
	return &Builder{
		jars:      jars,
		log:       logger,
		locations: locs,
		separator: jars.sys.ClasspathSeparator(),
	}
}

// BootMembers lists the boot classpath entries for the JRE in jreDir.
func (b *Builder) BootMembers(jreDir string) []string {
	var members []string
	for _, jar := range defaults.BootJars() {
		if jar.Path == "" {
			// optional jar not shipped with this build
			continue
		}
		members = append(members, b.jars.Resolve(jar.Path))
	}
	members = append(members, filepath.Join(jreDir, "lib", "ext", "nashorn.jar"))
	return b.filter(members, config.KeyBootClasspathRemove, config.KeyBootClasspathAdd)
}

// Members lists the classpath entries for the JRE in jreDir.
func (b *Builder) Members(jreDir string) []string {
	members := []string{
		filepath.Join(jreDir, "lib", "rt.jar"),
		filepath.Join(jreDir, "lib", "ext", "jfxrt.jar"),
	}
	return b.filter(members, config.KeyClasspathRemove, config.KeyClasspathAdd)
}

// BootClasspath returns the complete -Xbootclasspath/a: switch.
func (b *Builder) BootClasspath(jreDir string) string {
	bootcp := bootClasspathSwitch + JoinClasspath(b.BootMembers(jreDir), b.separator)
	b.log.Debug("used boot classpath", "value", bootcp)
	return bootcp
}

// Classpath returns the value of the -classpath switch.
func (b *Builder) Classpath(jreDir string) string {
	cp := JoinClasspath(b.Members(jreDir), b.separator)
	b.log.Debug("used classpath", "value", cp)
	return cp
}

// Splash resolves the splash screen image.
func (b *Builder) Splash() string {
	return b.jars.Resolve(defaults.Splash)
}

// ArgsFile resolves the JVM arguments file used with modular runtimes.
func (b *Builder) ArgsFile() string {
	return b.jars.Resolve(defaults.ArgsFile)
}

func (b *Builder) filter(members []string, removeKey, addKey string) []string {
	members = FilterOut(members, config.Direct(b.log, b.locations, removeKey))
	return FilterIn(members, config.Direct(b.log, b.locations, addKey))
}

// JoinClasspath joins members in order with sep. Duplicates are kept.
func JoinClasspath(members []string, sep string) string {
	return strings.Join(members, sep)
}

// FilterOut drops every member containing one of the space separated
// tokens of value.
func FilterOut(members []string, value string) []string {
	tokens := splitSpaces(value)
	if len(tokens) == 0 {
		return members
	}
	kept := members[:0:0]
	for _, m := range members {
		if !containsAny(m, tokens) {
			kept = append(kept, m)
		}
	}
	return kept
}

// FilterIn appends the space separated entries of value verbatim.
func FilterIn(members []string, value string) []string {
	return append(members, splitSpaces(value)...)
}

// splitSpaces splits value on single spaces, dropping empty tokens.
// Other whitespace is part of a token.
func splitSpaces(value string) []string {
	var tokens []string
	for _, t := range strings.Split(value, " ") {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
