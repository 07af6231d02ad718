package env

import (
	"strings"

	"github.com/hashicorp/go-version"
)

// RegistryKind tells a JRE registration from a JDK one.
type RegistryKind int

const (
	KindJRE RegistryKind = iota
	KindJDK
)

// RegistryEntry is one JavaSoft registration.
type RegistryEntry struct {
	Kind    RegistryKind
	Version string // key name, e.g. "1.8", "1.8.0_292", "17.0.2"
	Home    string
}

// registry preference buckets, best first
const (
	rankJRE8 = iota
	rankJDK8
	rankJDKModern
	rankJREModern
	rankJDKOld
	rankJREOld
	rankCount
)

// SelectRegistryEntry picks the JavaHome to use from the registry:
// JRE 1.8, then JDK 1.8, then the highest JDK >= 9, the highest JRE >= 9,
// the highest JDK < 1.8 and finally the highest JRE < 1.8.
// Entries with unparseable versions are ignored.
func SelectRegistryEntry(entries []RegistryEntry) (string, bool) {
	var best [rankCount]*RegistryEntry
	var bestVer [rankCount]*version.Version

	for i := range entries {
		e := &entries[i]
		v, err := parseJavaVersion(e.Version)
		if err != nil {
			continue
		}
		r := rank(e.Kind, javaMajor(v))
		if best[r] == nil || v.GreaterThan(bestVer[r]) {
			best[r] = e
			bestVer[r] = v
		}
	}

	for _, e := range best {
		if e != nil {
			return e.Home, true
		}
	}
	return "", false
}

func rank(kind RegistryKind, major int) int {
	switch {
	case major == 8 && kind == KindJRE:
		return rankJRE8
	case major == 8:
		return rankJDK8
	case major > 8 && kind == KindJDK:
		return rankJDKModern
	case major > 8:
		return rankJREModern
	case kind == KindJDK:
		return rankJDKOld
	default:
		return rankJREOld
	}
}

// parseJavaVersion accepts the legacy update separator ("1.8.0_292").
func parseJavaVersion(raw string) (*version.Version, error) {
	return version.NewVersion(strings.ReplaceAll(strings.TrimSpace(raw), "_", "."))
}

func javaMajor(v *version.Version) int {
	seg := v.Segments()
	if len(seg) > 1 && seg[0] == 1 {
		return seg[1]
	}
	return seg[0]
}
