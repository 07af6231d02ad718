package config

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Load returns the value of key in the properties file at path.
// A missing or unreadable file is reported the same way as a missing key.
func Load(path, key string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()
	return LoadReader(f, key)
}

// LoadReader scans r for the first line whose key equals key.
//
// Lines are split at the earliest '=' or ':'; key and value are trimmed
// and "\:" in the value is unescaped. Blank lines, '#' comments and lines
// without a delimiter are skipped. Lines have no length limit. A read
// error ends the scan as not found.
func LoadReader(r io.Reader, key string) (string, bool) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			k, v, ok := splitLine(line)
			if ok && k == key {
				return v, true
			}
		}
		if err != nil {
			return "", false
		}
	}
}

func splitLine(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	i := strings.IndexAny(trimmed, "=:")
	if i < 0 {
		return "", "", false
	}
	k := strings.TrimSpace(trimmed[:i])
	v := strings.TrimSpace(trimmed[i+1:])
	return k, strings.ReplaceAll(v, `\:`, ":"), true
}
