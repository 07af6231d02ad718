package libs

import (
	"errors"
	"fmt"

	"itw/internal/env"
	"itw/internal/logging"
)

// EnvLibSearch overrides the compiled-in library search mode.
const EnvLibSearch = "ITW_LIBS"

// Mode controls where the launcher looks for its jars.
type Mode int

const (
	// Bundled searches next to the launcher binary.
	Bundled Mode = iota + 1
	// Distribution uses the absolute paths of a system installation.
	Distribution
	// Embedded is Bundled plus a JRE shipped next to the launcher.
	Embedded
)

var modeNames = map[Mode]string{
	Bundled:      "BUNDLED",
	Distribution: "DISTRIBUTION",
	Embedded:     "EMBEDDED",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ErrInvalidDefaultMode means the binary was built with an unknown mode.
var ErrInvalidDefaultMode = errors.New("invalid compiled-in library search mode")

// ParseMode matches s exactly against the mode names.
func ParseMode(s string) (Mode, bool) {
	for m, name := range modeNames {
		if name == s {
			return m, true
		}
	}
	return 0, false
}

// ResolveMode returns the mode from ITW_LIBS when it holds a valid name,
// else the compiled-in def. An invalid override is reported and ignored;
// an invalid def is returned as ErrInvalidDefaultMode.
func ResolveMode(sys env.System, logger *logging.Logger, def string) (Mode, error) {
	if override, ok := sys.LookupEnv(EnvLibSearch); ok {
		if m, valid := ParseMode(override); valid {
			logger.Debug("library search mode from environment", "mode", m)
			return m, nil
		}
		logger.Important(fmt.Sprintf("%s is set to %q, which is not one of BUNDLED, DISTRIBUTION, EMBEDDED; ignoring it", EnvLibSearch, override))
	}
	m, ok := ParseMode(def)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDefaultMode, def)
	}
	return m, nil
}
