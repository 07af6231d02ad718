package config

import (
	"path/filepath"

	"itw/internal/env"
)

// Locations lists the deployment.properties candidates in precedence
// order: user, legacy user, legacy system, system. An empty entry means
// the location does not exist on this platform or could not be computed.
type Locations [4]string

// DefaultLocations computes the config file candidates for sys.
func DefaultLocations(sys env.System) Locations {
	dirs := [4]func() (string, bool){
		sys.UserConfigDir,
		sys.LegacyUserConfigDir,
		sys.LegacySystemConfigDir,
		sys.SystemConfigDir,
	}
	var locs Locations
	for i, dir := range dirs {
		if d, ok := dir(); ok && d != "" {
			locs[i] = filepath.Join(d, DeploymentProperties)
		}
	}
	return locs
}

// LogDir returns the default log directory below the user config dir.
func LogDir(sys env.System) (string, bool) {
	dir, ok := sys.UserConfigDir()
	if !ok {
		return "", false
	}
	return filepath.Join(dir, "log"), true
}
