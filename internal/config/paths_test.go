package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"itw/internal/testutil"
)

func TestDefaultLocations_Order(t *testing.T) {
	sys := &testutil.FakeSystem{
		UserConfig:         "/home/u/.config/icedtea-web",
		LegacyUserConfig:   "/home/u/.icedtea",
		LegacySystemConfig: "/etc/.java/.deploy",
		SystemConfig:       "/etc/.java/deployment",
	}

	locs := DefaultLocations(sys)

	assert.Equal(t, Locations{
		filepath.Join("/home/u/.config/icedtea-web", DeploymentProperties),
		filepath.Join("/home/u/.icedtea", DeploymentProperties),
		filepath.Join("/etc/.java/.deploy", DeploymentProperties),
		filepath.Join("/etc/.java/deployment", DeploymentProperties),
	}, locs)
}

func TestDefaultLocations_MissingAreEmpty(t *testing.T) {
	sys := &testutil.FakeSystem{UserConfig: "/cfg/icedtea-web"}

	locs := DefaultLocations(sys)

	assert.Equal(t, filepath.Join("/cfg/icedtea-web", DeploymentProperties), locs[0])
	assert.Empty(t, locs[1])
	assert.Empty(t, locs[2])
	assert.Empty(t, locs[3])
}

func TestLogDir(t *testing.T) {
	dir, ok := LogDir(&testutil.FakeSystem{UserConfig: "/cfg/icedtea-web"})
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/cfg/icedtea-web", "log"), dir)

	_, ok = LogDir(&testutil.FakeSystem{})
	assert.False(t, ok)
}
