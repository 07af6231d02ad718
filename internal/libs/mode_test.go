package libs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itw/internal/env"
	"itw/internal/logging"
	"itw/internal/testutil"
)

var _ env.System = (*testutil.FakeSystem)(nil)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"BUNDLED", Bundled, true},
		{"DISTRIBUTION", Distribution, true},
		{"EMBEDDED", Embedded, true},
		{"bundled", 0, false},
		{"BOTH", 0, false},
		{"", 0, false},
		{" BUNDLED", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMode(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "BUNDLED", Bundled.String())
	assert.Equal(t, "DISTRIBUTION", Distribution.String())
	assert.Equal(t, "EMBEDDED", Embedded.String())
	assert.Equal(t, "Mode(42)", Mode(42).String())
}

func TestResolveMode_Default(t *testing.T) {
	m, err := ResolveMode(&testutil.FakeSystem{}, logging.Discard(), "BUNDLED")
	require.NoError(t, err)
	assert.Equal(t, Bundled, m)
}

func TestResolveMode_Override(t *testing.T) {
	sys := &testutil.FakeSystem{Env: map[string]string{EnvLibSearch: "EMBEDDED"}}
	m, err := ResolveMode(sys, logging.Discard(), "DISTRIBUTION")
	require.NoError(t, err)
	assert.Equal(t, Embedded, m)
}

func TestResolveMode_InvalidOverrideWarns(t *testing.T) {
	logger, buf := testutil.BufferLogger()
	sys := &testutil.FakeSystem{Env: map[string]string{EnvLibSearch: "embedded"}}

	m, err := ResolveMode(sys, logger, "DISTRIBUTION")

	require.NoError(t, err)
	assert.Equal(t, Distribution, m)
	assert.Contains(t, buf.String(), EnvLibSearch)
	assert.Contains(t, buf.String(), "embedded")
}

func TestResolveMode_InvalidDefaultIsFatal(t *testing.T) {
	_, err := ResolveMode(&testutil.FakeSystem{}, logging.Discard(), "BOTH")
	require.ErrorIs(t, err, ErrInvalidDefaultMode)
	assert.Contains(t, err.Error(), "BOTH")
}

func TestResolveMode_ValidOverrideHidesInvalidDefault(t *testing.T) {
	sys := &testutil.FakeSystem{Env: map[string]string{EnvLibSearch: "BUNDLED"}}
	m, err := ResolveMode(sys, logging.Discard(), "nonsense")
	require.NoError(t, err)
	assert.Equal(t, Bundled, m)
}
