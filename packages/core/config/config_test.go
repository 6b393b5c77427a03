package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	s, err := LoadFrom(map[string]string{})

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadFrom_Overrides(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want Settings
	}{
		{
			name: "no color",
			vars: map[string]string{"HITPIE_NO_COLOR": "true"},
			want: Settings{NoColor: true, Pretty: true},
		},
		{
			name: "disable pretty",
			vars: map[string]string{"HITPIE_PRETTY": "false"},
			want: Settings{Pretty: false},
		},
		{
			name: "verbose",
			vars: map[string]string{"HITPIE_VERBOSE": "1"},
			want: Settings{Verbose: true, Pretty: true},
		},
		{
			name: "unprefixed names are ignored",
			vars: map[string]string{"VERBOSE": "true"},
			want: Settings{Pretty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := LoadFrom(tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *s)
		})
	}
}

func TestLoadFrom_InvalidBool(t *testing.T) {
	_, err := LoadFrom(map[string]string{"HITPIE_VERBOSE": "loud"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestLoad(t *testing.T) {
	t.Setenv("HITPIE_NO_COLOR", "true")

	s, err := Load()

	require.NoError(t, err)
	assert.True(t, s.NoColor)
}
