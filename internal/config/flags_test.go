package config

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Defaults(t *testing.T) {
	f, err := ParseFlags("checkin-config", nil, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, &Flags{}, f)
}

func TestParseFlags_AllFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"long", []string{"--config", "/etc/checkin/config.json", "--print", "--verbose"}},
		{"short", []string{"-c", "/etc/checkin/config.json", "--print", "-v"}},
		{"equals", []string{"--config=/etc/checkin/config.json", "--print", "-v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFlags("checkin-config", tt.args, &bytes.Buffer{})

			require.NoError(t, err)
			assert.Equal(t, &Flags{ConfigPath: "/etc/checkin/config.json", Print: true, Verbose: true}, f)
		})
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	var out bytes.Buffer

	f, err := ParseFlags("checkin-config", []string{"--nope"}, &out)

	require.Error(t, err)
	assert.Nil(t, f)
	assert.Contains(t, err.Error(), "unknown flag: --nope")
}

func TestParseFlags_Help(t *testing.T) {
	var out bytes.Buffer

	_, err := ParseFlags("checkin-config", []string{"--help"}, &out)

	assert.ErrorIs(t, err, pflag.ErrHelp)
	assert.Contains(t, out.String(), "Usage of checkin-config")
	assert.Contains(t, out.String(), "--config")
}
