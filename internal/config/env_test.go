// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		EnvPrefix + "CHECK_FARES":               "same_day_flight",
		EnvPrefix + "BROWSER_PATH":              "/usr/bin/chromium",
		EnvPrefix + "RETRIEVAL_INTERVAL":        "12",
		EnvPrefix + "USERNAME":                  "user",
		EnvPrefix + "PASSWORD":                  "pass",
		EnvPrefix + "CONFIRMATION_NUMBER":       "ABC123",
		EnvPrefix + "FIRST_NAME":                "John",
		EnvPrefix + "LAST_NAME":                 "Doe",
		EnvPrefix + "NOTIFICATION_24_HOUR_TIME": "yes",
		EnvPrefix + "NOTIFICATION_URL":          "apprise://url",
		EnvPrefix + "NOTIFICATION_LEVEL":        "40",
	}

	// Act
	overrides, err := parseEnv(environ)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Source{
		keyCheckFares:             "same_day_flight",
		keyBrowserPath:            "/usr/bin/chromium",
		keyRetrievalInterval:      12,
		keyAccounts:               []any{map[string]any{fieldUsername: "user", fieldPassword: "pass"}},
		keyReservations:           []any{map[string]any{fieldConfirmationNumber: "ABC123", fieldFirstName: "John", fieldLastName: "Doe"}},
		keyNotification24HourTime: true,
		keyNotificationURLs:       "apprise://url",
		keyNotificationLevel:      40,
	}, overrides.source())
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	overrides, err := parseEnv(map[string]string{})

	require.NoError(t, err)
	assert.Empty(t, overrides.source())
}

func TestParseEnv_IgnoresUnprefixedVariables(t *testing.T) {
	overrides, err := parseEnv(map[string]string{"USERNAME": "user", "PASSWORD": "pass"})

	require.NoError(t, err)
	assert.Empty(t, overrides.source())
}

func TestParseEnv_ReadsProcessEnvironmentByDefault(t *testing.T) {
	t.Setenv(EnvPrefix+"BROWSER_PATH", "/opt/browser")

	overrides, err := parseEnv(nil)

	require.NoError(t, err)
	assert.Equal(t, "/opt/browser", overrides.BrowserPath)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"retrieval interval", "RETRIEVAL_INTERVAL", "invalid"},
		{"notification level", "NOTIFICATION_LEVEL", "high"},
		{"notification 24 hour time", "NOTIFICATION_24_HOUR_TIME", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseEnv(map[string]string{EnvPrefix + tt.key: tt.val})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidType)
		})
	}
}

func TestParseEnv_PartialCredentialsAreIgnored(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{"username only", map[string]string{EnvPrefix + "USERNAME": "user"}},
		{"password only", map[string]string{EnvPrefix + "PASSWORD": "pass"}},
		{"reservation without last name", map[string]string{
			EnvPrefix + "CONFIRMATION_NUMBER": "ABC123",
			EnvPrefix + "FIRST_NAME":          "John",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overrides, err := parseEnv(tt.environ)

			require.NoError(t, err)
			assert.Empty(t, overrides.source())
		})
	}
}

func TestEnvOverrides_CheckFaresBooleans(t *testing.T) {
	tests := []struct {
		value    string
		expected any
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"no", false},
		{"same_flight", "same_flight"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			overrides := &envOverrides{CheckFares: tt.value}
			assert.Equal(t, tt.expected, overrides.source()[keyCheckFares])
		})
	}
}

func TestParseTruthy(t *testing.T) {
	for _, s := range []string{"1", "true", "True", "YES", "y", "on", " t "} {
		v, err := parseTruthy(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"0", "false", "No", "n", "off", "F"} {
		v, err := parseTruthy(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}
	_, err := parseTruthy("maybe")
	assert.Error(t, err)
}

// ── overlay ───────────────────────────────────────────────────────────────────

func TestOverlay_ScalarsOverrideFileValues(t *testing.T) {
	dst := Source{
		keyRetrievalInterval: json.Number("20"),
		keyNotificationURLs:  "file://url",
		keyBrowserPath:       "/file/browser",
	}

	err := overlay(dst, Source{
		keyRetrievalInterval: 2,
		keyNotificationURLs:  "env://url",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, dst[keyRetrievalInterval])
	assert.Equal(t, "env://url", dst[keyNotificationURLs])
	assert.Equal(t, "/file/browser", dst[keyBrowserPath])
}

func TestOverlay_FalseOverridesTrue(t *testing.T) {
	dst := Source{keyNotification24HourTime: true}

	require.NoError(t, overlay(dst, Source{keyNotification24HourTime: false}))
	assert.Equal(t, false, dst[keyNotification24HourTime])
}

func TestOverlay_AccountsAreAppended(t *testing.T) {
	fileAccount := map[string]any{fieldUsername: "file", fieldPassword: "1"}
	envAccount := map[string]any{fieldUsername: "env", fieldPassword: "2"}
	dst := Source{keyAccounts: []any{fileAccount}}

	err := overlay(dst, Source{keyAccounts: []any{envAccount}})

	require.NoError(t, err)
	assert.Equal(t, []any{fileAccount, envAccount}, dst[keyAccounts])
}

func TestOverlay_AccountsAddedWhenFileHasNone(t *testing.T) {
	envAccount := map[string]any{fieldUsername: "env", fieldPassword: "2"}
	dst := Source{}

	err := overlay(dst, Source{keyAccounts: []any{envAccount}})

	require.NoError(t, err)
	assert.Equal(t, []any{envAccount}, dst[keyAccounts])
}

func TestOverlay_NonListFileAccountsFail(t *testing.T) {
	tests := []struct {
		name string
		key  string
		file any
		got  string
	}{
		{"string accounts", keyAccounts, "invalid", "string"},
		{"null accounts", keyAccounts, nil, "null"},
		{"object accounts", keyAccounts, map[string]any{}, "object"},
		{"numeric accounts", keyAccounts, json.Number("1"), "number"},
		{"null reservations", keyReservations, nil, "null"},
		{"boolean reservations", keyReservations, false, "boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			dst := Source{tt.key: tt.file}

			// Act
			err := overlay(dst, Source{tt.key: []any{map[string]any{}}})

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidType)

			var typeErr *TypeError
			require.True(t, errors.As(err, &typeErr))
			assert.Equal(t, tt.key, typeErr.Key)
			assert.Equal(t, wantList, typeErr.Want)
			assert.Equal(t, tt.got, typeErr.Got)
			assert.NotContains(t, err.Error(), "cannot append")
			assert.Equal(t, tt.file, dst[tt.key], "the file value is left for parsing")
		})
	}
}

func TestOverlay_LeavesFileAccountsWhenEnvAddsNone(t *testing.T) {
	dst := Source{keyAccounts: nil}

	require.NoError(t, overlay(dst, Source{keyBrowserPath: "/opt/browser"}))
	assert.Contains(t, dst, keyAccounts)
}

func TestOverlay_EmptyOverridesLeaveSourceUntouched(t *testing.T) {
	dst := Source{keyNotificationLevel: json.Number("20")}

	require.NoError(t, overlay(dst, Source{}))
	assert.Equal(t, Source{keyNotificationLevel: json.Number("20")}, dst)
}
