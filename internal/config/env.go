// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable the loader reads.
const EnvPrefix = "AUTO_SOUTHWEST_CHECK_IN_"

// envOverrides holds the settings that may come from the environment.
// Empty variables are treated as unset.
//
// Struct tags:
//   - env: variable name without EnvPrefix (caarlos0/env).
type envOverrides struct {
	// Env: AUTO_SOUTHWEST_CHECK_IN_CHECK_FARES
	CheckFares string `env:"CHECK_FARES"`
	// Env: AUTO_SOUTHWEST_CHECK_IN_BROWSER_PATH
	BrowserPath string `env:"BROWSER_PATH"`
	// Env: AUTO_SOUTHWEST_CHECK_IN_RETRIEVAL_INTERVAL
	RetrievalInterval *int `env:"RETRIEVAL_INTERVAL"`

	// Both must be set for an account to be added.
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// All three must be set for a reservation to be added.
	ConfirmationNumber string `env:"CONFIRMATION_NUMBER"`
	FirstName          string `env:"FIRST_NAME"`
	LastName           string `env:"LAST_NAME"`

	// Env: AUTO_SOUTHWEST_CHECK_IN_NOTIFICATION_24_HOUR_TIME
	Notification24HourTime *truthy `env:"NOTIFICATION_24_HOUR_TIME"`
	// Env: AUTO_SOUTHWEST_CHECK_IN_NOTIFICATION_URL
	NotificationURL string `env:"NOTIFICATION_URL"`
	// Env: AUTO_SOUTHWEST_CHECK_IN_NOTIFICATION_LEVEL
	NotificationLevel *int `env:"NOTIFICATION_LEVEL"`
}

// parseEnv populates an envOverrides from environ using caarlos0/env.
// A nil environ means the process environment.
//
// Values that cannot be converted (e.g. a non-numeric retrieval interval)
// are reported as ErrInvalidType.
func parseEnv(environ map[string]string) (*envOverrides, error) {
	overrides := &envOverrides{}
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(overrides, opts); err != nil {
		return nil, fmt.Errorf("%w: error getting env configs: %w", ErrInvalidType, err)
	}
	return overrides, nil
}

// source converts the overrides into a Source holding only the settings
// that were actually provided.
func (o *envOverrides) source() Source {
	src := Source{}

	if o.CheckFares != "" {
		// check_fares takes either a boolean or an option name.
		if enabled, err := parseTruthy(o.CheckFares); err == nil {
			src[keyCheckFares] = enabled
		} else {
			src[keyCheckFares] = o.CheckFares
		}
	}
	if o.BrowserPath != "" {
		src[keyBrowserPath] = o.BrowserPath
	}
	if o.RetrievalInterval != nil {
		src[keyRetrievalInterval] = *o.RetrievalInterval
	}
	if o.Username != "" && o.Password != "" {
		src[keyAccounts] = []any{
			map[string]any{fieldUsername: o.Username, fieldPassword: o.Password},
		}
	}
	if o.ConfirmationNumber != "" && o.FirstName != "" && o.LastName != "" {
		src[keyReservations] = []any{
			map[string]any{
				fieldConfirmationNumber: o.ConfirmationNumber,
				fieldFirstName:          o.FirstName,
				fieldLastName:           o.LastName,
			},
		}
	}
	if o.Notification24HourTime != nil {
		src[keyNotification24HourTime] = bool(*o.Notification24HourTime)
	}
	if o.NotificationURL != "" {
		src[keyNotificationURLs] = o.NotificationURL
	}
	if o.NotificationLevel != nil {
		src[keyNotificationLevel] = *o.NotificationLevel
	}

	return src
}

// overlay merges overrides into dst. Scalars replace file values; accounts
// and reservations from the environment are appended after the file's, which
// must then be lists themselves.
func overlay(dst Source, overrides Source) error {
	for _, key := range []string{keyAccounts, keyReservations} {
		if _, ok := overrides[key]; !ok {
			continue
		}
		if v, ok := dst[key]; ok {
			if _, err := asList(key, v); err != nil {
				return err
			}
		}
	}

	if err := mergo.Merge(&dst, overrides, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
		return fmt.Errorf("%w: error merging env configs: %w", ErrInvalidType, err)
	}
	return nil
}

// truthy is a boolean environment value spelled the way people usually
// write them in shell and compose files.
type truthy bool

// UnmarshalText implements encoding.TextUnmarshaler for caarlos0/env.
func (t *truthy) UnmarshalText(text []byte) error {
	v, err := parseTruthy(string(text))
	if err != nil {
		return err
	}
	*t = truthy(v)
	return nil
}

func parseTruthy(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not a boolean value", s)
	}
}
