// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-checkin/models"
)

// FileName is the name of the configuration file looked up in the
// installation root.
const FileName = "config.json"

// Defaults applied when a setting is absent from every source.
const (
	DefaultNotificationLevel = models.NotificationLevelWarning
	DefaultRetrievalInterval = 24
	DefaultCheckFares        = models.CheckFaresSameFlight

	// MinRetrievalInterval is the smallest accepted retrieval interval;
	// lower values are raised to it.
	MinRetrievalInterval = 1
)

// Config is the finalized, validated configuration.
//
// A Config is built once at startup by [Load] and treated as read-only
// afterwards. Load hands out slices that are not shared with any other
// Config, so a caller may keep its value without defensive copies.
type Config struct {
	// NotificationURLs is the notification service URL. Empty means
	// notifications are disabled.
	NotificationURLs string `json:"notification_urls"`

	// NotificationLevel is the minimum level a notification must have to be
	// sent.
	NotificationLevel models.NotificationLevel `json:"notification_level"`

	// Notification24HourTime switches notification timestamps to 24-hour
	// format.
	Notification24HourTime bool `json:"notification_24_hour_time"`

	// HealthchecksURL is pinged after every retrieval when set.
	HealthchecksURL string `json:"healthchecks_url,omitempty"`

	// RetrievalInterval is the number of hours between reservation
	// retrievals. Always at least MinRetrievalInterval.
	RetrievalInterval int `json:"retrieval_interval" validate:"min=1"`

	// BrowserPath overrides the browser executable used for check-in.
	BrowserPath string `json:"browser_path,omitempty"`

	// CheckFares selects which flights are checked for lower fares.
	CheckFares models.CheckFaresOption `json:"check_fares" validate:"oneof=no same_flight same_day_flight"`

	// Accounts are the credentials to retrieve reservations for, in file
	// order followed by any account supplied through the environment.
	Accounts []models.Account `json:"accounts" validate:"dive"`

	// Reservations are individual bookings to check in for.
	Reservations []models.Reservation `json:"reservations" validate:"dive"`
}

// Default returns the configuration used when no source sets anything.
func Default() Config {
	return Config{
		NotificationLevel: DefaultNotificationLevel,
		RetrievalInterval: DefaultRetrievalInterval,
		CheckFares:        DefaultCheckFares,
		Accounts:          []models.Account{},
		Reservations:      []models.Reservation{},
	}
}

// RetrievalPeriod returns the global retrieval interval as a duration.
func (c Config) RetrievalPeriod() time.Duration {
	return c.Settings().RetrievalPeriod()
}

// Settings returns the global settings every account and reservation starts
// from. HealthchecksURL is left empty as it is never inherited.
func (c Config) Settings() models.Settings {
	var urls []string
	if c.NotificationURLs != "" {
		urls = []string{c.NotificationURLs}
	}
	return models.Settings{
		NotificationURLs:       urls,
		NotificationLevel:      c.NotificationLevel,
		Notification24HourTime: c.Notification24HourTime,
		RetrievalInterval:      c.RetrievalInterval,
		CheckFares:             c.CheckFares,
	}
}

// SettingsFor resolves the settings of an account or reservation: its own
// when it overrides any, the global ones otherwise.
func (c Config) SettingsFor(entry *models.Settings) models.Settings {
	if entry != nil {
		return entry.Clone()
	}
	return c.Settings()
}

// Redacted returns a copy of c with every password masked.
func (c Config) Redacted() Config {
	out := c.clone()
	for i := range out.Accounts {
		out.Accounts[i] = out.Accounts[i].Redacted()
	}
	return out
}

// clone returns a copy of c that shares no slices with it.
func (c Config) clone() Config {
	out := c
	out.Accounts = make([]models.Account, 0, len(c.Accounts))
	for _, a := range c.Accounts {
		out.Accounts = append(out.Accounts, a.Clone())
	}
	out.Reservations = make([]models.Reservation, 0, len(c.Reservations))
	for _, r := range c.Reservations {
		out.Reservations = append(out.Reservations, r.Clone())
	}
	return out
}

// DefaultPath returns the location of the configuration file: FileName in
// the installation root, which is the parent of the directory holding the
// running executable (<root>/bin/checkin-config reads <root>/config.json).
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("error locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return installPath(exe), nil
}

func installPath(exe string) string {
	root := filepath.Dir(filepath.Dir(exe))
	return filepath.Join(root, FileName)
}
