package models

import (
	"slices"
	"time"
)

// Settings are the check-in settings resolved for a single account or
// reservation. An entry starts from the global settings and may override any
// of them in its own JSON object.
type Settings struct {
	// NotificationURLs holds the global notification URL, if any, followed
	// by the one set on the entry.
	NotificationURLs []string `json:"notification_urls"`

	NotificationLevel      NotificationLevel `json:"notification_level"`
	Notification24HourTime bool              `json:"notification_24_hour_time"`

	// HealthchecksURL is never inherited; only the entry itself can set it.
	HealthchecksURL string `json:"healthchecks_url,omitempty"`

	RetrievalInterval int              `json:"retrieval_interval" validate:"min=1"`
	CheckFares        CheckFaresOption `json:"check_fares" validate:"oneof=no same_flight same_day_flight"`
}

// RetrievalPeriod returns the retrieval interval as a duration.
func (s Settings) RetrievalPeriod() time.Duration {
	return time.Duration(s.RetrievalInterval) * time.Hour
}

// Clone returns a copy of s that shares no memory with it.
func (s Settings) Clone() Settings {
	s.NotificationURLs = slices.Clone(s.NotificationURLs)
	return s
}

func cloneSettings(s *Settings) *Settings {
	if s == nil {
		return nil
	}
	c := s.Clone()
	return &c
}
