package models

import "strconv"

// NotificationLevel is the minimum severity a message must have to be sent
// to the configured notification URLs.
// Values follow the usual logging scale, so any integer is a valid level.
type NotificationLevel int

const (
	// NotificationLevelInfo sends every notification, including successful
	// check-ins and scheduled flights.
	NotificationLevelInfo NotificationLevel = 20

	// NotificationLevelWarning sends warnings and errors only.
	NotificationLevelWarning NotificationLevel = 30

	// NotificationLevelError sends errors only.
	NotificationLevelError NotificationLevel = 40
)

// String returns a human-readable name for well-known levels and the bare
// number otherwise.
func (l NotificationLevel) String() string {
	switch l {
	case NotificationLevelInfo:
		return "info"
	case NotificationLevelWarning:
		return "warning"
	case NotificationLevelError:
		return "error"
	default:
		return strconv.Itoa(int(l))
	}
}
