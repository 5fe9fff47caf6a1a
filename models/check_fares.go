package models

// CheckFaresOption controls whether the bot looks for lower fares on booked
// flights.
type CheckFaresOption string

const (
	// CheckFaresNo disables fare checking.
	CheckFaresNo CheckFaresOption = "no"

	// CheckFaresSameFlight checks fares on the booked flight only.
	CheckFaresSameFlight CheckFaresOption = "same_flight"

	// CheckFaresSameDayFlight checks fares on every flight of the same day
	// and route.
	CheckFaresSameDayFlight CheckFaresOption = "same_day_flight"
)

// allCheckFaresOptions lists every accepted option.
var allCheckFaresOptions = []CheckFaresOption{
	CheckFaresNo,
	CheckFaresSameFlight,
	CheckFaresSameDayFlight,
}

// ParseCheckFaresOption maps s to a known option.
// The second return value is false when s is not one of the accepted options.
func ParseCheckFaresOption(s string) (CheckFaresOption, bool) {
	for _, opt := range allCheckFaresOptions {
		if string(opt) == s {
			return opt, true
		}
	}
	return "", false
}

// CheckFaresFromBool maps the boolean shorthand to an option:
// true enables same-flight checking, false disables it.
func CheckFaresFromBool(enabled bool) CheckFaresOption {
	if enabled {
		return CheckFaresSameFlight
	}
	return CheckFaresNo
}
