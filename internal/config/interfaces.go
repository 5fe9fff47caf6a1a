package config

//go:generate mockgen -source=interfaces.go -destination=../mock/config_parsers_mock.go -package=mock

import "github.com/MKhiriev/go-checkin/models"

// AccountParser decodes a single entry of the "accounts" list.
//
// The loader calls ParseAccount once per entry, in file order, and only for
// entries that are JSON objects.
type AccountParser interface {
	ParseAccount(entry map[string]any) (models.Account, error)
}

// ReservationParser decodes a single entry of the "reservations" list.
type ReservationParser interface {
	ParseReservation(entry map[string]any) (models.Reservation, error)
}

// AccountParserFunc adapts an ordinary function to [AccountParser].
type AccountParserFunc func(entry map[string]any) (models.Account, error)

// ParseAccount calls f(entry).
func (f AccountParserFunc) ParseAccount(entry map[string]any) (models.Account, error) {
	return f(entry)
}

// ReservationParserFunc adapts an ordinary function to [ReservationParser].
type ReservationParserFunc func(entry map[string]any) (models.Reservation, error)

// ParseReservation calls f(entry).
func (f ReservationParserFunc) ParseReservation(entry map[string]any) (models.Reservation, error) {
	return f(entry)
}
