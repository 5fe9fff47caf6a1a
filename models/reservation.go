package models

// Reservation identifies a single booking to check in for without signing in
// to an account.
type Reservation struct {
	// ConfirmationNumber is the booking reference.
	ConfirmationNumber string `json:"confirmationNumber" validate:"required"`

	// FirstName is the passenger's first name as it appears on the booking.
	FirstName string `json:"firstName" validate:"required"`

	// LastName is the passenger's last name as it appears on the booking.
	LastName string `json:"lastName" validate:"required"`

	// Settings is set when the entry overrides any global setting.
	Settings *Settings `json:"settings,omitempty"`
}

// Clone returns a copy of the reservation that shares no memory with it.
func (r Reservation) Clone() Reservation {
	r.Settings = cloneSettings(r.Settings)
	return r
}
