package models

// Account is a set of login credentials the bot signs in with to fetch
// reservations.
// Username and Password are required and never empty once parsed from
// configuration.
type Account struct {
	// Username is the account login.
	Username string `json:"username" validate:"required"`

	// Password is the secret paired with Username.
	// It must never be written to logs.
	Password string `json:"password" validate:"required"`

	// Settings is set when the entry overrides any global setting.
	// Nil means the account uses the global settings unchanged.
	Settings *Settings `json:"settings,omitempty"`
}

// Clone returns a copy of the account that shares no memory with it.
func (a Account) Clone() Account {
	a.Settings = cloneSettings(a.Settings)
	return a
}

// Redacted returns a copy of the account with the password masked,
// suitable for logs and diagnostic output.
func (a Account) Redacted() Account {
	a = a.Clone()
	if a.Password != "" {
		a.Password = RedactedValue
	}
	return a
}

// RedactedValue replaces secrets in diagnostic output.
const RedactedValue = "********"
