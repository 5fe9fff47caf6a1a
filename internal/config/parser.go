package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-checkin/internal/logger"
	"github.com/MKhiriev/go-checkin/models"
)

// Recognized top-level keys.
const (
	keyNotificationURLs       = "notification_urls"
	keyNotificationLevel      = "notification_level"
	keyNotification24HourTime = "notification_24_hour_time"
	keyRetrievalInterval      = "retrieval_interval"
	keyAccounts               = "accounts"
	keyReservations           = "reservations"
	keyBrowserPath            = "browser_path"
	keyCheckFares             = "check_fares"
	keyHealthchecksURL        = "healthchecks_url"
)

// Keys of account and reservation entries.
const (
	fieldUsername           = "username"
	fieldPassword           = "password"
	fieldConfirmationNumber = "confirmationNumber"
	fieldFirstName          = "firstName"
	fieldLastName           = "lastName"
)

// parser applies a Source on top of a draft Config.
//
// Only keys present in the Source are touched; anything absent keeps the
// value already in the draft. The first invalid value aborts parsing.
type parser struct {
	log          *logger.Logger
	accounts     AccountParser
	reservations ReservationParser
}

func newParser(log *logger.Logger, accounts AccountParser, reservations ReservationParser) *parser {
	if log == nil {
		log = logger.Nop()
	}
	if accounts == nil {
		accounts = AccountParserFunc(ParseAccount)
	}
	if reservations == nil {
		reservations = ReservationParserFunc(ParseReservation)
	}
	return &parser{log: log, accounts: accounts, reservations: reservations}
}

func (p *parser) parse(src Source, cfg *Config) error {
	if v, ok := src[keyNotificationURLs]; ok {
		urls, err := asString(keyNotificationURLs, v)
		if err != nil {
			return err
		}
		cfg.NotificationURLs = urls
		p.log.Debug().Msg("A notification URL has been provided")
	}

	if v, ok := src[keyNotificationLevel]; ok {
		level, err := asInt(keyNotificationLevel, v)
		if err != nil {
			return err
		}
		cfg.NotificationLevel = models.NotificationLevel(level)
		p.log.Debug().Stringer("level", cfg.NotificationLevel).Msg("Setting notification level")
	}

	if v, ok := src[keyRetrievalInterval]; ok {
		interval, err := asInt(keyRetrievalInterval, v)
		if err != nil {
			return err
		}
		cfg.RetrievalInterval = p.clampInterval(interval)
		p.log.Debug().Int("hours", cfg.RetrievalInterval).Msg("Setting retrieval interval")
	}

	// Entries inherit the global settings, so those are complete before any
	// account or reservation is parsed.
	if err := p.parseExtras(src, cfg); err != nil {
		return err
	}

	if v, ok := src[keyAccounts]; ok {
		entries, err := asList(keyAccounts, v)
		if err != nil {
			return err
		}
		if err = p.parseAccounts(entries, cfg); err != nil {
			return err
		}
	}

	if v, ok := src[keyReservations]; ok {
		entries, err := asList(keyReservations, v)
		if err != nil {
			return err
		}
		if err = p.parseReservations(entries, cfg); err != nil {
			return err
		}
	}

	return nil
}

func (p *parser) clampInterval(hours int) int {
	if hours < MinRetrievalInterval {
		p.log.Warn().Int("hours", hours).
			Msgf("Setting '%s' to %d hour as the given value is too low", keyRetrievalInterval, MinRetrievalInterval)
		return MinRetrievalInterval
	}
	return hours
}

// parseExtras handles the settings that only tune check-in behavior.
func (p *parser) parseExtras(src Source, cfg *Config) error {
	if v, ok := src[keyNotification24HourTime]; ok {
		enabled, err := asBool(keyNotification24HourTime, v)
		if err != nil {
			return err
		}
		cfg.Notification24HourTime = enabled
		p.log.Debug().Bool("enabled", enabled).Msg("Setting notification 24 hour time")
	}

	if v, ok := src[keyBrowserPath]; ok {
		path, err := asString(keyBrowserPath, v)
		if err != nil {
			return err
		}
		cfg.BrowserPath = path
		p.log.Debug().Msg("Setting custom browser path")
	}

	if v, ok := src[keyHealthchecksURL]; ok {
		url, err := asString(keyHealthchecksURL, v)
		if err != nil {
			return err
		}
		cfg.HealthchecksURL = url
		p.log.Debug().Msg("A Healthchecks URL has been provided")
	}

	if v, ok := src[keyCheckFares]; ok {
		option, err := parseCheckFares(v)
		if err != nil {
			return err
		}
		cfg.CheckFares = option
		p.log.Debug().Str("option", string(option)).Msg("Setting check fares")
	}

	return nil
}

// parseAccounts decodes every entry of the accounts list.
//
// A non-object entry fails the whole list before any entry is parsed.
// Otherwise every entry goes through the AccountParser and has its setting
// overrides resolved, failures are collected, and accounts are appended only
// if all entries succeed.
func (p *parser) parseAccounts(entries []any, cfg *Config) error {
	objects, err := objectEntries(keyAccounts, entries)
	if err != nil {
		return err
	}

	accounts := make([]models.Account, 0, len(objects))
	var errs []error
	for i, entry := range objects {
		account, err := p.accounts.ParseAccount(entry)
		if err == nil {
			account.Settings, err = p.parseEntrySettings(entry, cfg)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", keyAccounts, i, err))
			continue
		}
		accounts = append(accounts, account)
	}
	if err = errors.Join(errs...); err != nil {
		return err
	}

	cfg.Accounts = append(cfg.Accounts, accounts...)
	p.log.Debug().Int("count", len(accounts)).Msg("Parsed accounts")
	return nil
}

// parseReservations follows the same rules as parseAccounts.
func (p *parser) parseReservations(entries []any, cfg *Config) error {
	objects, err := objectEntries(keyReservations, entries)
	if err != nil {
		return err
	}

	reservations := make([]models.Reservation, 0, len(objects))
	var errs []error
	for i, entry := range objects {
		reservation, err := p.reservations.ParseReservation(entry)
		if err == nil {
			reservation.Settings, err = p.parseEntrySettings(entry, cfg)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", keyReservations, i, err))
			continue
		}
		reservations = append(reservations, reservation)
	}
	if err = errors.Join(errs...); err != nil {
		return err
	}

	cfg.Reservations = append(cfg.Reservations, reservations...)
	p.log.Debug().Int("count", len(reservations)).Msg("Parsed reservations")
	return nil
}

// entrySettingKeys are the global settings an account or reservation entry
// may override.
var entrySettingKeys = []string{
	keyNotificationURLs,
	keyNotificationLevel,
	keyNotification24HourTime,
	keyRetrievalInterval,
	keyCheckFares,
	keyHealthchecksURL,
}

// parseEntrySettings resolves the settings of one account or reservation on
// top of the global ones in cfg. It returns nil when the entry overrides
// nothing. Values are checked with the same rules as the global keys.
func (p *parser) parseEntrySettings(entry map[string]any, cfg *Config) (*models.Settings, error) {
	if !slices.ContainsFunc(entrySettingKeys, func(key string) bool {
		_, ok := entry[key]
		return ok
	}) {
		return nil, nil
	}

	settings := cfg.Settings()

	if v, ok := entry[keyNotificationURLs]; ok {
		url, err := asString(keyNotificationURLs, v)
		if err != nil {
			return nil, err
		}
		if url != "" && !slices.Contains(settings.NotificationURLs, url) {
			settings.NotificationURLs = append(settings.NotificationURLs, url)
		}
	}

	if v, ok := entry[keyNotificationLevel]; ok {
		level, err := asInt(keyNotificationLevel, v)
		if err != nil {
			return nil, err
		}
		settings.NotificationLevel = models.NotificationLevel(level)
	}

	if v, ok := entry[keyNotification24HourTime]; ok {
		enabled, err := asBool(keyNotification24HourTime, v)
		if err != nil {
			return nil, err
		}
		settings.Notification24HourTime = enabled
	}

	if v, ok := entry[keyRetrievalInterval]; ok {
		interval, err := asInt(keyRetrievalInterval, v)
		if err != nil {
			return nil, err
		}
		settings.RetrievalInterval = p.clampInterval(interval)
	}

	if v, ok := entry[keyCheckFares]; ok {
		option, err := parseCheckFares(v)
		if err != nil {
			return nil, err
		}
		settings.CheckFares = option
	}

	if v, ok := entry[keyHealthchecksURL]; ok {
		url, err := asString(keyHealthchecksURL, v)
		if err != nil {
			return nil, err
		}
		settings.HealthchecksURL = url
	}

	p.log.Debug().Msg("Entry overrides global settings")
	return &settings, nil
}

func objectEntries(key string, entries []any) ([]map[string]any, error) {
	objects := make([]map[string]any, 0, len(entries))
	for i, entry := range entries {
		obj, err := asObject(fmt.Sprintf("%s[%d]", key, i), entry)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// ParseAccount decodes one account entry. Both "username" and "password"
// must be present non-empty strings.
func ParseAccount(entry map[string]any) (models.Account, error) {
	username, err := requiredString(entry, "account", fieldUsername)
	if err != nil {
		return models.Account{}, err
	}
	password, err := requiredString(entry, "account", fieldPassword)
	if err != nil {
		return models.Account{}, err
	}

	return models.Account{Username: username, Password: password}, nil
}

// ParseReservation decodes one reservation entry. "confirmationNumber",
// "firstName", and "lastName" must all be present non-empty strings.
func ParseReservation(entry map[string]any) (models.Reservation, error) {
	var (
		values [3]string
		err    error
	)
	for i, field := range []string{fieldConfirmationNumber, fieldFirstName, fieldLastName} {
		if values[i], err = requiredString(entry, "reservation", field); err != nil {
			return models.Reservation{}, err
		}
	}

	return models.Reservation{
		ConfirmationNumber: values[0],
		FirstName:          values[1],
		LastName:           values[2],
	}, nil
}

// parseCheckFares accepts the boolean shorthand or an option name.
func parseCheckFares(v any) (models.CheckFaresOption, error) {
	switch value := v.(type) {
	case bool:
		return models.CheckFaresFromBool(value), nil
	case string:
		if option, ok := models.ParseCheckFaresOption(value); ok {
			return option, nil
		}
		return "", &TypeError{
			Key:  keyCheckFares,
			Want: "a boolean or one of no, same_flight, same_day_flight",
			Got:  fmt.Sprintf("%q", value),
		}
	default:
		return "", typeError(keyCheckFares, "a boolean or a string", v)
	}
}
