package config

import (
	"context"

	"github.com/MKhiriev/go-checkin/internal/logger"
)

// Options controls where [Load] reads from.
// The zero value loads DefaultPath with the process environment.
type Options struct {
	// Path is the configuration file to read. Empty means DefaultPath.
	Path string

	// Environ replaces the process environment when non-nil.
	Environ map[string]string

	// Logger receives debug output about every applied setting.
	// Nil disables logging.
	Logger *logger.Logger

	// AccountParser and ReservationParser replace the default entry
	// decoders, ParseAccount and ParseReservation, when non-nil.
	AccountParser     AccountParser
	ReservationParser ReservationParser
}

// Load builds the configuration from the config file and the environment.
//
// The returned error matches [ErrInvalidType] when a value has the wrong
// type or a required value is missing or empty. Read and JSON syntax
// failures are returned wrapped. Load never terminates the process and
// never returns a partially parsed Config alongside an error.
func Load(ctx context.Context, opts Options) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, err
	}

	path := opts.Path
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return Config{}, err
		}
	}

	return newConfigBuilder(opts.Logger, opts.AccountParser, opts.ReservationParser).
		withFile(path).
		withEnv(opts.Environ).
		build()
}
