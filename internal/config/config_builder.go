package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-checkin/internal/logger"
)

// configBuilder assembles a Source from the configured inputs and turns it
// into a finalized Config. Errors are accumulated so every step can be
// chained; build reports them all.
type configBuilder struct {
	source Source
	parser *parser
	log    *logger.Logger
	err    error
}

func newConfigBuilder(log *logger.Logger, accounts AccountParser, reservations ReservationParser) *configBuilder {
	if log == nil {
		log = logger.Nop()
	}
	return &configBuilder{
		source: Source{},
		parser: newParser(log, accounts, reservations),
		log:    log,
	}
}

// withFile reads the JSON file at path and merges it into the source.
func (b *configBuilder) withFile(path string) *configBuilder {
	b.log.Debug().Str("path", path).Msg("Reading the configuration file")

	src, found, err := readSource(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if !found {
		b.log.Debug().Str("path", path).Msg("No configuration file found. Using defaults")
		return b
	}

	for key, value := range src {
		b.source[key] = value
	}
	return b
}

// withEnv overlays the AUTO_SOUTHWEST_CHECK_IN_* variables from environ.
// A nil environ means the process environment.
func (b *configBuilder) withEnv(environ map[string]string) *configBuilder {
	b.log.Debug().Msg("Reading configuration from environment variables")

	overrides, err := parseEnv(environ)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if err = overlay(b.source, overrides.source()); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

// build parses the assembled source over the defaults and validates the
// result. Nothing partially parsed is ever returned.
func (b *configBuilder) build() (Config, error) {
	if b.err != nil {
		return Config{}, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	draft := Default()
	if err := b.parser.parse(b.source, &draft); err != nil {
		return Config{}, err
	}
	if err := draft.validate(); err != nil {
		return Config{}, err
	}

	return draft.clone(), nil
}
