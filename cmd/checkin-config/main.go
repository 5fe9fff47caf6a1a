package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-checkin/internal/config"
	"github.com/MKhiriev/go-checkin/internal/logger"
	"github.com/MKhiriev/go-checkin/models"
)

const appName = "checkin-config"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run loads the configuration and returns the process exit code.
// Logs and errors go to stderr; --print output goes to stdout.
func run(args []string, stdout, stderr io.Writer) int {
	flags, err := config.ParseFlags(appName, args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	printBuildInfo(stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.New(stderr, appName).Verbose(flags.Verbose)

	cfg, err := config.Load(context.Background(), config.Options{
		Path:   flags.ConfigPath,
		Logger: log,
	})
	if err != nil {
		fmt.Fprintln(stderr, renderConfigError(err))
		return 1
	}

	log.Info().
		Int("accounts", len(cfg.Accounts)).
		Int("reservations", len(cfg.Reservations)).
		Dur("retrieval_period", cfg.RetrievalPeriod()).
		Stringer("notification_level", cfg.NotificationLevel).
		Msg("Configuration loaded")

	for _, account := range cfg.Accounts {
		logEntrySettings(log, "account", account.Username, cfg.SettingsFor(account.Settings))
	}
	for _, reservation := range cfg.Reservations {
		logEntrySettings(log, "reservation", reservation.ConfirmationNumber, cfg.SettingsFor(reservation.Settings))
	}

	if flags.Print {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err = enc.Encode(cfg.Redacted()); err != nil {
			log.Error().Err(err).Msg("error printing configuration")
			return 1
		}
	}

	return 0
}

// logEntrySettings reports the resolved settings of one account or
// reservation at debug level.
func logEntrySettings(log *logger.Logger, kind, id string, settings models.Settings) {
	l := log.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str(kind, id)
	})

	l.Debug().
		Dur("retrieval_period", settings.RetrievalPeriod()).
		Stringer("notification_level", settings.NotificationLevel).
		Int("notification_urls", len(settings.NotificationURLs)).
		Str("check_fares", string(settings.CheckFares)).
		Msg("Resolved settings")
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(w, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(w, "Build commit: %s\n", info.BuildCommit())
}
