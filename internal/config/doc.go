// Package config loads, validates, and normalizes the check-in configuration.
//
// Configuration is assembled from two sources, later sources overriding
// earlier ones:
//  1. The JSON config file (config.json in the installation root unless a
//     path is given). A missing file is not an error and yields defaults.
//  2. Environment variables prefixed with AUTO_SOUTHWEST_CHECK_IN_.
//
// Every recognized value is decoded explicitly by kind, so a value of the
// wrong JSON type is reported as [ErrInvalidType] instead of being coerced.
// The result is a [Config] value that callers treat as read-only.
//
// The main entry point is [Load]. It never exits the process; deciding what
// to do with an invalid configuration is up to the caller.
package config
