// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// configValidator checks the `validate` struct tags of Config and the models
// it embeds. Field names in reports use the JSON key names.
var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validate checks that the finalized [Config] satisfies all invariants
// before it is handed to the caller.
//
// Decoding already rejects values of the wrong type; validate guards the
// invariants of the finished value (retrieval interval lower bound, non-empty
// credentials, known check-fares option).
//
// Returns nil if the configuration is valid, or an error matching
// ErrInvalidType otherwise.
func (c *Config) validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidType, err)
	}
	return nil
}
