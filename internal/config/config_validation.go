// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, errNoTokenSignKey)
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, errNonPositiveTokenDuration)
	}
	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, errNoServerAddress)
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, errNoDatabaseDSN)
	}

	return errors.Join(errs...)
}
