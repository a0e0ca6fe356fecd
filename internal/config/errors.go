// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	errNoTokenSignKey           = errors.New("token sign key is not configured")
	errNonPositiveTokenDuration = errors.New("token duration must be positive")
	errNoServerAddress          = errors.New("server address is not configured")
	errNoDatabaseDSN            = errors.New("database DSN is not configured")
)
