// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or upload directory after defaulting).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a non-positive request body cap).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Defaults have already
// been applied, so empty required fields signal a genuinely broken source
// (e.g. a JSON file that sets a value to whitespace).
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.UploadDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadBytes <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
