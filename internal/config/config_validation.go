// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Fallback values applied by applyDefaults when a field is left unset by
// every configuration source.
const (
	DefaultServerAddress    = "localhost:8080"
	DefaultBaseURL          = "http://localhost:8080"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultAutosaveInterval = 30 * time.Second
	DefaultDraftTTL         = 24 * time.Hour
	DefaultTokenDuration    = 24 * time.Hour
	DefaultTokenIssuer      = "pathforge"
)

// applyDefaults fills zero-valued fields with their documented defaults.
// Called after all sources are merged and before validation.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultServerAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Onboarding.AutosaveInterval == 0 {
		cfg.Onboarding.AutosaveInterval = DefaultAutosaveInterval
	}
	if cfg.Onboarding.DraftTTL == 0 {
		cfg.Onboarding.DraftTTL = DefaultDraftTTL
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
}

// validate checks the merged [StructuredConfig]. Both binaries share this
// container, so required-field checks live in the per-role views: the client
// view validates below, the server storage layer rejects an empty DSN when
// opening the database.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Onboarding.AutosaveInterval <= 0 || cfg.Onboarding.DraftTTL <= 0 {
		return ErrInvalidOnboardingConfigs
	}

	return nil
}
