package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the backend base URL used by the client.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDBView contains local database connection settings for the client.
type ClientDBView struct {
	// DSN is the SQLite file path of the local store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDBView
}

// ClientOnboarding contains wizard timing settings for the client.
type ClientOnboarding struct {
	// AutosaveInterval defines how often the draft autosave job runs.
	AutosaveInterval time.Duration
	// DraftTTL defines how long a saved draft stays resumable.
	DraftTTL time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Onboarding contains wizard timing settings.
	Onboarding ClientOnboarding
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDBView{
				DSN: cfg.Storage.ClientDB.DSN,
			},
		},
		Onboarding: ClientOnboarding{
			AutosaveInterval: cfg.Onboarding.AutosaveInterval,
			DraftTTL:         cfg.Onboarding.DraftTTL,
		},
	}

	return clientCfg, clientCfg.validate()
}
