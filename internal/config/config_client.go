package config

import (
	"fmt"

	"dario.cat/mergo"
)

// Supported values of [ClientApp.Labels].
const (
	LabelsEnglish = "en"
	LabelsSpanish = "es"
)

// Defaults applied to every field left empty by all configuration sources.
const (
	DefaultDSN        = "notes.db"
	DefaultStorageKey = "notes"
)

// ClientApp holds client-side presentation settings.
type ClientApp struct {
	// Labels selects the language of the row action labels.
	Labels string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Key is the store key holding the serialized note collection.
	Key string
}

// ClientLog holds client log output settings.
type ClientLog struct {
	// File is the log file path; empty selects the default location.
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains presentation settings.
	App ClientApp
	// Storage contains local store settings.
	Storage ClientStorage
	// Log contains log output settings.
	Log ClientLog
}

func defaultClientConfig() ClientConfig {
	return ClientConfig{
		App: ClientApp{Labels: LabelsEnglish},
		Storage: ClientStorage{
			DB:  ClientDB{DSN: DefaultDSN},
			Key: DefaultStorageKey,
		},
	}
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields relevant
// to the client runtime, fills unset fields with defaults and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Labels: cfg.App.Labels,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Key: cfg.Storage.Key,
		},
		Log: ClientLog{
			File: cfg.Log.File,
		},
	}

	if err := mergo.Merge(clientCfg, defaultClientConfig()); err != nil {
		return nil, fmt.Errorf("error applying default configs: %w", err)
	}

	return clientCfg, clientCfg.validate()
}
