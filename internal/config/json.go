package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted by
// the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Labels string `json:"labels"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Key string `json:"key"`
	} `json:"storage,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Labels: jsonCfg.App.Labels,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Key: jsonCfg.Storage.Key,
		},
		Log: Log{
			File: jsonCfg.Log.File,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
