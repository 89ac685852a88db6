package config

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses the client flags from the process command line.
//
// Flags:
//
//	-d SQLite DSN (database file path)
//	-k store key holding the note collection
//	-log log file path
//	-labels row label language (en, es)
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		databaseDSN    string
		storageKey     string
		logFile        string
		labels         string
		jsonConfigPath string
	)

	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN (database file path)")
	fs.StringVar(&storageKey, "k", "", "Store key holding the note collection")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.StringVar(&labels, "labels", "", "Row label language: en or es")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Labels: labels,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Key: storageKey,
		},
		Log: Log{
			File: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
