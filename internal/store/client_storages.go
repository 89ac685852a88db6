package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// InMemoryDSN selects the process-local key-value store instead of SQLite.
const InMemoryDSN = ":memory:"

// ClientStorages groups the client-side storage components into a single
// value passed to the service layer.
type ClientStorages struct {
	// Notes persists the note collection under the configured key.
	Notes NoteStorage

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [NoteStorage] over the kv table using cfg.Key.
//
// The DSN ":memory:" skips SQLite entirely; notes then live only as long as
// the process.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if cfg.DB.DSN == InMemoryDSN {
		return &ClientStorages{
			Notes: NewNoteStorage(NewMemoryKeyValueStore(), cfg.Key, logger),
		}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Notes: NewNoteStorage(NewSQLiteKeyValueStore(db, logger), cfg.Key, logger),
		db:    db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
