package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

const (
	kvTable       = "kv"
	kvKeyColumn   = "key"
	kvValueColumn = "value"

	kvUpsertSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value"
)

type sqliteKeyValueStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteKeyValueStore returns a [KeyValueStore] over the migrated kv table.
func NewSQLiteKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	return &sqliteKeyValueStore{
		db:     db,
		logger: logger,
	}
}

func (s *sqliteKeyValueStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}

	query, args, err := sq.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Get").
			Str("key", key).
			Msg("failed to read value")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *sqliteKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if value == nil {
		value = []byte{}
	}

	query, args, err := sq.Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn).
		Values(key, value).
		Suffix(kvUpsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Set").
			Str("key", key).
			Int("size", len(value)).
			Msg("failed to write value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
