package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

func newMockKV(t *testing.T) (KeyValueStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return NewSQLiteKeyValueStore(&DB{DB: db, logger: l}, l), mock
}

func newFileKV(t *testing.T) KeyValueStore {
	t.Helper()
	l := logger.Nop()
	db, err := NewConnectSQLite(context.Background(), config.ClientDB{
		DSN: filepath.Join(t.TempDir(), "data", "notes.db"),
	}, l)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	return NewSQLiteKeyValueStore(db, l)
}

func TestSQLiteKV_Get_Found(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = ?")).
		WithArgs("notes").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

	value, found, err := kv.Get(context.Background(), "notes")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[]`), value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Get_NotFound(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs("notes").
		WillReturnError(sql.ErrNoRows)

	value, found, err := kv.Get(context.Background(), "notes")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestSQLiteKV_Get_QueryError(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs("notes").
		WillReturnError(errors.New("disk I/O error"))

	_, _, err := kv.Get(context.Background(), "notes")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLiteKV_Set_Upserts(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv (key,value) VALUES (?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")).
		WithArgs("notes", []byte(`[1]`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, kv.Set(context.Background(), "notes", []byte(`[1]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Set_ExecError(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectExec("INSERT INTO kv").
		WillReturnError(errors.New("database is locked"))

	err := kv.Set(context.Background(), "notes", []byte(`[]`))
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteKV_EmptyKey(t *testing.T) {
	kv, _ := newMockKV(t)
	ctx := context.Background()

	_, _, err := kv.Get(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.ErrorIs(t, kv.Set(ctx, "", nil), ErrEmptyKey)
}

// TestSQLiteKV_File runs the store against a real SQLite file.
func TestSQLiteKV_File(t *testing.T) {
	kv := newFileKV(t)
	ctx := context.Background()

	_, found, err := kv.Get(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "notes", []byte(`first`)))
	require.NoError(t, kv.Set(ctx, "notes", []byte(`second`)))

	value, found, err := kv.Get(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", string(value))
}
