package store

import "errors"

// Sentinel errors returned by the storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCorruptState is returned by [noteStorage.LoadStrict] when the stored
	// collection cannot be decoded. [NoteStorage.Load] recovers from it by
	// returning an empty collection.
	ErrCorruptState = errors.New("stored note collection is corrupt")

	// ErrEmptyKey is returned when a key-value operation is called with an
	// empty key.
	ErrEmptyKey = errors.New("empty store key")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
