package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyText   = errors.New("note text is empty")
	ErrInvalidID   = errors.New("invalid note ID")
	ErrDuplicateID = errors.New("duplicate note ID")
)
