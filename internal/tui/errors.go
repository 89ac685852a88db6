// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

var (
	errNilHandler = errors.New("tui: nil handler")
	errNoRow      = errors.New("no note selected")
)

// storeUnavailableCodes are the SQLite result codes meaning the note file
// cannot be used right now, as opposed to a bug in the request.
var storeUnavailableCodes = []sqlite3.ErrNo{
	sqlite3.ErrBusy,
	sqlite3.ErrLocked,
	sqlite3.ErrIoErr,
	sqlite3.ErrReadonly,
	sqlite3.ErrCantOpen,
	sqlite3.ErrFull,
}

// humanizeStoreError turns low-level storage failures into a short message
// for the error overlay.
func humanizeStoreError(err error) string {
	if err == nil {
		return ""
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		for _, code := range storeUnavailableCodes {
			if sqliteErr.Code == code {
				return "Note store is unavailable: " + err.Error()
			}
		}
	}

	return err.Error()
}
