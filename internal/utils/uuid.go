// Package utils holds small helpers shared by the client packages.
package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for log correlation. Version 7 ids sort by
// creation time, which keeps a log file readable in event order.
type UUIDGenerator struct {
}

// NewUUIDGenerator returns a generator; it holds no state and is safe for
// concurrent use.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new event id. If the v7 clock source fails it falls back
// to a random v4 id, so a log entry is never left without one.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
