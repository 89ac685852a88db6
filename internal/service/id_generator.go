// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"
)

type clockIDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewClockIDGenerator returns an [IDGenerator] deriving ids from the wall
// clock in milliseconds. Ids that would collide with an earlier id, because
// of the clock resolution or a clock step back, are bumped to the next free
// value, so they stay unique and creation-ordered.
func NewClockIDGenerator() IDGenerator {
	return newClockIDGenerator(time.Now)
}

func newClockIDGenerator(now func() time.Time) *clockIDGenerator {
	return &clockIDGenerator{now: now}
}

func (g *clockIDGenerator) Next(maxExisting int64) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if floor := max(g.last, maxExisting); id <= floor {
		id = floor + 1
	}
	g.last = id

	return id
}
