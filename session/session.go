// Package session holds the logged-in user's public projection in a
// single slot: one session at a time, alive until an explicit logout or
// until the underlying storage is cleared. The store is injected so
// tests can substitute the in-memory adapter for Redis.
package session

import (
	"context"

	"RealtySiteAPI/models"
)

// Store is one session slot. Save overwrites the slot, Get returns the
// occupant or nil when the slot is empty, Clear empties it.
type Store interface {
	Save(ctx context.Context, user models.SessionUser) error
	Get(ctx context.Context) (*models.SessionUser, error)
	Clear(ctx context.Context) error
}

// Factory binds a Store to one authenticated principal's slot. The HTTP
// layer derives the principal from the verified token subject.
type Factory func(userID string) Store

// IsAuthenticated reports whether the slot is occupied.
func IsAuthenticated(ctx context.Context, s Store) bool {
	user, err := s.Get(ctx)
	return err == nil && user != nil
}

// Key is the Redis key naming a principal's session slot.
func Key(userID string) string {
	return "session:" + userID
}
