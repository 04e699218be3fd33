package session

import (
	"context"
	"sync"

	"RealtySiteAPI/models"
)

// MemoryStore is the in-process session slot used in tests.
type MemoryStore struct {
	mu   sync.Mutex
	user *models.SessionUser
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(ctx context.Context, user models.SessionUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.user = &u
	return nil
}

func (s *MemoryStore) Get(ctx context.Context) (*models.SessionUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}
