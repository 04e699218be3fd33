package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process ContentStore used by tests and local runs.
// Fetch returns documents in insertion order. Unlike the remote backend
// it rejects a second userRegistration with an email that already
// exists, so the registration read-then-write race cannot hide in tests.
type Memory struct {
	mu   sync.Mutex
	docs []Document

	// Error overrides for exercising failure paths. When set, the
	// matching operation fails with the given error.
	CreateErr error
	FetchErr  error
	PatchErr  error
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Create(ctx context.Context, docType string, fields Fields) (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return Document{}, m.CreateErr
	}
	if docType == TypeUserRegistration {
		email, _ := fields["email"].(string)
		for _, d := range m.docs {
			if d.Type == TypeUserRegistration && d.String("email") == email {
				return Document{}, ErrDuplicateDocument
			}
		}
	}
	doc := Document{ID: uuid.NewString(), Type: docType, Fields: cloneFields(fields)}
	m.docs = append(m.docs, doc)
	return doc, nil
}

func (m *Memory) Fetch(ctx context.Context, docType string, filter Fields) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	var out []Document
	for _, d := range m.docs {
		if d.Type != docType {
			continue
		}
		if matches(d, filter) {
			out = append(out, copyDocument(d))
		}
	}
	return out, nil
}

func (m *Memory) FetchByID(ctx context.Context, docType, id string) (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FetchErr != nil {
		return Document{}, m.FetchErr
	}
	for _, d := range m.docs {
		if d.Type == docType && d.ID == id {
			return copyDocument(d), nil
		}
	}
	return Document{}, ErrNotFound
}

func (m *Memory) Patch(id string) Patch {
	return &memoryPatch{store: m, id: id, set: Fields{}}
}

// Documents returns a snapshot of every stored document of one type, in
// insertion order.
func (m *Memory) Documents(docType string) []Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Document
	for _, d := range m.docs {
		if d.Type == docType {
			out = append(out, copyDocument(d))
		}
	}
	return out
}

type memoryPatch struct {
	store *Memory
	id    string
	set   Fields
}

func (p *memoryPatch) Set(fields Fields) Patch {
	for k, v := range fields {
		p.set[k] = v
	}
	return p
}

func (p *memoryPatch) Commit(ctx context.Context) error {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()
	if p.store.PatchErr != nil {
		return p.store.PatchErr
	}
	for i := range p.store.docs {
		if p.store.docs[i].ID == p.id {
			for k, v := range p.set {
				p.store.docs[i].Fields[k] = v
			}
			return nil
		}
	}
	return ErrNotFound
}

func matches(d Document, filter Fields) bool {
	for k, want := range filter {
		if d.Fields[k] != want {
			return false
		}
	}
	return true
}

func copyDocument(d Document) Document {
	return Document{ID: d.ID, Type: d.Type, Fields: cloneFields(d.Fields)}
}
