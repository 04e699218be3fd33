// Package store defines the content-store contract the site core talks
// to: typed documents addressed by a documentType tag, with create,
// equality-filtered fetch, fetch-by-id and partial patch. Adapters are
// constructor-injected so the core never sees a concrete backend.
package store

import (
	"context"
	"errors"
)

// Document types the core writes and reads.
const (
	TypeUserRegistration = "userRegistration"
	TypeLoginAttempt     = "loginAttempt"
	TypeLead             = "lead"
	TypePropertyInquiry  = "propertyInquiry"
	TypeHomeValuation    = "homeValuation"
)

var (
	ErrNotFound          = errors.New("document not found")
	ErrDuplicateDocument = errors.New("duplicate document")
)

// Fields is a flat set of document field values. Values are strings,
// booleans or numbers; timestamps are stored as RFC3339 strings.
type Fields map[string]any

type Document struct {
	ID     string
	Type   string
	Fields Fields
}

// String returns the named field as a string, or "" when absent or not
// a string.
func (d Document) String(key string) string {
	s, _ := d.Fields[key].(string)
	return s
}

// Bool returns the named field as a bool, or false when absent.
func (d Document) Bool(key string) bool {
	b, _ := d.Fields[key].(bool)
	return b
}

// ContentStore is the external document backend. The core only issues
// equality queries: a documentType tag plus simple field equality.
type ContentStore interface {
	Create(ctx context.Context, docType string, fields Fields) (Document, error)
	Fetch(ctx context.Context, docType string, filter Fields) ([]Document, error)
	FetchByID(ctx context.Context, docType, id string) (Document, error)
	Patch(id string) Patch
}

// Patch is a partial update of one document: accumulate fields with Set,
// then Commit.
type Patch interface {
	Set(fields Fields) Patch
	Commit(ctx context.Context) error
}
