// Package docstore is the storage capability every repository is written
// against. A Store keeps schemaless documents grouped in named collections
// and addressed by a string id.
package docstore

import (
	"context"
	"errors"
	"fmt"
)

// IDField is the key every stored document carries its id under.
const IDField = "id"

var (
	// ErrNotFound is returned when no document exists for an id.
	ErrNotFound = errors.New("document not found")
	// ErrAlreadyExists is returned by Insert when the id is taken.
	ErrAlreadyExists = errors.New("document already exists")
)

// Document is a single stored record.
type Document map[string]interface{}

// ID returns the id held by the document, or "" when it has none.
func (d Document) ID() string {
	if v, ok := d[IDField].(string); ok {
		return v
	}
	return ""
}

// Store is implemented by every storage backend.
type Store interface {
	// Get returns the document with the given id.
	Get(ctx context.Context, collection, id string) (Document, error)
	// List returns at most limit documents in insertion order. A limit of
	// zero or less means no limit.
	List(ctx context.Context, collection string, limit int) ([]Document, error)
	// FindByField returns every document whose top level field equals value.
	FindByField(ctx context.Context, collection, field string, value interface{}) ([]Document, error)
	// Insert stores a new document and fails with ErrAlreadyExists if the id is taken.
	Insert(ctx context.Context, collection, id string, doc Document) error
	// Replace overwrites an existing document and fails with ErrNotFound otherwise.
	Replace(ctx context.Context, collection, id string, doc Document) error
	// Upsert writes the document whether or not it already exists.
	Upsert(ctx context.Context, collection, id string, doc Document) error
	// Delete removes a document and fails with ErrNotFound if it is absent.
	Delete(ctx context.Context, collection, id string) error
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the backend's resources.
	Close(ctx context.Context) error
}

// withID returns a shallow copy of doc with its id field set.
func withID(doc Document, id string) Document {
	out := make(Document, len(doc)+1)
	for k, v := range doc {
		out[k] = v
	}
	out[IDField] = id
	return out
}

func validateKey(collection, id string) error {
	if collection == "" {
		return fmt.Errorf("docstore: empty collection name")
	}
	if id == "" {
		return fmt.Errorf("docstore: empty document id")
	}
	return nil
}
