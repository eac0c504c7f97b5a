package docstore

import (
	"context"
	"reflect"
	"sync"
)

// MemoryStore keeps documents in process memory. It is used for local runs
// and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
}

type memoryCollection struct {
	order []string
	docs  map[string]Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

func (s *MemoryStore) collection(name string, create bool) *memoryCollection {
	c, ok := s.collections[name]
	if !ok && create {
		c = &memoryCollection{docs: make(map[string]Document)}
		s.collections[name] = c
	}
	return c
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, collection, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.collection(collection, false)
	if c == nil {
		return nil, ErrNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyDocument(doc), nil
}

// List implements Store.
func (s *MemoryStore) List(ctx context.Context, collection string, limit int) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []Document{}
	c := s.collection(collection, false)
	if c == nil {
		return docs, nil
	}
	for _, id := range c.order {
		if limit > 0 && len(docs) >= limit {
			break
		}
		docs = append(docs, copyDocument(c.docs[id]))
	}
	return docs, nil
}

// FindByField implements Store.
func (s *MemoryStore) FindByField(ctx context.Context, collection, field string, value interface{}) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []Document{}
	c := s.collection(collection, false)
	if c == nil {
		return docs, nil
	}
	for _, id := range c.order {
		doc := c.docs[id]
		if v, ok := doc[field]; ok && reflect.DeepEqual(v, value) {
			docs = append(docs, copyDocument(doc))
		}
	}
	return docs, nil
}

// Insert implements Store.
func (s *MemoryStore) Insert(ctx context.Context, collection, id string, doc Document) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection, true)
	if _, ok := c.docs[id]; ok {
		return ErrAlreadyExists
	}
	c.docs[id] = copyDocument(withID(doc, id))
	c.order = append(c.order, id)
	return nil
}

// Replace implements Store.
func (s *MemoryStore) Replace(ctx context.Context, collection, id string, doc Document) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection, false)
	if c == nil {
		return ErrNotFound
	}
	if _, ok := c.docs[id]; !ok {
		return ErrNotFound
	}
	c.docs[id] = copyDocument(withID(doc, id))
	return nil
}

// Upsert implements Store.
func (s *MemoryStore) Upsert(ctx context.Context, collection, id string, doc Document) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection, true)
	if _, ok := c.docs[id]; !ok {
		c.order = append(c.order, id)
	}
	c.docs[id] = copyDocument(withID(doc, id))
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection, false)
	if c == nil {
		return ErrNotFound
	}
	if _, ok := c.docs[id]; !ok {
		return ErrNotFound
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Ping implements Store.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close implements Store.
func (s *MemoryStore) Close(context.Context) error {
	return nil
}

func copyDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = copyValue(item)
		}
		return out
	case Document:
		return copyDocument(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
