package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/docstore"
	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
	"github.com/hosuracademy/academy-api/internal/pkg/logger"
)

// entityPtr constrains P to be a pointer to T that carries an id.
type entityPtr[T any] interface {
	*T
	models.Entity
}

// DocumentRepository stores one entity type in one collection of a
// document store. Entities are converted to documents through their JSON
// form so every backend sees the same field names.
type DocumentRepository[T any, P entityPtr[T]] struct {
	store      docstore.Store
	collection string
	maxList    int
	notFound   error
}

// NewDocumentRepository creates a repository for collection. List calls
// return at most maxList entities; notFound is returned for missing ids.
func NewDocumentRepository[T any, P entityPtr[T]](store docstore.Store, collection string, maxList int, notFound error) *DocumentRepository[T, P] {
	return &DocumentRepository[T, P]{
		store:      store,
		collection: collection,
		maxList:    maxList,
		notFound:   notFound,
	}
}

// Collection returns the collection the repository writes to.
func (r *DocumentRepository[T, P]) Collection() string {
	return r.collection
}

// GetByID returns the entity with the given id.
func (r *DocumentRepository[T, P]) GetByID(ctx context.Context, id string) (P, error) {
	doc, err := r.store.Get(ctx, r.collection, id)
	if err != nil {
		return nil, r.mapError(err, "get", id)
	}
	return r.fromDocument(doc)
}

// List returns up to maxList entities.
func (r *DocumentRepository[T, P]) List(ctx context.Context) ([]P, error) {
	docs, err := r.store.List(ctx, r.collection, r.maxList)
	if err != nil {
		return nil, r.mapError(err, "list", "")
	}
	return r.fromDocuments(docs)
}

// FindByField returns every entity whose field equals value.
func (r *DocumentRepository[T, P]) FindByField(ctx context.Context, field string, value interface{}) ([]P, error) {
	docs, err := r.store.FindByField(ctx, r.collection, field, value)
	if err != nil {
		return nil, r.mapError(err, "find", "")
	}
	return r.fromDocuments(docs)
}

// HasAny reports whether the collection holds at least one document.
func (r *DocumentRepository[T, P]) HasAny(ctx context.Context) (bool, error) {
	docs, err := r.store.List(ctx, r.collection, 1)
	if err != nil {
		return false, r.mapError(err, "list", "")
	}
	return len(docs) > 0, nil
}

// Create inserts a new entity, generating an id when it has none.
func (r *DocumentRepository[T, P]) Create(ctx context.Context, entity P) error {
	if strings.TrimSpace(entity.GetID()) == "" {
		entity.SetID(uuid.New().String())
	}

	doc, err := toDocument(entity)
	if err != nil {
		return err
	}
	if err := r.store.Insert(ctx, r.collection, entity.GetID(), doc); err != nil {
		return r.mapError(err, "create", entity.GetID())
	}
	return nil
}

// Replace overwrites the entity stored under id. The entity's id is set to id.
func (r *DocumentRepository[T, P]) Replace(ctx context.Context, id string, entity P) error {
	entity.SetID(id)

	doc, err := toDocument(entity)
	if err != nil {
		return err
	}
	if err := r.store.Replace(ctx, r.collection, id, doc); err != nil {
		return r.mapError(err, "replace", id)
	}
	return nil
}

// Upsert writes the entity whether or not it exists.
func (r *DocumentRepository[T, P]) Upsert(ctx context.Context, entity P) error {
	doc, err := toDocument(entity)
	if err != nil {
		return err
	}
	if err := r.store.Upsert(ctx, r.collection, entity.GetID(), doc); err != nil {
		return r.mapError(err, "upsert", entity.GetID())
	}
	return nil
}

// Delete removes the entity stored under id.
func (r *DocumentRepository[T, P]) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, r.collection, id); err != nil {
		return r.mapError(err, "delete", id)
	}
	return nil
}

func (r *DocumentRepository[T, P]) mapError(err error, op, id string) error {
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return r.notFound
	case errors.Is(err, docstore.ErrAlreadyExists):
		return apperrors.NewConflictError(fmt.Sprintf("%s document with id %s already exists", r.collection, id))
	default:
		logger.Error().Err(err).Str("collection", r.collection).Str("op", op).Str("id", id).Msg("Document store operation failed")
		return fmt.Errorf("error during %s on %s: %w", op, r.collection, err)
	}
}

func (r *DocumentRepository[T, P]) fromDocuments(docs []docstore.Document) ([]P, error) {
	entities := make([]P, 0, len(docs))
	for _, doc := range docs {
		entity, err := r.fromDocument(doc)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (r *DocumentRepository[T, P]) fromDocument(doc docstore.Document) (P, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s document: %w", r.collection, err)
	}
	entity := P(new(T))
	if err := json.Unmarshal(raw, entity); err != nil {
		return nil, fmt.Errorf("failed to decode %s document: %w", r.collection, err)
	}
	if entity.GetID() == "" {
		entity.SetID(doc.ID())
	}
	return entity, nil
}

func toDocument(entity interface{}) (docstore.Document, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to encode entity: %w", err)
	}
	doc := docstore.Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode entity into document: %w", err)
	}
	return doc, nil
}
