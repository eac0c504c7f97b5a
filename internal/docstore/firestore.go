package docstore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hosuracademy/academy-api/internal/pkg/logger"
)

// FirestoreStore maps each collection onto a top level Firestore collection
// and each document id onto the Firestore document name.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a store over an open Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Get implements Store.
func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error getting firestore document")
		return nil, fmt.Errorf("error getting document: %w", err)
	}
	return fromFirestore(snap.Ref.ID, snap.Data()), nil
}

// List implements Store.
func (s *FirestoreStore) List(ctx context.Context, collection string, limit int) ([]Document, error) {
	query := s.client.Collection(collection).Query
	if limit > 0 {
		query = query.Limit(limit)
	}
	return s.collect(ctx, collection, query.Documents(ctx))
}

// FindByField implements Store.
func (s *FirestoreStore) FindByField(ctx context.Context, collection, field string, value interface{}) ([]Document, error) {
	iter := s.client.Collection(collection).Where(field, "==", value).Documents(ctx)
	return s.collect(ctx, collection, iter)
}

// Insert implements Store.
func (s *FirestoreStore) Insert(ctx context.Context, collection, id string, doc Document) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	_, err := s.client.Collection(collection).Doc(id).Create(ctx, toFirestore(doc, id))
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrAlreadyExists
		}
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error creating firestore document")
		return fmt.Errorf("error creating document: %w", err)
	}
	return nil
}

// Replace implements Store. The existence check and the write run in one
// transaction.
func (s *FirestoreStore) Replace(ctx context.Context, collection, id string, doc Document) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	ref := s.client.Collection(collection).Doc(id)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}
		return tx.Set(ref, toFirestore(doc, id))
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error replacing firestore document")
		return fmt.Errorf("error replacing document: %w", err)
	}
	return nil
}

// Upsert implements Store.
func (s *FirestoreStore) Upsert(ctx context.Context, collection, id string, doc Document) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, toFirestore(doc, id)); err != nil {
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error setting firestore document")
		return fmt.Errorf("error upserting document: %w", err)
	}
	return nil
}

// Delete implements Store.
func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error deleting firestore document")
		return fmt.Errorf("error deleting document: %w", err)
	}
	return nil
}

// Ping implements Store by reading at most one document.
func (s *FirestoreStore) Ping(ctx context.Context) error {
	iter := s.client.Collection("_health").Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return err
	}
	return nil
}

// Close implements Store.
func (s *FirestoreStore) Close(context.Context) error {
	return s.client.Close()
}

func (s *FirestoreStore) collect(ctx context.Context, collection string, iter *firestore.DocumentIterator) ([]Document, error) {
	defer iter.Stop()

	docs := []Document{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			logger.Error().Err(err).Str("collection", collection).Msg("Error iterating firestore documents")
			return nil, fmt.Errorf("error iterating documents: %w", err)
		}
		docs = append(docs, fromFirestore(snap.Ref.ID, snap.Data()))
	}
	return docs, nil
}

func toFirestore(doc Document, id string) map[string]interface{} {
	return map[string]interface{}(withID(doc, id))
}

// fromFirestore converts snapshot data into a Document. Documents written by
// other clients (addDoc) keep their id only in the document name, so the name
// fills in a missing or blank id field.
func fromFirestore(name string, data map[string]interface{}) Document {
	doc := make(Document, len(data)+1)
	for k, v := range data {
		doc[k] = normalizeFirestore(v)
	}
	if doc.ID() == "" {
		doc[IDField] = name
	}
	return doc
}

// normalizeFirestore converts Firestore integers to float64 so documents
// read back compare the same way on every backend.
func normalizeFirestore(v interface{}) interface{} {
	switch val := v.(type) {
	case int64:
		return float64(val)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = normalizeFirestore(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalizeFirestore(item)
		}
		return out
	default:
		return v
	}
}
