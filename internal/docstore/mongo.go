package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/hosuracademy/academy-api/internal/pkg/dberrors"
	"github.com/hosuracademy/academy-api/internal/pkg/logger"
)

// mongoIDField is the primary key MongoDB requires on every document.
const mongoIDField = "_id"

// MongoStore maps each collection onto a MongoDB collection of the same
// name. Documents written here use the id as their _id. Documents written by
// other clients are matched on their id field or on the hex form of an
// ObjectID _id.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore creates a store over an already connected client.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		client: client,
		db:     client.Database(database),
	}
}

// Get implements Store.
func (s *MongoStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var raw bson.M
	err := s.db.Collection(collection).FindOne(ctx, idFilter(id)).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error finding document")
		return nil, fmt.Errorf("error finding document: %w", err)
	}
	return fromBSON(raw), nil
}

// List implements Store.
func (s *MongoStore) List(ctx context.Context, collection string, limit int) ([]Document, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return s.find(ctx, collection, bson.M{}, opts)
}

// FindByField implements Store.
func (s *MongoStore) FindByField(ctx context.Context, collection, field string, value interface{}) ([]Document, error) {
	return s.find(ctx, collection, bson.M{field: value}, options.Find())
}

// Insert implements Store.
func (s *MongoStore) Insert(ctx context.Context, collection, id string, doc Document) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	coll := s.db.Collection(collection)
	n, err := coll.CountDocuments(ctx, idFilter(id), options.Count().SetLimit(1))
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error checking document id")
		return fmt.Errorf("error inserting document: %w", err)
	}
	if n > 0 {
		return ErrAlreadyExists
	}

	_, err = coll.InsertOne(ctx, toBSON(doc, id))
	if err != nil {
		if dberrors.IsMongoDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error inserting document")
		return fmt.Errorf("error inserting document: %w", err)
	}
	return nil
}

// Replace implements Store.
func (s *MongoStore) Replace(ctx context.Context, collection, id string, doc Document) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	res, err := s.db.Collection(collection).ReplaceOne(ctx, idFilter(id), replacementBSON(doc, id))
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error replacing document")
		return fmt.Errorf("error replacing document: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Upsert implements Store. An existing document keeps its _id; a new one is
// inserted with the id as _id.
func (s *MongoStore) Upsert(ctx context.Context, collection, id string, doc Document) error {
	err := s.Replace(ctx, collection, id, doc)
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	err = s.Insert(ctx, collection, id, doc)
	if errors.Is(err, ErrAlreadyExists) {
		// Lost a race with a concurrent writer.
		return s.Replace(ctx, collection, id, doc)
	}
	return err
}

// Delete implements Store.
func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.Collection(collection).DeleteOne(ctx, idFilter(id))
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error deleting document")
		return fmt.Errorf("error deleting document: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping implements Store.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close implements Store.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) find(ctx context.Context, collection string, filter bson.M, opts *options.FindOptions) ([]Document, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Msg("Error querying documents")
		return nil, fmt.Errorf("error querying documents: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []Document{}
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("error decoding document: %w", err)
		}
		docs = append(docs, fromBSON(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}
	return docs, nil
}

// idFilter matches a document by its id field, by a string _id, or by an
// ObjectID _id given in hex.
func idFilter(id string) bson.M {
	clauses := bson.A{
		bson.M{IDField: id},
		bson.M{mongoIDField: id},
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		clauses = append(clauses, bson.M{mongoIDField: oid})
	}
	return bson.M{"$or": clauses}
}

func toBSON(doc Document, id string) bson.M {
	out := replacementBSON(doc, id)
	out[mongoIDField] = id
	return out
}

// replacementBSON leaves _id out so a replace never changes it.
func replacementBSON(doc Document, id string) bson.M {
	out := bson.M{}
	for k, v := range doc {
		if k == mongoIDField {
			continue
		}
		out[k] = v
	}
	out[IDField] = id
	return out
}

func fromBSON(raw bson.M) Document {
	doc := Document{}
	for k, v := range raw {
		if k == mongoIDField {
			continue
		}
		doc[k] = normalizeBSON(v)
	}
	if doc.ID() == "" {
		switch oid := raw[mongoIDField].(type) {
		case primitive.ObjectID:
			doc[IDField] = oid.Hex()
		case string:
			doc[IDField] = oid
		}
	}
	return doc
}

// normalizeBSON turns driver specific container types back into the plain
// maps and slices the other backends return.
func normalizeBSON(v interface{}) interface{} {
	switch val := v.(type) {
	case bson.M:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = normalizeBSON(item)
		}
		return out
	case bson.D:
		out := make(map[string]interface{}, len(val))
		for _, e := range val {
			out[e.Key] = normalizeBSON(e.Value)
		}
		return out
	case bson.A:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalizeBSON(item)
		}
		return out
	case primitive.DateTime:
		return val.Time().UTC()
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	default:
		return v
	}
}
