package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hosuracademy/academy-api/internal/pkg/dberrors"
	"github.com/hosuracademy/academy-api/internal/pkg/logger"
)

// DocumentsTable is the table created by the documents migration.
const DocumentsTable = "documents"

// PostgresStore keeps every collection in a single JSONB table keyed by
// (collection, id).
type PostgresStore struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresStore creates a store on top of an open pool. The documents
// table must already exist.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get implements Store.
func (s *PostgresStore) Get(ctx context.Context, collection, id string) (Document, error) {
	sql, args, err := s.sb.Select("body").
		From(DocumentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get document query: %w", err)
	}

	var body []byte
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error getting document")
		return nil, fmt.Errorf("error getting document: %w", err)
	}
	return decodeBody(body)
}

// List implements Store.
func (s *PostgresStore) List(ctx context.Context, collection string, limit int) ([]Document, error) {
	query := s.sb.Select("body").
		From(DocumentsTable).
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("seq ASC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	return s.queryDocuments(ctx, query)
}

// FindByField implements Store. Matching uses JSONB containment so numbers
// and booleans compare by value, not by their text form.
func (s *PostgresStore) FindByField(ctx context.Context, collection, field string, value interface{}) ([]Document, error) {
	probe, err := json.Marshal(map[string]interface{}{field: value})
	if err != nil {
		return nil, fmt.Errorf("failed to encode field filter: %w", err)
	}
	query := s.sb.Select("body").
		From(DocumentsTable).
		Where(squirrel.Eq{"collection": collection}).
		Where(squirrel.Expr("body @> ?::jsonb", string(probe))).
		OrderBy("seq ASC")
	return s.queryDocuments(ctx, query)
}

// Insert implements Store.
func (s *PostgresStore) Insert(ctx context.Context, collection, id string, doc Document) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	body, err := encodeBody(doc, id)
	if err != nil {
		return err
	}

	sql, args, err := s.sb.Insert(DocumentsTable).
		Columns("collection", "id", "body").
		Values(collection, id, body).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert document query: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error inserting document")
		return fmt.Errorf("error inserting document: %w", err)
	}
	return nil
}

// Replace implements Store.
func (s *PostgresStore) Replace(ctx context.Context, collection, id string, doc Document) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	body, err := encodeBody(doc, id)
	if err != nil {
		return err
	}

	sql, args, err := s.sb.Update(DocumentsTable).
		Set("body", body).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build replace document query: %w", err)
	}

	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error replacing document")
		return fmt.Errorf("error replacing document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Upsert implements Store.
func (s *PostgresStore) Upsert(ctx context.Context, collection, id string, doc Document) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	body, err := encodeBody(doc, id)
	if err != nil {
		return err
	}

	sql, args, err := s.sb.Insert(DocumentsTable).
		Columns("collection", "id", "body").
		Values(collection, id, body).
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert document query: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error upserting document")
		return fmt.Errorf("error upserting document: %w", err)
	}
	return nil
}

// Delete implements Store.
func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	sql, args, err := s.sb.Delete(DocumentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete document query: %w", err)
	}

	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error deleting document")
		return fmt.Errorf("error deleting document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping implements Store.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close implements Store.
func (s *PostgresStore) Close(context.Context) error {
	s.db.Close()
	return nil
}

func (s *PostgresStore) queryDocuments(ctx context.Context, query squirrel.SelectBuilder) ([]Document, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list documents query: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list documents query")
		return nil, fmt.Errorf("error querying documents: %w", err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("error scanning document row: %w", err)
		}
		doc, err := decodeBody(body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}
	return docs, nil
}

func encodeBody(doc Document, id string) (string, error) {
	body, err := json.Marshal(withID(doc, id))
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	return string(body), nil
}

func decodeBody(body []byte) (Document, error) {
	doc := Document{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}
