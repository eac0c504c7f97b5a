package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// IsDuplicateKeyError reports whether err is a PostgreSQL unique violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsMongoDuplicateKeyError reports whether err is a MongoDB E11000 duplicate key error.
func IsMongoDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
