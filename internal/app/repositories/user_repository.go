package repositories

import (
	"context"

	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/docstore"
	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
)

// UserRepository handles the users login projection.
type UserRepository struct {
	*DocumentRepository[models.UserRecord, *models.UserRecord]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store docstore.Store, maxList int) *UserRepository {
	return &UserRepository{
		DocumentRepository: NewDocumentRepository[models.UserRecord, *models.UserRecord](
			store, models.CollectionUsers, maxList, apperrors.ErrUserNotFound),
	}
}

// FindByEmail returns every user record registered under email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) ([]*models.UserRecord, error) {
	return r.FindByField(ctx, "email", email)
}
