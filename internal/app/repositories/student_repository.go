package repositories

import (
	"context"
	"errors"

	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/docstore"
	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
	"github.com/hosuracademy/academy-api/internal/pkg/logger"
)

// StudentRepository handles the students collection. Every successful write
// is mirrored into the users collection so logins against users keep
// working. Mirror failures are logged and never returned: the student write
// is not rolled back.
type StudentRepository struct {
	*DocumentRepository[models.Student, *models.Student]
	users *UserRepository
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(store docstore.Store, maxList int, users *UserRepository) *StudentRepository {
	return &StudentRepository{
		DocumentRepository: NewDocumentRepository[models.Student, *models.Student](
			store, models.CollectionStudents, maxList, apperrors.ErrStudentNotFound),
		users: users,
	}
}

// FindByEmail returns every student registered under email.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) ([]*models.Student, error) {
	return r.FindByField(ctx, "email", email)
}

// Create inserts the student and then its users mirror.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if err := r.DocumentRepository.Create(ctx, student); err != nil {
		return err
	}
	r.mirror(ctx, student)
	return nil
}

// Update replaces the student stored under id and upserts its mirror.
func (r *StudentRepository) Update(ctx context.Context, id string, student *models.Student) error {
	if err := r.DocumentRepository.Replace(ctx, id, student); err != nil {
		return err
	}
	r.mirror(ctx, student)
	return nil
}

// Delete removes the student and its mirror if one exists.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	if err := r.DocumentRepository.Delete(ctx, id); err != nil {
		return err
	}

	if err := r.users.Delete(ctx, id); err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		logger.Warn().Err(err).Str("studentID", id).Msg("Failed to delete users mirror of student")
	}
	return nil
}

func (r *StudentRepository) mirror(ctx context.Context, student *models.Student) {
	if err := r.users.Upsert(ctx, models.UserRecordFromStudent(student)); err != nil {
		logger.Warn().Err(err).Str("studentID", student.ID).Msg("Failed to mirror student into users")
	}
}
