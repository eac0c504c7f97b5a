package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/app/repositories"
	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
	"github.com/hosuracademy/academy-api/internal/pkg/validation"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, id string, student *models.Student) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	GetSelf(ctx context.Context, user *models.User) (*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// validateStudent validates student data before store operations
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	student.Email = strings.TrimSpace(student.Email)

	err := validation.First(
		validation.NewStringValidation("name", student.Name),
		validation.NewStringValidation("roll_no", student.RollNo),
		validation.NewStringValidation("email", student.Email).
			WithPattern(validation.CompiledPatterns.Email),
		validation.NewStringValidation("date_of_birth", student.DateOfBirth).
			WithRequired(false).
			WithPattern(validation.CompiledPatterns.Date),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, err)
	}
	return nil
}

// CreateStudent stores a new student and its users mirror.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := s.validateStudent(student); err != nil {
		return nil, err
	}
	student.ID = strings.TrimSpace(student.ID)
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}
	return student, nil
}

// GetStudentByID retrieves a student by id.
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return student, nil
}

// GetAllStudents retrieves every student up to the configured list cap.
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

// UpdateStudent replaces the student stored under id. The path id always wins
// over an id in the body.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, student *models.Student) (*models.Student, error) {
	if err := s.validateStudent(student); err != nil {
		return nil, err
	}
	if err := s.studentRepo.Update(ctx, id, student); err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return student, nil
}

// DeleteStudent removes a student and its mirror.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

// GetSelf returns the student record of the caller. The record is looked up
// by the token's document id and, failing that, by the caller's email.
func (s *studentServiceImpl) GetSelf(ctx context.Context, user *models.User) (*models.Student, error) {
	if user == nil || user.IsAdmin() {
		return nil, apperrors.ErrStudentNotFound
	}

	student, err := s.studentRepo.GetByID(ctx, user.ID)
	if err == nil && student.Email == user.Email {
		return student, nil
	}
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	matches, err := s.studentRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("error finding student by email: %w", err)
	}
	if len(matches) == 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	return matches[0], nil
}
