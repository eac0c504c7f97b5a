package services

import (
	"context"
	"fmt"

	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/app/repositories"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
}

type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo}
}

func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return courses, nil
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	return course, nil
}
