package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/app/repositories"
	"github.com/hosuracademy/academy-api/internal/docstore"
	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
)

func TestGetSelfReturnsCallersOwnRecord(t *testing.T) {
	ctx := context.Background()
	repos := repositories.NewRepositories(docstore.NewMemoryStore(), 1000)
	svc := NewStudentService(repos.StudentRepository)

	first, err := svc.CreateStudent(ctx, &models.Student{Name: "Asha", RollNo: "R1", Email: "a@b.com", DateOfBirth: "2008-01-01"})
	require.NoError(t, err)
	second, err := svc.CreateStudent(ctx, &models.Student{Name: "Bala", RollNo: "R2", Email: "b@b.com", DateOfBirth: "2008-02-02"})
	require.NoError(t, err)

	got, err := svc.GetSelf(ctx, &models.User{ID: first.ID, Email: "a@b.com", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	got, err = svc.GetSelf(ctx, &models.User{ID: second.ID, Email: "b@b.com", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	// A users-only id falls back to the email lookup.
	got, err = svc.GetSelf(ctx, &models.User{ID: "legacy", Email: "b@b.com", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	_, err = svc.GetSelf(ctx, &models.User{ID: "admin", Email: "admin@example.com", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestCreateStudentValidates(t *testing.T) {
	repos := repositories.NewRepositories(docstore.NewMemoryStore(), 1000)
	svc := NewStudentService(repos.StudentRepository)

	_, err := svc.CreateStudent(context.Background(), &models.Student{Name: "Asha", RollNo: "R1", Email: "  "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateStudentRejectsMalformedFields(t *testing.T) {
	repos := repositories.NewRepositories(docstore.NewMemoryStore(), 1000)
	svc := NewStudentService(repos.StudentRepository)
	ctx := context.Background()

	_, err := svc.CreateStudent(ctx, &models.Student{Name: "Asha", RollNo: "R1", Email: "asha-at-example"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "email")

	_, err = svc.CreateStudent(ctx, &models.Student{Name: "Asha", RollNo: "R1", Email: "asha@example.com", DateOfBirth: "1/5/2008"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "date_of_birth")
}
