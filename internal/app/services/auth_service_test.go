package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/app/repositories"
	"github.com/hosuracademy/academy-api/internal/docstore"
	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
	"github.com/hosuracademy/academy-api/internal/pkg/auth"
)

type authFixture struct {
	store *docstore.MemoryStore
	repos *repositories.Repositories
	jwt   *auth.JWTService
	svc   *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	hash, err := auth.HashPasswordWithCost("admin", bcrypt.MinCost)
	require.NoError(t, err)

	store := docstore.NewMemoryStore()
	repos := repositories.NewRepositories(store, 1000)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "academy-test",
	})
	svc := NewAuthService(repos.StudentRepository, repos.UserRepository, jwtService,
		AdminCredentials{Email: "admin@example.com", PasswordHash: hash}, zerolog.Nop())

	return &authFixture{store: store, repos: repos, jwt: jwtService, svc: svc}
}

func (f *authFixture) addStudent(t *testing.T, email, dob, roll string) *models.Student {
	t.Helper()
	student := &models.Student{
		Name: "Student " + roll, RollNo: roll, Course: "NEET", Batch: "2024",
		Email: email, Phone: "9000000000", DateOfBirth: dob,
	}
	require.NoError(t, f.repos.StudentRepository.Create(context.Background(), student))
	return student
}

func TestLoginAdmin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	token, err := f.svc.Login(ctx, "admin@example.com", "admin")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	user, err := f.svc.ResolveUser(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Nil(t, user.RollNumber)
}

func TestLoginStudent(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	student := f.addStudent(t, "a@b.com", "2008-05-01", "HA001")

	token, err := f.svc.Login(ctx, "a@b.com", "2008-05-01")
	require.NoError(t, err)

	user, err := f.svc.ResolveUser(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, student.ID, user.ID)
	require.NotNil(t, user.RollNumber)
	assert.Equal(t, "HA001", *user.RollNumber)
}

func TestLoginFallsBackToUsersCollection(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	legacy := &models.UserRecord{ID: "legacy-1", Email: "old@b.com", Role: models.RoleStudent, RollNumber: "OLD7", DateOfBirth: "2007-01-02"}
	require.NoError(t, f.repos.UserRepository.Create(ctx, legacy))

	token, err := f.svc.Login(ctx, "old@b.com", "2007-01-02")
	require.NoError(t, err)

	claims, err := f.jwt.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.CollectionUsers, claims.Source)

	user, err := f.svc.ResolveUser(ctx, token.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, user.RollNumber)
	assert.Equal(t, "OLD7", *user.RollNumber)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.addStudent(t, "a@b.com", "2008-05-01", "HA001")

	cases := []struct{ username, password string }{
		{"a@b.com", "2008-05-02"},
		{"unknown@b.com", "2008-05-01"},
		{"admin@example.com", "wrong"},
		{"", ""},
	}
	for _, c := range cases {
		_, err := f.svc.Login(ctx, c.username, c.password)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "username %q", c.username)
	}
}

func TestLoginPicksMatchingDuplicate(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.addStudent(t, "twin@b.com", "2008-01-01", "T1")
	second := f.addStudent(t, "twin@b.com", "2009-09-09", "T2")

	token, err := f.svc.Login(ctx, "twin@b.com", "2009-09-09")
	require.NoError(t, err)

	user, err := f.svc.ResolveUser(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, second.ID, user.ID)
}

func TestResolveUserRejectsStaleStudentToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	student := f.addStudent(t, "a@b.com", "2008-05-01", "HA001")

	token, err := f.svc.Login(ctx, "a@b.com", "2008-05-01")
	require.NoError(t, err)

	require.NoError(t, f.repos.StudentRepository.Delete(ctx, student.ID))
	_, err = f.svc.ResolveUser(ctx, token.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestResolveUserRejectsForgedTokens(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	student := f.addStudent(t, "a@b.com", "2008-05-01", "HA001")

	_, err := f.svc.ResolveUser(ctx, "student_"+student.ID+"_a@b.com")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	forger := auth.NewJWTService(auth.JWTConfig{SecretKey: "guessed", AccessTokenExp: time.Hour, TokenIssuer: "academy-test"})
	forged, _, err := forger.GenerateAccessToken(auth.Identity{Subject: "admin", Email: "admin@example.com", RoleType: "admin"})
	require.NoError(t, err)
	_, err = f.svc.ResolveUser(ctx, forged)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	// Correctly signed but claiming a different email for the document.
	mismatched, _, err := f.jwt.GenerateAccessToken(auth.Identity{Subject: student.ID, Email: "other@b.com", RoleType: "student"})
	require.NoError(t, err)
	_, err = f.svc.ResolveUser(ctx, mismatched)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestResolveUserSearchesTokenSourceFirst(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	legacy := &models.UserRecord{ID: "shared-1", Email: "old@b.com", Role: models.RoleStudent, RollNumber: "OLD7", DateOfBirth: "2007-01-02"}
	require.NoError(t, f.repos.UserRepository.Create(ctx, legacy))
	// An unrelated student document that happens to share the id.
	require.NoError(t, f.store.Insert(ctx, models.CollectionStudents, "shared-1", docstore.Document{
		"id": "shared-1", "name": "Bala", "roll_no": "HA009", "email": "bala@b.com", "date_of_birth": "2008-09-09",
	}))

	token, err := f.svc.Login(ctx, "old@b.com", "2007-01-02")
	require.NoError(t, err)

	user, err := f.svc.ResolveUser(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "old@b.com", user.Email)
	assert.Equal(t, models.CollectionUsers, user.Source)
	require.NotNil(t, user.RollNumber)
	assert.Equal(t, "OLD7", *user.RollNumber)

	student, err := f.svc.Login(ctx, "bala@b.com", "2008-09-09")
	require.NoError(t, err)
	user, err = f.svc.ResolveUser(ctx, student.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.CollectionStudents, user.Source)
	assert.Equal(t, "HA009", *user.RollNumber)
}
