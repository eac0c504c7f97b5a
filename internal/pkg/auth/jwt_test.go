package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
)

func newTestService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "academy-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService()

	token, expiresIn, err := svc.GenerateAccessToken(Identity{
		Subject:  "stu-1",
		Email:    "a@b.com",
		RoleType: "student",
		Source:   "students",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "stu-1", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "student", claims.RoleType)
	assert.Equal(t, "students", claims.Source)
	assert.Equal(t, "academy-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	svc := newTestService()
	token, _, err := svc.GenerateAccessToken(Identity{Subject: "stu-1", Email: "a@b.com", RoleType: "student"})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour, TokenIssuer: "academy-test"})
	_, err = other.ValidateToken(token)
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.ValidateToken(tampered)
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))

	_, err = svc.ValidateToken("student_abc_a@b.com")
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService()
	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }

	token, _, err := svc.GenerateAccessToken(Identity{Subject: "stu-1", Email: "a@b.com", RoleType: "student"})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	token, _, err := newTestService().GenerateAccessToken(Identity{Subject: "admin", Email: "admin@example.com", RoleType: "admin"})
	require.NoError(t, err)

	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "someone-else"})
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("bearer   xyz")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = ExtractBearerToken("Basic Zm9vOmJhcg==")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPasswordWithCost("admin", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "admin"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("", "admin"))
}
