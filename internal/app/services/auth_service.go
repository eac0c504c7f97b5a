package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/app/models/dto"
	"github.com/hosuracademy/academy-api/internal/app/repositories"
	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
	"github.com/hosuracademy/academy-api/internal/pkg/auth"
)

// adminSubject is the token subject of the admin identity.
const adminSubject = "admin"

// AdminCredentials is the single admin account. The password is only kept
// as a bcrypt hash.
type AdminCredentials struct {
	Email        string
	PasswordHash string
}

// AuthService handles authentication operations
type AuthService struct {
	studentRepo *repositories.StudentRepository
	userRepo    *repositories.UserRepository
	jwtService  *auth.JWTService
	admin       AdminCredentials
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo *repositories.StudentRepository,
	userRepo *repositories.UserRepository,
	jwtService *auth.JWTService,
	admin AdminCredentials,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		userRepo:    userRepo,
		jwtService:  jwtService,
		admin:       admin,
		logger:      logger,
	}
}

// Login authenticates the admin pair first, then students, then legacy
// users records. Students log in with their email and date of birth.
func (s *AuthService) Login(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	if s.isAdmin(username, password) {
		s.logger.Info().Str("email", username).Msg("Admin logged in")
		return s.issueToken(auth.Identity{
			Subject:  adminSubject,
			Email:    s.admin.Email,
			RoleType: string(models.RoleAdmin),
		})
	}

	students, err := s.studentRepo.FindByEmail(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error looking up student for login: %w", err)
	}
	for _, student := range students {
		if student.DateOfBirth != "" && student.DateOfBirth == password {
			s.logger.Info().Str("studentID", student.ID).Msg("Student logged in")
			return s.issueToken(auth.Identity{
				Subject:  student.ID,
				Email:    student.Email,
				RoleType: string(models.RoleStudent),
				Source:   models.CollectionStudents,
			})
		}
	}

	users, err := s.userRepo.FindByEmail(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error looking up user for login: %w", err)
	}
	for _, user := range users {
		if user.DateOfBirth != "" && user.DateOfBirth == password {
			s.logger.Info().Str("userID", user.ID).Msg("Student logged in through users record")
			return s.issueToken(auth.Identity{
				Subject:  user.ID,
				Email:    user.Email,
				RoleType: string(models.RoleStudent),
				Source:   models.CollectionUsers,
			})
		}
	}

	s.logger.Debug().Str("email", username).Msg("Login rejected")
	return nil, apperrors.ErrInvalidCredentials
}

// ResolveUser validates a bearer token and returns the identity it was
// issued for. Student tokens are checked against the stored record, so a
// deleted student or a changed email invalidates the token.
func (s *AuthService) ResolveUser(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	switch models.RoleType(claims.RoleType) {
	case models.RoleAdmin:
		if claims.Subject != adminSubject || !strings.EqualFold(claims.Email, s.admin.Email) {
			return nil, apperrors.ErrTokenInvalid
		}
		return &models.User{
			ID:    adminSubject,
			Email: s.admin.Email,
			Role:  models.RoleAdmin,
		}, nil

	case models.RoleStudent:
		user, err := s.lookupStudentIdentity(ctx, claims.Source, claims.Subject)
		if err != nil {
			if !errors.Is(err, apperrors.ErrResourceNotFound) {
				s.logger.Error().Err(err).Str("subject", claims.Subject).Msg("Failed to resolve token identity")
			}
			return nil, apperrors.ErrTokenInvalid
		}
		if user.Email != claims.Email {
			return nil, apperrors.ErrTokenInvalid
		}
		return user, nil

	default:
		return nil, apperrors.ErrTokenInvalid
	}
}

// Logout has no server side session to end. It only records the event.
func (s *AuthService) Logout(ctx context.Context, user *models.User) {
	if user != nil {
		s.logger.Info().Str("email", user.Email).Msg("User logged out")
	}
}

// lookupStudentIdentity fetches the document behind a student token. The
// collection the token was issued from is searched first, then the other one.
func (s *AuthService) lookupStudentIdentity(ctx context.Context, source, id string) (*models.User, error) {
	lookups := []func(context.Context, string) (*models.User, error){s.studentIdentity, s.legacyUserIdentity}
	if source == models.CollectionUsers {
		lookups[0], lookups[1] = lookups[1], lookups[0]
	}

	var err error
	for _, lookup := range lookups {
		var user *models.User
		user, err = lookup(ctx, id)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
	}
	return nil, err
}

func (s *AuthService) studentIdentity(ctx context.Context, id string) (*models.User, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:         student.ID,
		Source:     models.CollectionStudents,
		Email:      student.Email,
		Role:       models.RoleStudent,
		RollNumber: optionalString(student.RollNo),
	}, nil
}

func (s *AuthService) legacyUserIdentity(ctx context.Context, id string) (*models.User, error) {
	record, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:         record.ID,
		Source:     models.CollectionUsers,
		Email:      record.Email,
		Role:       models.RoleStudent,
		RollNumber: optionalString(record.RollNumber),
	}, nil
}

func (s *AuthService) isAdmin(username, password string) bool {
	if !strings.EqualFold(username, s.admin.Email) {
		return false
	}
	return auth.CheckPassword(s.admin.PasswordHash, password)
}

func (s *AuthService) issueToken(identity auth.Identity) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateAccessToken(identity)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate access token")
		return nil, fmt.Errorf("error generating access token: %w", err)
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
