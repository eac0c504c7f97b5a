package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/app/models/dto"
	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
	"github.com/hosuracademy/academy-api/internal/pkg/auth"
)

// Context keys set by Authenticate.
const (
	ContextUserID     = "userID"
	ContextEmail      = "email"
	ContextRoleType   = "roleType"
	ContextRollNumber = "rollNumber"
	ContextUser       = "user"
)

// UserResolver turns a bearer token into the identity it was issued for.
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	resolver UserResolver
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(resolver UserResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// Authenticate requires a valid bearer token and stores the resolved user in
// the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		user, err := m.resolver.ResolveUser(c.Request.Context(), tokenString)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		setUser(c, user)
		c.Next()
	}
}

func setUser(c *gin.Context, user *models.User) {
	c.Set(ContextUserID, user.ID)
	c.Set(ContextEmail, user.Email)
	c.Set(ContextRoleType, string(user.Role))
	if user.RollNumber != nil {
		c.Set(ContextRollNumber, *user.RollNumber)
	}
	c.Set(ContextUser, user)
}

// OptionalAuthenticate stores the resolved user when a valid bearer token is
// present and lets every request through.
func (m *AuthMiddleware) OptionalAuthenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err == nil {
			if user, err := m.resolver.ResolveUser(c.Request.Context(), tokenString); err == nil {
				setUser(c, user)
			}
		}
		c.Next()
	}
}

// RoleRequired middleware to check if user has required role. It must run
// after Authenticate.
func (m *AuthMiddleware) RoleRequired(requiredRole models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRoleType)
		if !exists {
			HandleAPIError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != string(requiredRole) {
			HandleAPIError(c, apperrors.NewForbiddenError("You don't have sufficient permissions for this operation"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user stored by Authenticate.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func abortUnauthorized(c *gin.Context, err error) {
	errorCode := dto.ErrorCodeInvalidToken
	errorDetails := "Invalid token"

	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		errorCode = dto.ErrorCodeUnauthorized
		errorDetails = "Authorization header missing"
	case errors.Is(err, apperrors.ErrTokenExpired):
		errorCode = dto.ErrorCodeExpiredToken
		errorDetails = "Token has expired"
	case !errors.Is(err, apperrors.ErrTokenInvalid):
		HandleAPIError(c, err)
		c.Abort()
		return
	}

	c.Header("WWW-Authenticate", "Bearer")
	errorDetail := dto.NewErrorDetail(errorCode, "Could not validate credentials").WithDetails(errorDetails)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
