package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/app/models/dto"
	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
)

type staticResolver map[string]*models.User

func (r staticResolver) ResolveUser(_ context.Context, token string) (*models.User, error) {
	if user, ok := r[token]; ok {
		return user, nil
	}
	return nil, apperrors.ErrTokenInvalid
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	roll := "HA001"
	m := NewAuthMiddleware(staticResolver{
		"admin-token":   {Email: "admin@example.com", Role: models.RoleAdmin},
		"student-token": {ID: "s1", Email: "asha@example.com", Role: models.RoleStudent, RollNumber: &roll},
	})

	whoami := func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, user.Email)
	}

	router := gin.New()
	router.POST("/logout", m.OptionalAuthenticate(), whoami)
	router.GET("/admin", m.Authenticate(), m.RoleRequired(models.RoleAdmin), whoami)
	router.GET("/unguarded-role", m.RoleRequired(models.RoleAdmin), whoami)
	return router
}

func serve(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOptionalAuthenticate(t *testing.T) {
	router := newAuthRouter()

	w := serve(router, http.MethodPost, "/logout", "student-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "asha@example.com", w.Body.String())

	w = serve(router, http.MethodPost, "/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	w = serve(router, http.MethodPost, "/logout", "forged")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestRoleRequired(t *testing.T) {
	router := newAuthRouter()

	w := serve(router, http.MethodGet, "/admin", "admin-token")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodGet, "/admin", "student-token")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeForbidden))
	assert.Contains(t, w.Body.String(), "sufficient permissions")
	assert.NotContains(t, w.Body.String(), "asha@example.com")

	w = serve(router, http.MethodGet, "/unguarded-role", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeUnauthorized))
}
