package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/app/models/dto"
	appServices "github.com/hosuracademy/academy-api/internal/app/services"
	"github.com/hosuracademy/academy-api/internal/config"
	"github.com/hosuracademy/academy-api/internal/docstore"
	pkgAuth "github.com/hosuracademy/academy-api/internal/pkg/auth"
)

type testApp struct {
	router *gin.Engine
	deps   *Dependencies
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.BasePath = "/api"
	cfg.Store.Driver = config.DriverMemory
	cfg.Store.MaxListSize = 1000
	cfg.JWT.Secret = "router-test-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.JWT.Issuer = "academy-test"
	cfg.CORS.AllowedOrigins = []string{"*"}

	hash, err := pkgAuth.HashPasswordWithCost("admin", bcrypt.MinCost)
	require.NoError(t, err)
	admin := appServices.AdminCredentials{Email: "admin@example.com", PasswordHash: hash}

	deps := BuildDependencies(cfg, docstore.NewMemoryStore(), admin, zerolog.Nop())
	return &testApp{router: SetupRouter(cfg, deps, zerolog.Nop()), deps: deps}
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(t *testing.T, username, password string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/login", "", dto.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var token dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &token))
	assert.Equal(t, "bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorCode {
	t.Helper()
	resp := decode[dto.ErrorResponse](t, w)
	require.NotNil(t, resp.Error)
	assert.False(t, resp.Success)
	return resp.Error.Code
}

func newStudentRequest(name, roll, email, dob string) dto.StudentRequest {
	return dto.StudentRequest{
		Name: name, RollNo: roll, Course: "NEET Preparation", Batch: "2024-B",
		Email: email, Phone: "9876543210", DateOfBirth: dob,
	}
}

func TestWelcomeHealthAndMetrics(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to the Hosur Academy API", decode[dto.WelcomeResponse](t, w).Message)

	w = app.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"store":"memory"`)

	w = app.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "academy_http_requests_total")
}

func TestAdminLoginResolvesToAdmin(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, "admin@example.com", "admin")

	w := app.do(t, http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode[map[string]interface{}](t, w)
	assert.Equal(t, "admin", user["role"])
	assert.Equal(t, "admin@example.com", user["email"])
	assert.Nil(t, user["roll_number"])
}

func TestLogoutWithOrWithoutToken(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, "admin@example.com", "admin")

	for _, bearer := range []string{token, "", "not-a-jwt"} {
		w := app.do(t, http.MethodPost, "/api/logout", bearer, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Successfully logged out", decode[dto.SuccessResponse](t, w).Message)
	}
}

func TestLoginAcceptsFormFields(t *testing.T) {
	app := newTestApp(t)

	form := url.Values{"username": {"admin@example.com"}, "password": {"admin"}}
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, decode[dto.TokenResponse](t, w).AccessToken)
}

func TestLoginFailures(t *testing.T) {
	app := newTestApp(t)
	admin := app.login(t, "admin@example.com", "admin")
	w := app.do(t, http.MethodPost, "/api/students", admin, newStudentRequest("Asha", "HA001", "a@b.com", "2008-05-01"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.do(t, http.MethodPost, "/api/login", "", dto.LoginRequest{Username: "a@b.com", Password: "2008-05-02"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, errorCode(t, w))

	w = app.do(t, http.MethodPost, "/api/login", "", dto.LoginRequest{Username: "nobody@b.com", Password: "2008-05-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, errorCode(t, w))

	w = app.do(t, http.MethodPost, "/api/login", "", map[string]string{"username": "a@b.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, errorCode(t, w))
}

func TestStudentLifecycleKeepsUsersMirror(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	admin := app.login(t, "admin@example.com", "admin")

	req := newStudentRequest("Asha", "HA001", "a@b.com", "2008-05-01")
	w := app.do(t, http.MethodPost, "/api/students", admin, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[models.Student](t, w)
	require.NotEmpty(t, created.ID)

	// Round trip returns exactly what was stored.
	w = app.do(t, http.MethodGet, "/api/students/"+created.ID, admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[models.Student](t, w))

	mirrors, err := app.deps.Repos.UserRepository.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Len(t, mirrors, 1)
	assert.Equal(t, created.ID, mirrors[0].ID)
	assert.Equal(t, "HA001", mirrors[0].RollNumber)

	req.RollNo = "HA001-R"
	w = app.do(t, http.MethodPut, "/api/students/"+created.ID, admin, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, created.ID, decode[models.Student](t, w).ID)

	mirrors, err = app.deps.Repos.UserRepository.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Len(t, mirrors, 1)
	assert.Equal(t, "HA001-R", mirrors[0].RollNumber)

	w = app.do(t, http.MethodDelete, "/api/students/"+created.ID, admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/api/students/"+created.ID, admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, errorCode(t, w))

	mirrors, err = app.deps.Repos.UserRepository.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Empty(t, mirrors)
}

func TestStudentListAndValidation(t *testing.T) {
	app := newTestApp(t)
	admin := app.login(t, "admin@example.com", "admin")

	ids := map[string]bool{}
	for i, email := range []string{"s1@b.com", "s2@b.com", "s3@b.com"} {
		w := app.do(t, http.MethodPost, "/api/students", admin,
			newStudentRequest("Student", "R"+string(rune('1'+i)), email, "2008-01-01"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		ids[decode[models.Student](t, w).ID] = true
	}

	w := app.do(t, http.MethodGet, "/api/students", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode[[]models.Student](t, w)
	assert.GreaterOrEqual(t, len(listed), 3)
	for _, s := range listed {
		delete(ids, s.ID)
	}
	assert.Empty(t, ids, "every created student is listed")

	w = app.do(t, http.MethodPost, "/api/students", admin, map[string]string{"name": "No Roll"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.Contains(t, w.Body.String(), "roll_no")

	w = app.do(t, http.MethodGet, "/api/students/missing", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentRoutesRequireAdmin(t *testing.T) {
	app := newTestApp(t)
	admin := app.login(t, "admin@example.com", "admin")
	w := app.do(t, http.MethodPost, "/api/students", admin, newStudentRequest("Asha", "HA001", "a@b.com", "2008-05-01"))
	require.Equal(t, http.StatusOK, w.Code)
	student := app.login(t, "a@b.com", "2008-05-01")

	w = app.do(t, http.MethodGet, "/api/students", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeUnauthorized, errorCode(t, w))

	w = app.do(t, http.MethodGet, "/api/students", student, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeForbidden, errorCode(t, w))

	w = app.do(t, http.MethodPost, "/api/results", student, dto.ResultRequest{ExamName: "X", ExamDate: "2024-01-01", Course: "C", Batch: "B"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTamperedTokenIsRejected(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, "admin@example.com", "admin")

	tampered := token[:len(token)-3] + "abc"
	w := app.do(t, http.MethodGet, "/api/user", tampered, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

	w = app.do(t, http.MethodGet, "/api/user", "student_abc_a@b.com", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidToken, errorCode(t, w))
}

func TestStudentSelfServiceUsesTokenIdentity(t *testing.T) {
	app := newTestApp(t)
	admin := app.login(t, "admin@example.com", "admin")

	for _, req := range []dto.StudentRequest{
		newStudentRequest("Asha", "HA001", "asha@b.com", "2008-05-01"),
		newStudentRequest("Ravi", "HA002", "ravi@b.com", "2007-11-23"),
	} {
		w := app.do(t, http.MethodPost, "/api/students", admin, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	asha := app.login(t, "asha@b.com", "2008-05-01")
	ravi := app.login(t, "ravi@b.com", "2007-11-23")

	w := app.do(t, http.MethodGet, "/api/user", asha, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode[map[string]interface{}](t, w)
	assert.Equal(t, "student", user["role"])
	assert.Equal(t, "HA001", user["roll_number"])

	w = app.do(t, http.MethodGet, "/api/students/me", asha, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "asha@b.com", decode[models.Student](t, w).Email)

	w = app.do(t, http.MethodGet, "/api/students/me", ravi, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ravi@b.com", decode[models.Student](t, w).Email)

	w = app.do(t, http.MethodGet, "/api/students/me", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResultsPublishAndMyResults(t *testing.T) {
	app := newTestApp(t)
	admin := app.login(t, "admin@example.com", "admin")
	w := app.do(t, http.MethodPost, "/api/students", admin, newStudentRequest("Asha", "HA001", "asha@b.com", "2008-05-01"))
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, "/api/results", admin, dto.ResultRequest{
		ExamName: "Unit Test 1", ExamDate: "2024-08-15", Course: "NEET Preparation", Batch: "2024-B",
		Results: []map[string]interface{}{
			{"rollNumber": "HA001", "name": "Asha", "marks": 91},
			{"rollNumber": "HA002", "name": "Ravi", "marks": 78},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	published := decode[models.Result](t, w)
	require.NotEmpty(t, published.ID)
	assert.NotNil(t, published.PublishedAt)

	w = app.do(t, http.MethodGet, "/api/results/"+published.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/api/results", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Result](t, w), 1)

	student := app.login(t, "asha@b.com", "2008-05-01")
	w = app.do(t, http.MethodGet, "/api/results/me", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	mine := decode[[]models.StudentResult](t, w)
	require.Len(t, mine, 1)
	assert.Equal(t, published.ID, mine[0].ResultID)
	assert.Equal(t, "Asha", mine[0].Entry["name"])

	w = app.do(t, http.MethodGet, "/api/results/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodGet, "/api/results/no-such-result", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, errorCode(t, w))
}

func TestMyResultsMatchesNumericRollNumbers(t *testing.T) {
	app := newTestApp(t)
	admin := app.login(t, "admin@example.com", "admin")
	w := app.do(t, http.MethodPost, "/api/students", admin, newStudentRequest("Karthik", "20240017", "karthik@b.com", "2008-03-09"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.do(t, http.MethodPost, "/api/results", admin, dto.ResultRequest{
		ExamName: "Mock Test 4", ExamDate: "2024-09-01", Course: "JEE Main & Advanced", Batch: "2024-A",
		Results: []map[string]interface{}{
			{"rollNumber": 20240017, "name": "Karthik", "marks": 81},
			{"rollNumber": 20240018, "name": "Divya", "marks": 64},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	student := app.login(t, "karthik@b.com", "2008-03-09")
	w = app.do(t, http.MethodGet, "/api/results/me", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	mine := decode[[]models.StudentResult](t, w)
	require.Len(t, mine, 1)
	assert.Equal(t, "Karthik", mine[0].Entry["name"])
}

func TestInquirySubmitThenList(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/inquiries", "", dto.InquiryRequest{
		Name: "Meena", Email: "meena@example.com", Phone: "9876500000",
		Course: "JEE Main & Advanced", Grade: "11th", Message: "Batch timings?",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	inquiry := decode[models.Inquiry](t, w)
	require.NotEmpty(t, inquiry.ID)
	assert.Equal(t, models.InquiryStatusPending, inquiry.Status)

	w = app.do(t, http.MethodGet, "/api/inquiries", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	found := false
	for _, i := range decode[[]models.Inquiry](t, w) {
		if i.ID == inquiry.ID {
			found = true
		}
	}
	assert.True(t, found)

	w = app.do(t, http.MethodPost, "/api/inquiries", "", map[string]string{"name": "Meena", "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogRoutesAreReadOnly(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.deps.Repos.GalleryRepository.Create(ctx, &models.GalleryItem{Title: "Lab"}))
	require.NoError(t, app.deps.Repos.TopperRepository.Create(ctx, &models.Topper{Name: "Arjun"}))
	require.NoError(t, app.deps.Repos.CourseRepository.Create(ctx, &models.Course{ID: "c1", Title: "NEET"}))

	w := app.do(t, http.MethodGet, "/api/gallery", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.GalleryItem](t, w), 1)

	w = app.do(t, http.MethodGet, "/api/toppers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Topper](t, w), 1)

	w = app.do(t, http.MethodGet, "/api/courses/c1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "NEET", decode[models.Course](t, w).Title)

	w = app.do(t, http.MethodGet, "/api/courses/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	admin := app.login(t, "admin@example.com", "admin")
	for _, path := range []string{"/api/gallery", "/api/toppers"} {
		w = app.do(t, http.MethodPost, path, admin, map[string]string{"title": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}
