package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/middleware"
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserRepo struct {
	users map[string]*models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]*models.User{}}
}

func (r *memoryUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memoryUserRepo) FindAll(_ context.Context, limit, offset int) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memoryUserRepo) Create(_ context.Context, user *models.User) error {
	if _, exists := r.users[user.Email]; exists {
		return repositories.ErrUserAlreadyExists
	}
	user.ID = "user-" + user.Email
	r.users[user.Email] = user
	return nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *models.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *memoryUserRepo) UpdateFields(_ context.Context, userID string, fields map[string]interface{}) error {
	return nil
}

func (r *memoryUserRepo) GetSkills(_ context.Context, userID string) ([]models.UserSkill, error) {
	return nil, nil
}

func (r *memoryUserRepo) UpsertSkill(_ context.Context, skill *models.UserSkill) error {
	return nil
}

func newTestRouter(t *testing.T, register func(base *BaseHandler, api *gin.RouterGroup)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	base := NewBaseHandler(validator.New())
	api := router.Group("/api/v1")
	register(base, api)
	return router
}

func mintToken(t *testing.T, secret, userID, email string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterAndLoginFlow(t *testing.T) {
	t.Parallel()

	authService := services.NewAuthService(newMemoryUserRepo(), "test-secret", 60)
	router := newTestRouter(t, func(base *BaseHandler, api *gin.RouterGroup) {
		NewAuthHandler(base, authService).RegisterRoutes(api)
	})

	rec := postJSON(t, router, "/api/v1/auth/register", map[string]interface{}{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "super_password",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "super_password",
		"password must never appear in a response")

	rec = postJSON(t, router, "/api/v1/auth/login", map[string]interface{}{
		"email":    "ada@example.com",
		"password": "super_password",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")

	rec = postJSON(t, router, "/api/v1/auth/login", map[string]interface{}{
		"email":    "ada@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	t.Parallel()

	authService := services.NewAuthService(newMemoryUserRepo(), "test-secret", 60)
	router := newTestRouter(t, func(base *BaseHandler, api *gin.RouterGroup) {
		NewAuthHandler(base, authService).RegisterRoutes(api)
	})

	rec := postJSON(t, router, "/api/v1/auth/register", map[string]interface{}{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "password")
}

func TestEvaluate_PlaceholderResponseRejected(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, func(base *BaseHandler, api *gin.RouterGroup) {
		// The placeholder is rejected by validation; the service is never
		// reached, so its dependencies can stay empty.
		NewEvaluationHandler(base, services.NewEvaluationService(nil, nil)).RegisterRoutes(api)
	})

	rec := postJSON(t, router, "/api/v1/evaluate", map[string]interface{}{
		"question": "Tell me about a conflict.",
		"response": "string",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "placeholder")
}

func TestUploadResume_NonPDFRejected(t *testing.T) {
	config.AppConfig = &config.Config{}

	userHandler := NewUserHandler(nil, nil, nil, nil, nil)
	router := newTestRouter(t, func(base *BaseHandler, api *gin.RouterGroup) {
		userHandler.BaseHandler = base
		userHandler.RegisterRoutes(api, middleware.AuthMiddleware("test-secret"))
	})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "resume.docx")
	require.NoError(t, err)
	_, err = part.Write([]byte("not a pdf"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/ada@example.com/resume", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "test-secret", "user-1", "ada@example.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "PDF")
}

func TestUserUpdate_RequiresMatchingToken(t *testing.T) {
	t.Parallel()

	repo := newMemoryUserRepo()
	repo.users["ada@example.com"] = &models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Name:      "Ada",
		Email:     "ada@example.com",
	}

	userHandler := NewUserHandler(nil, services.NewUserService(repo), nil, nil, nil)
	router := newTestRouter(t, func(base *BaseHandler, api *gin.RouterGroup) {
		userHandler.BaseHandler = base
		userHandler.RegisterRoutes(api, middleware.AuthMiddleware("test-secret"))
	})

	putUpdate := func(token string) *httptest.ResponseRecorder {
		payload, err := json.Marshal(map[string]interface{}{"name": "Ada L."})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/users/ada@example.com", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := putUpdate("")
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "missing token must be rejected")

	rec = putUpdate("not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "malformed token must be rejected")

	rec = putUpdate(mintToken(t, "test-secret", "user-2", "eve@example.com"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "another user's token must be rejected")

	rec = putUpdate(mintToken(t, "test-secret", "user-1", "ada@example.com"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ada@example.com")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/ada@example.com", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "reads stay open")
}
