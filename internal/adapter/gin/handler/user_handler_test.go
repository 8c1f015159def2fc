package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "user-service/internal/domain/user"
	"user-service/internal/usecase/user"
	apperrors "user-service/pkg/errors"
)

// MockRepository is a mock implementation of the domain Repository interface.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Save(ctx context.Context, u *domain.User) (*domain.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ExistsByEmail(ctx context.Context, email domain.Email) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func setupTestRouter(t *testing.T) (*gin.Engine, *MockRepository) {
	gin.SetMode(gin.TestMode)

	repo := new(MockRepository)
	log := zaptest.NewLogger(t)
	uc := user.New(repo, domain.NewService(repo), nil, log)
	h := NewUserHandler(uc, log)

	router := gin.New()
	v1 := router.Group("/v1")
	users := v1.Group("/users")
	users.POST("", h.CreateUser)
	users.GET("", h.ListUsers)
	users.GET("/stats/active-count", h.ActiveUsersCount)
	users.GET("/domain/:domain", h.UsersByDomain)
	users.GET("/email/:email", h.GetUserByEmail)
	users.GET("/:id", h.GetUser)
	users.PUT("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)

	return router, repo
}

func perform(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newTestUser(t *testing.T, id int64, emailValue, name string) *domain.User {
	t.Helper()
	email, err := domain.NewEmail(emailValue)
	require.NoError(t, err)
	now := time.Now().Truncate(time.Millisecond)
	u, err := domain.NewUser(id, email, name, now, now)
	require.NoError(t, err)
	return u
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateUser_Created(t *testing.T) {
	router, repo := setupTestRouter(t)

	saved := newTestUser(t, 1, "john@example.com", "John Doe")
	repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(saved, nil)

	w := perform(router, http.MethodPost, "/v1/users", gin.H{
		"email": "john@example.com",
		"name":  "John Doe",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "john@example.com", resp.Email)
	assert.Equal(t, "John Doe", resp.Name)
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := perform(router, http.MethodPost, "/v1/users", gin.H{
		"email": "not-an-email",
		"name":  "John Doe",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decodeError(t, w).Error)
}

func TestCreateUser_MissingFields(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := perform(router, http.MethodPost, "/v1/users", gin.H{"name": "John Doe"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decodeError(t, w).Error)
}

func TestCreateUser_EmailTaken(t *testing.T) {
	router, repo := setupTestRouter(t)

	repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(true, nil)

	w := perform(router, http.MethodPost, "/v1/users", gin.H{
		"email": "john@example.com",
		"name":  "John Doe",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email_taken", decodeError(t, w).Error)
}

func TestGetUser_Found(t *testing.T) {
	router, repo := setupTestRouter(t)

	u := newTestUser(t, 1, "john@example.com", "John Doe")
	repo.On("FindByID", mock.Anything, int64(1)).Return(u, nil)

	w := perform(router, http.MethodGet, "/v1/users/1", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "john@example.com", resp.Email)
}

func TestGetUser_NotFound(t *testing.T) {
	router, repo := setupTestRouter(t)

	repo.On("FindByID", mock.Anything, int64(42)).Return(nil, nil)

	w := perform(router, http.MethodGet, "/v1/users/42", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeError(t, w).Error)
}

func TestGetUser_InvalidID(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := perform(router, http.MethodGet, "/v1/users/abc", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", decodeError(t, w).Error)
}

func TestGetUserByEmail(t *testing.T) {
	router, repo := setupTestRouter(t)

	u := newTestUser(t, 1, "john@example.com", "John Doe")
	repo.On("FindByEmail", mock.Anything, mock.Anything).Return(u, nil)

	w := perform(router, http.MethodGet, "/v1/users/email/john@example.com", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "john@example.com", resp.Email)
}

func TestUpdateUser_Name(t *testing.T) {
	router, repo := setupTestRouter(t)

	u := newTestUser(t, 1, "john@example.com", "John Doe")
	repo.On("FindByID", mock.Anything, int64(1)).Return(u, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(u, nil)

	w := perform(router, http.MethodPut, "/v1/users/1", gin.H{"name": "John Smith"})

	require.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateUser_NotFound(t *testing.T) {
	router, repo := setupTestRouter(t)

	repo.On("FindByID", mock.Anything, int64(42)).Return(nil, nil)

	w := perform(router, http.MethodPut, "/v1/users/42", gin.H{"name": "Nobody"})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeError(t, w).Error)
}

func TestDeleteUser_NoContent(t *testing.T) {
	router, repo := setupTestRouter(t)

	repo.On("Delete", mock.Anything, int64(1)).Return(true, nil)

	w := perform(router, http.MethodDelete, "/v1/users/1", nil)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestDeleteUser_NotFound(t *testing.T) {
	router, repo := setupTestRouter(t)

	repo.On("Delete", mock.Anything, int64(42)).Return(false, nil)

	w := perform(router, http.MethodDelete, "/v1/users/42", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeError(t, w).Error)
}

func TestListUsers_Paginated(t *testing.T) {
	router, repo := setupTestRouter(t)

	all := []*domain.User{
		newTestUser(t, 1, "a@example.com", "A"),
		newTestUser(t, 2, "b@example.com", "B"),
		newTestUser(t, 3, "c@example.com", "C"),
	}
	repo.On("FindAll", mock.Anything).Return(all, nil)

	w := perform(router, http.MethodGet, "/v1/users?page=1&per_page=2", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ListUsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Users, 2)
	assert.Equal(t, int64(3), resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.PerPage)
}

func TestActiveUsersCount(t *testing.T) {
	router, repo := setupTestRouter(t)

	all := []*domain.User{
		newTestUser(t, 1, "a@example.com", "A"),
		newTestUser(t, 2, "b@example.com", "B"),
	}
	repo.On("FindAll", mock.Anything).Return(all, nil)

	w := perform(router, http.MethodGet, "/v1/users/stats/active-count", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp["active_users"])
}

func TestUsersByDomain(t *testing.T) {
	router, repo := setupTestRouter(t)

	all := []*domain.User{
		newTestUser(t, 1, "a@example.com", "A"),
		newTestUser(t, 2, "b@test.com", "B"),
	}
	repo.On("FindAll", mock.Anything).Return(all, nil)

	w := perform(router, http.MethodGet, "/v1/users/domain/example.com", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Domain string         `json:"domain"`
		Users  []UserResponse `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "example.com", resp.Domain)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "a@example.com", resp.Users[0].Email)
}

func TestHandleError_InternalHidesDetails(t *testing.T) {
	router, repo := setupTestRouter(t)

	repo.On("FindByID", mock.Anything, int64(1)).Return(nil, apperrors.NewInfrastructureError("db down", nil))

	w := perform(router, http.MethodGet, "/v1/users/1", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "internal_error", resp.Error)
	assert.NotContains(t, resp.Message, "db down")
}
