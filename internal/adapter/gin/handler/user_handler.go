package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-service/internal/usecase/user"
	apperrors "user-service/pkg/errors"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  *user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc *user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// CreateUserRequest represents the HTTP request body for creating a user
type CreateUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

// UpdateUserRequest represents the HTTP request body for updating a user.
// Absent fields are left untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserResponse represents the HTTP response for user data
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListUsersResponse represents the HTTP response for listing users
type ListUsersResponse struct {
	Users   []UserResponse `json:"users"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func toUserResponse(out *user.UserOutput) UserResponse {
	return UserResponse{
		ID:        out.ID,
		Email:     out.Email,
		Name:      out.Name,
		CreatedAt: out.CreatedAt,
		UpdatedAt: out.UpdatedAt,
	}
}

// CreateUser handles POST /v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("CreateUser request", zap.String("email", req.Email))

	out, err := h.uc.CreateUser(c.Request.Context(), user.CreateUserInput{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(out))
}

// GetUser handles GET /v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	out, err := h.uc.GetUser(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(out))
}

// GetUserByEmail handles GET /v1/users/email/:email
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	out, err := h.uc.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(out))
}

// UpdateUser handles PUT /v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid update user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("UpdateUser request", zap.Int64("id", id))

	out, err := h.uc.UpdateUser(c.Request.Context(), id, user.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(out))
}

// DeleteUser handles DELETE /v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	h.log.Info("DeleteUser request", zap.Int64("id", id))

	deleted, err := h.uc.DeleteUser(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "user not found",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListUsers handles GET /v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	out, err := h.uc.ListUsers(c.Request.Context(), page, perPage)
	if err != nil {
		h.handleError(c, err)
		return
	}

	users := make([]UserResponse, len(out.Users))
	for i := range out.Users {
		users[i] = toUserResponse(&out.Users[i])
	}

	c.JSON(http.StatusOK, ListUsersResponse{
		Users:   users,
		Total:   out.Total,
		Page:    out.Page,
		PerPage: out.PerPage,
	})
}

// ActiveUsersCount handles GET /v1/users/stats/active-count
func (h *UserHandler) ActiveUsersCount(c *gin.Context) {
	count, err := h.uc.ActiveUsersCount(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"active_users": count})
}

// UsersByDomain handles GET /v1/users/domain/:domain
func (h *UserHandler) UsersByDomain(c *gin.Context) {
	domain := c.Param("domain")

	outs, err := h.uc.UsersByDomain(c.Request.Context(), domain)
	if err != nil {
		h.handleError(c, err)
		return
	}

	users := make([]UserResponse, len(outs))
	for i := range outs {
		users[i] = toUserResponse(&outs[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"domain": domain,
		"users":  users,
	})
}

func (h *UserHandler) parseID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.log.Warn("Invalid user ID", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "User ID must be a valid number",
		})
		return 0, false
	}
	return id, true
}

// handleError converts usecase errors to HTTP responses
func (h *UserHandler) handleError(c *gin.Context, err error) {
	status := apperrors.HTTPStatusOf(err)

	var code string
	switch {
	case apperrors.IsConflict(err):
		code = "email_taken"
	case apperrors.IsValidation(err):
		code = "validation_error"
	case apperrors.IsNotFound(err):
		code = "not_found"
	default:
		code = "internal_error"
		h.log.Error("Unhandled usecase error", zap.Error(err))
		c.JSON(status, ErrorResponse{
			Error:   code,
			Message: "An internal error occurred",
		})
		return
	}

	c.JSON(status, ErrorResponse{
		Error:   code,
		Message: err.Error(),
	})
}
