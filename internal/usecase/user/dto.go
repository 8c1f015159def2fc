package user

import (
	"time"

	domain "user-service/internal/domain/user"
)

// CreateUserInput carries the fields needed to register a new user.
type CreateUserInput struct {
	Email string
	Name  string
}

// UpdateUserInput carries the optional fields of a partial update. A nil
// field is left untouched.
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// UserOutput is the transfer representation of a persisted user.
type UserOutput struct {
	ID        int64
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserListOutput is the transfer representation of one page of users.
type UserListOutput struct {
	Users   []UserOutput
	Total   int64
	Page    int
	PerPage int
}

func newUserOutput(u *domain.User) *UserOutput {
	return &UserOutput{
		ID:        u.ID(),
		Email:     u.Email().String(),
		Name:      u.Name(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}
