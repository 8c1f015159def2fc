package user

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "user-service/pkg/errors"
)

// maxNameLength bounds the user name in characters, not bytes.
const maxNameLength = 100

// User is the aggregate root of the user management domain. ID is zero until
// the repository assigns one on first save. Invariants (non-blank name of at
// most 100 characters) hold at all times; mutation goes through ChangeName
// and ChangeEmail, which refresh UpdatedAt.
type User struct {
	id        int64
	email     Email
	name      string
	createdAt time.Time
	updatedAt time.Time
}

// NewUser constructs a User, validating the name. Pass id 0 for an entity
// that has not been persisted yet.
func NewUser(id int64, email Email, name string, createdAt, updatedAt time.Time) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &User{
		id:        id,
		email:     email,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("name", apperrors.ReasonNameRequired)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return apperrors.NewValidationError("name", apperrors.ReasonNameTooLong)
	}
	return nil
}

// ID returns the persistent identity, or 0 when not yet saved.
func (u *User) ID() int64 { return u.id }

// Email returns the current email address.
func (u *User) Email() Email { return u.email }

// Name returns the user name as stored, whitespace included.
func (u *User) Name() string { return u.name }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// ChangeName replaces the name after revalidation and refreshes UpdatedAt.
// On invalid input the entity is left unchanged.
func (u *User) ChangeName(newName string) error {
	if err := validateName(newName); err != nil {
		return err
	}
	u.name = newName
	u.updatedAt = time.Now()
	return nil
}

// ChangeEmail unconditionally replaces the email and refreshes UpdatedAt.
// Uniqueness is not this entity's concern; the domain service decides whether
// a change is allowed.
func (u *User) ChangeEmail(newEmail Email) {
	u.email = newEmail
	u.updatedAt = time.Now()
}

// IsActive reports whether the user counts as active. Always true for now;
// kept as a seam for a future status field.
func (u *User) IsActive() bool {
	return true
}
