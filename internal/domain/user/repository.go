package user

import "context"

// Repository defines the persistence contract consumed by the domain service
// and the application layer. It abstracts the data layer, allowing different
// implementations (PostgreSQL, in-memory SQLite in tests) to be used
// interchangeably.
//
// FindByID and FindByEmail return (nil, nil) on a miss; translating a miss
// into a not-found failure is the application layer's job.
type Repository interface {
	// Save inserts u when its ID is zero, assigning one, and updates all
	// mutable fields otherwise. It returns the persisted entity. A duplicate
	// email surfaces as a ConflictError backed by the unique index.
	Save(ctx context.Context, u *User) (*User, error)
	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id int64) (*User, error)
	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email Email) (*User, error)
	// FindAll retrieves every user, in storage order.
	FindAll(ctx context.Context) ([]*User, error)
	// Delete removes a user by ID and reports whether a row existed.
	Delete(ctx context.Context, id int64) (bool, error)
	// ExistsByEmail reports whether any user holds the given email.
	ExistsByEmail(ctx context.Context, email Email) (bool, error)
}
