package postgres

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "user-service/internal/domain/user"
	apperrors "user-service/pkg/errors"
)

// UserRepoPG implements the domain Repository interface using GORM.
// The users table carries a unique index on email; it is the real guarantee
// behind the service-layer availability check, and violations are mapped to
// the same email_taken conflict.
type UserRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewUserRepoPG creates a new instance of UserRepoPG. The gorm.DB must be
// opened with TranslateError so duplicate-key violations surface as
// gorm.ErrDuplicatedKey.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table. Timestamps
// are owned by the entity, so GORM auto-tracking is disabled.
type UserSchema struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:254;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

func toSchema(u *domain.User) UserSchema {
	return UserSchema{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().String(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func toDomain(model *UserSchema) (*domain.User, error) {
	email, err := domain.NewEmail(model.Email)
	if err != nil {
		return nil, apperrors.NewInfrastructureError("stored email is invalid", err)
	}
	u, err := domain.NewUser(model.ID, email, model.Name, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, apperrors.NewInfrastructureError("stored user is invalid", err)
	}
	return u, nil
}

// Save inserts u when it has no identity yet, letting the database assign
// one, and updates all mutable fields otherwise.
func (r *UserRepoPG) Save(ctx context.Context, u *domain.User) (*domain.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	model := toSchema(u)

	var err error
	if model.ID == 0 {
		err = r.db.WithContext(ctx).Create(&model).Error
	} else {
		err = r.db.WithContext(ctx).Save(&model).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.log.Warn("duplicate email on save", zap.String("email", model.Email))
			return nil, apperrors.NewConflictError(apperrors.ReasonEmailTaken)
		}
		r.log.Error("failed to save user in db", zap.Error(err), zap.String("email", model.Email))
		return nil, apperrors.NewInfrastructureError("failed to save user", err)
	}

	r.log.Info("user saved in db", zap.Int64("id", model.ID))
	return toDomain(&model)
}

// FindByID retrieves a user by their unique ID, returning nil on a miss.
func (r *UserRepoPG) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found", zap.Int64("id", id))
			return nil, nil
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
		return nil, apperrors.NewInfrastructureError("failed to get user", err)
	}
	return toDomain(&model)
}

// FindByEmail retrieves a user by their email address, returning nil on a miss.
func (r *UserRepoPG) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found by email", zap.String("email", email.String()))
			return nil, nil
		}
		r.log.Error("failed to get user by email from db", zap.Error(err), zap.String("email", email.String()))
		return nil, apperrors.NewInfrastructureError("failed to get user by email", err)
	}
	return toDomain(&model)
}

// FindAll retrieves every user in storage order.
func (r *UserRepoPG) FindAll(ctx context.Context) ([]*domain.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, apperrors.NewInfrastructureError("failed to list users", err)
	}

	users := make([]*domain.User, 0, len(models))
	for i := range models {
		u, err := toDomain(&models[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// Delete removes a user by ID and reports whether a row existed.
func (r *UserRepoPG) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&UserSchema{}, id)
	if result.Error != nil {
		r.log.Error("failed to delete user in db", zap.Error(result.Error), zap.Int64("id", id))
		return false, apperrors.NewInfrastructureError("failed to delete user", result.Error)
	}

	if result.RowsAffected == 0 {
		r.log.Debug("no user to delete", zap.Int64("id", id))
		return false, nil
	}

	r.log.Info("user deleted in db", zap.Int64("id", id))
	return true, nil
}

// ExistsByEmail reports whether any user holds the given email.
func (r *UserRepoPG) ExistsByEmail(ctx context.Context, email domain.Email) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserSchema{}).Where("email = ?", email.String()).Count(&count).Error; err != nil {
		r.log.Error("failed to check email existence", zap.Error(err), zap.String("email", email.String()))
		return false, apperrors.NewInfrastructureError("failed to check email existence", err)
	}
	return count > 0, nil
}
