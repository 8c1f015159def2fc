package user

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "user-service/internal/domain/user"
	apperrors "user-service/pkg/errors"
)

// Pagination bounds for ListUsers.
const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// Mailer sends notification mail to users. Sending is always best-effort:
// the create flow logs failures and never propagates them.
type Mailer interface {
	SendWelcomeEmail(ctx context.Context, address, name string) error
}

// Usecase implements the application-level orchestration for user management:
// validation through the domain types, uniqueness checks through the domain
// service, persistence through the repository.
type Usecase struct {
	repo    domain.Repository
	service *domain.Service
	mailer  Mailer
	log     *zap.Logger
}

// New creates a Usecase. mailer may be nil, which disables the welcome mail.
func New(repo domain.Repository, service *domain.Service, mailer Mailer, log *zap.Logger) *Usecase {
	return &Usecase{repo: repo, service: service, mailer: mailer, log: log}
}

// CreateUser validates the email, checks availability, persists a new user
// and sends the welcome mail. The availability check and the save are two
// separate operations; when a concurrent create wins the race, the storage
// unique index reports the same email_taken conflict.
func (uc *Usecase) CreateUser(ctx context.Context, in CreateUserInput) (*UserOutput, error) {
	uc.log.Info("creating user", zap.String("email", in.Email), zap.String("name", in.Name))

	email, err := domain.NewEmail(in.Email)
	if err != nil {
		uc.log.Warn("invalid email on create", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}

	available, err := uc.service.IsEmailAvailable(ctx, email)
	if err != nil {
		uc.log.Error("failed to check email availability", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if !available {
		uc.log.Warn("email already taken", zap.String("email", in.Email))
		return nil, apperrors.NewConflictError(apperrors.ReasonEmailTaken)
	}

	now := time.Now()
	u, err := domain.NewUser(0, email, in.Name, now, now)
	if err != nil {
		uc.log.Warn("invalid name on create", zap.Error(err))
		return nil, err
	}

	saved, err := uc.repo.Save(ctx, u)
	if err != nil {
		uc.log.Error("failed to save user", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}

	uc.sendWelcomeMail(ctx, saved)

	uc.log.Info("user created", zap.Int64("id", saved.ID()))
	return newUserOutput(saved), nil
}

// sendWelcomeMail is a best-effort side call; failure is logged, never
// returned.
func (uc *Usecase) sendWelcomeMail(ctx context.Context, u *domain.User) {
	if uc.mailer == nil {
		return
	}
	if err := uc.mailer.SendWelcomeEmail(ctx, u.Email().String(), u.Name()); err != nil {
		uc.log.Warn("failed to send welcome email",
			zap.Int64("id", u.ID()),
			zap.String("email", u.Email().String()),
			zap.Error(err),
		)
	}
}

// GetUser retrieves a user by ID.
func (uc *Usecase) GetUser(ctx context.Context, id int64) (*UserOutput, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		uc.log.Error("failed to get user", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user")
	}
	return newUserOutput(u), nil
}

// GetUserByEmail retrieves a user by email address. The address must itself
// be well-formed.
func (uc *Usecase) GetUserByEmail(ctx context.Context, address string) (*UserOutput, error) {
	email, err := domain.NewEmail(address)
	if err != nil {
		return nil, err
	}

	u, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		uc.log.Error("failed to get user by email", zap.String("email", address), zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user")
	}
	return newUserOutput(u), nil
}

// UpdateUser applies a partial update: optional rename, optional email change
// guarded by the domain service. Both mutations persist through a single
// save.
func (uc *Usecase) UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (*UserOutput, error) {
	uc.log.Info("updating user", zap.Int64("id", id))

	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		uc.log.Error("failed to load user for update", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user")
	}

	if in.Name != nil {
		if err := u.ChangeName(*in.Name); err != nil {
			uc.log.Warn("invalid name on update", zap.Int64("id", id), zap.Error(err))
			return nil, err
		}
	}

	if in.Email != nil {
		newEmail, err := domain.NewEmail(*in.Email)
		if err != nil {
			uc.log.Warn("invalid email on update", zap.Int64("id", id), zap.Error(err))
			return nil, err
		}
		ok, err := uc.service.CanChangeEmail(ctx, u, newEmail)
		if err != nil {
			uc.log.Error("failed to check email change", zap.Int64("id", id), zap.Error(err))
			return nil, err
		}
		if !ok {
			uc.log.Warn("email already taken on update", zap.Int64("id", id), zap.String("email", *in.Email))
			return nil, apperrors.NewConflictError(apperrors.ReasonEmailTaken)
		}
		u.ChangeEmail(newEmail)
	}

	saved, err := uc.repo.Save(ctx, u)
	if err != nil {
		uc.log.Error("failed to save updated user", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	uc.log.Info("user updated", zap.Int64("id", saved.ID()))
	return newUserOutput(saved), nil
}

// DeleteUser removes a user by ID and reports whether a row existed.
func (uc *Usecase) DeleteUser(ctx context.Context, id int64) (bool, error) {
	uc.log.Info("deleting user", zap.Int64("id", id))

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.log.Error("failed to delete user", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	return deleted, nil
}

// ListUsers returns one page of users plus the total count. The whole user
// set is realized in memory and sliced, which limits this design to small
// populations; out-of-range pages clamp to an empty slice.
func (uc *Usecase) ListUsers(ctx context.Context, page, perPage int) (*UserListOutput, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	all, err := uc.repo.FindAll(ctx)
	if err != nil {
		uc.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	total := int64(len(all))
	start := (page - 1) * perPage
	end := start + perPage
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}

	users := make([]UserOutput, 0, end-start)
	for _, u := range all[start:end] {
		users = append(users, *newUserOutput(u))
	}

	return &UserListOutput{
		Users:   users,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// ActiveUsersCount returns the number of active users.
func (uc *Usecase) ActiveUsersCount(ctx context.Context) (int64, error) {
	count, err := uc.service.ActiveUsersCount(ctx)
	if err != nil {
		uc.log.Error("failed to count active users", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// UsersByDomain returns every user whose email belongs to the given domain.
func (uc *Usecase) UsersByDomain(ctx context.Context, emailDomain string) ([]UserOutput, error) {
	matched, err := uc.service.UsersByDomain(ctx, emailDomain)
	if err != nil {
		uc.log.Error("failed to filter users by domain", zap.String("domain", emailDomain), zap.Error(err))
		return nil, err
	}

	users := make([]UserOutput, len(matched))
	for i, u := range matched {
		users[i] = *newUserOutput(u)
	}
	return users, nil
}
