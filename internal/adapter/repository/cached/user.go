package cached

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"user-service/internal/adapter/cache"
	domain "user-service/internal/domain/user"
)

// CachedUserRepository decorates a persistent repository with a cache-aside
// read path on FindByID. Writes invalidate; everything else delegates.
type CachedUserRepository struct {
	dbRepo domain.Repository
	cache  cache.UserCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewCachedUserRepository creates a new instance of CachedUserRepository.
func NewCachedUserRepository(dbRepo domain.Repository, cache cache.UserCache, log *zap.Logger) domain.Repository {
	return &CachedUserRepository{
		dbRepo: dbRepo,
		cache:  cache,
		log:    log,
	}
}

// Save persists through the DB repository and invalidates any cached copy of
// an updated entity. A freshly created user has nothing cached yet.
func (r *CachedUserRepository) Save(ctx context.Context, u *domain.User) (*domain.User, error) {
	existing := u.ID() != 0

	saved, err := r.dbRepo.Save(ctx, u)
	if err != nil {
		return nil, err
	}

	if existing && r.cache != nil {
		if err := r.cache.Delete(ctx, saved.ID()); err != nil {
			r.log.Warn("failed to invalidate cache after save", zap.Int64("id", saved.ID()), zap.Error(err))
		}
	}

	return saved, nil
}

// FindByID retrieves a user by ID using the cache-aside pattern. A cache miss
// goes through singleflight so only one request per key hits the database.
func (r *CachedUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if r.cache != nil {
		cachedUser, err := r.cache.Get(ctx, id)
		if err != nil {
			r.log.Warn("cache get error, falling back to database", zap.Int64("id", id), zap.Error(err))
		} else if cachedUser != nil {
			return cachedUser, nil
		}
	}

	key := fmt.Sprintf("user:%d", id)
	result, err, _ := r.group.Do(key, func() (any, error) {
		// Another request may have populated the cache while we waited.
		if r.cache != nil {
			cachedUser, err := r.cache.Get(ctx, id)
			if err == nil && cachedUser != nil {
				return cachedUser, nil
			}
		}

		u, err := r.dbRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if u != nil && r.cache != nil {
			if err := r.cache.Set(ctx, u); err != nil {
				r.log.Warn("failed to cache user", zap.Int64("id", id), zap.Error(err))
			}
		}

		return u, nil
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.(*domain.User), nil
}

// FindByEmail delegates to the DB repository.
func (r *CachedUserRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	return r.dbRepo.FindByEmail(ctx, email)
}

// FindAll delegates to the DB repository.
func (r *CachedUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	return r.dbRepo.FindAll(ctx)
}

// Delete removes the user from the DB and invalidates the cache.
func (r *CachedUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.dbRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, id); err != nil {
			r.log.Warn("failed to invalidate cache after delete", zap.Int64("id", id), zap.Error(err))
		}
	}

	return deleted, nil
}

// ExistsByEmail delegates to the DB repository; it backs the uniqueness
// check and must never serve stale data.
func (r *CachedUserRepository) ExistsByEmail(ctx context.Context, email domain.Email) (bool, error) {
	return r.dbRepo.ExistsByEmail(ctx, email)
}
