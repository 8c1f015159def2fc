package user

import (
	"context"
	"strings"
)

// Service holds the cross-entity business rules that don't belong to a single
// User: email availability, email-change eligibility and simple aggregate
// queries over the whole user set.
type Service struct {
	repo Repository
}

// NewService creates a domain service over the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// IsEmailAvailable reports whether no existing user holds email.
func (s *Service) IsEmailAvailable(ctx context.Context, email Email) (bool, error) {
	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// CanChangeEmail reports whether u may take newEmail. Keeping the current
// address is always allowed; otherwise the address must be unclaimed. This is
// a query-then-check rule, not an atomic guard; the storage unique index is
// the real backstop against concurrent claims.
func (s *Service) CanChangeEmail(ctx context.Context, u *User, newEmail Email) (bool, error) {
	if u.Email().Equals(newEmail) {
		return true, nil
	}
	return s.IsEmailAvailable(ctx, newEmail)
}

// ActiveUsersCount returns the number of users for which IsActive holds.
func (s *Service) ActiveUsersCount(ctx context.Context) (int64, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	for _, u := range all {
		if u.IsActive() {
			count++
		}
	}
	return count, nil
}

// UsersByDomain returns every user whose email belongs to domain, matched by
// suffix against "@"+domain.
func (s *Service) UsersByDomain(ctx context.Context, domain string) ([]*User, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var matched []*User
	for _, u := range all {
		if strings.HasSuffix(u.Email().String(), "@"+domain) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}
