// Package services holds the per-resource business rules: presence checks,
// fallback merging on update, referential checks, and error mapping.
//
// Write paths follow a check-then-write sequence (existence check, write,
// re-fetch) without a wrapping transaction. A delete racing an update on the
// same id can make the later statement a no-op; this is a known limitation
// inherited from the system this service replaces.
package services

import (
	"context"

	"store-api/internal/domain"
	"store-api/internal/repository"
)

type UserService struct {
	users  repository.UserRepository
	orders repository.OrderRepository
}

func NewUserService(users repository.UserRepository, orders repository.OrderRepository) *UserService {
	return &UserService{users: users, orders: orders}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *UserService) Create(ctx context.Context, name, email string, age *int) (*domain.User, error) {
	if name == "" || email == "" {
		return nil, &domain.ValidationError{Reason: "Name and email are required"}
	}

	id, err := s.users.Insert(ctx, &domain.User{Name: name, Email: email, Age: age})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrUserNotFound
	}

	if patch.Name != "" {
		existing.Name = patch.Name
	}
	if patch.Email != "" {
		existing.Email = patch.Email
	}
	if patch.Age != 0 {
		age := patch.Age
		existing.Age = &age
	}

	if err := s.users.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrUserNotFound
	}
	return s.users.Delete(ctx, id)
}

// Orders returns the user's orders without the user join. An unknown user id
// yields an empty list, not an error.
func (s *UserService) Orders(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}
