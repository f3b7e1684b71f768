package repository

import (
	"context"

	"store-api/internal/domain"
)

// ProductFilter narrows a product listing. Nil fields contribute no
// predicate.
type ProductFilter struct {
	Category *string
	MinPrice *float64
	MaxPrice *float64
	Search   *string
}

// OrderFilter narrows an order listing. Nil fields contribute no predicate.
type OrderFilter struct {
	Status *domain.OrderStatus
	UserID *int64
}

// Find methods return (nil, nil) when no row matches; callers translate
// that into their not-found error.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Insert(ctx context.Context, u *domain.User) (int64, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type ProductRepository interface {
	FindAll(ctx context.Context, f ProductFilter) ([]domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) (int64, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]string, error)
}

type OrderRepository interface {
	FindAll(ctx context.Context, f OrderFilter) ([]domain.OrderWithUser, error)
	FindByID(ctx context.Context, id int64) (*domain.OrderWithUser, error)
	FindPlainByID(ctx context.Context, id int64) (*domain.Order, error)
	FindByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	Insert(ctx context.Context, o *domain.Order) (int64, error)
	Update(ctx context.Context, o *domain.Order) error
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	Delete(ctx context.Context, id int64) error
}
