package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"store-api/internal/domain"
	"store-api/internal/mocks"
)

func mockProduct(id int64) *domain.Product {
	description := "High-performance laptop for work and gaming"
	category := "Electronics"
	stock := 50
	return &domain.Product{
		ID:            id,
		Name:          "Laptop",
		Description:   &description,
		Price:         999.99,
		Category:      &category,
		StockQuantity: &stock,
		CreatedAt:     time.Now(),
	}
}

func TestProductService_Create(t *testing.T) {
	t.Run("name and price required", func(t *testing.T) {
		s := NewProductService(new(mocks.MockProductRepository))

		_, err := s.Create(context.Background(), "", nil, 10, nil, nil)
		require.EqualError(t, err, "Name and price are required")

		_, err = s.Create(context.Background(), "Laptop", nil, 0, nil, nil)
		require.EqualError(t, err, "Name and price are required")
	})

	t.Run("stock quantity defaults to zero", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("Insert", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			return p.StockQuantity != nil && *p.StockQuantity == 0
		})).Return(int64(9), nil)
		repo.On("FindByID", mock.Anything, int64(9)).Return(mockProduct(9), nil)

		s := NewProductService(repo)
		p, err := s.Create(context.Background(), "Laptop", nil, 999.99, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(9), p.ID)
		repo.AssertExpectations(t)
	})
}

func TestProductService_Update(t *testing.T) {
	t.Run("omitted fields keep stored values", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		existing := mockProduct(1)
		repo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			return p.Name == "Laptop" && p.Price == 899.99 && p.Description != nil && p.Category != nil
		})).Return(nil)
		repo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)

		s := NewProductService(repo)
		_, err := s.Update(context.Background(), 1, domain.ProductPatch{Price: 899.99})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("explicit null description is honored", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		existing := mockProduct(1)
		repo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			return p.Description == nil
		})).Return(nil)
		repo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)

		s := NewProductService(repo)
		_, err := s.Update(context.Background(), 1, domain.ProductPatch{Description: domain.Null[string]()})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("explicit zero stock quantity is honored", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		existing := mockProduct(1)
		repo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			return p.StockQuantity != nil && *p.StockQuantity == 0
		})).Return(nil)
		repo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)

		s := NewProductService(repo)
		_, err := s.Update(context.Background(), 1, domain.ProductPatch{StockQuantity: domain.Some(0)})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

		s := NewProductService(repo)
		_, err := s.Update(context.Background(), 99, domain.ProductPatch{Name: "x"})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestProductService_Delete(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	s := NewProductService(repo)
	assert.ErrorIs(t, s.Delete(context.Background(), 99), domain.ErrProductNotFound)
}

func TestProductService_Categories(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("Categories", mock.Anything).Return([]string{"Electronics", "Sports"}, nil)

	s := NewProductService(repo)
	categories, err := s.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics", "Sports"}, categories)
}
