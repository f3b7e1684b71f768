package services

import (
	"context"

	"store-api/internal/domain"
	"store-api/internal/repository"
)

type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context, f repository.ProductFilter) ([]domain.Product, error) {
	return s.products.FindAll(ctx, f)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, name string, description *string, price float64, category *string, stockQuantity *int) (*domain.Product, error) {
	if name == "" || price == 0 {
		return nil, &domain.ValidationError{Reason: "Name and price are required"}
	}

	if stockQuantity == nil {
		zero := 0
		stockQuantity = &zero
	}
	id, err := s.products.Insert(ctx, &domain.Product{
		Name:          name,
		Description:   description,
		Price:         price,
		Category:      category,
		StockQuantity: stockQuantity,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrProductNotFound
	}

	if patch.Name != "" {
		existing.Name = patch.Name
	}
	if patch.Description.Set {
		existing.Description = patch.Description.Value
	}
	if patch.Price != 0 {
		existing.Price = patch.Price
	}
	if patch.Category != "" {
		category := patch.Category
		existing.Category = &category
	}
	if patch.StockQuantity.Set {
		existing.StockQuantity = patch.StockQuantity.Value
	}

	if err := s.products.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrProductNotFound
	}
	return s.products.Delete(ctx, id)
}

func (s *ProductService) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.products.FindAll(ctx, repository.ProductFilter{Category: &category})
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.products.Categories(ctx)
}
