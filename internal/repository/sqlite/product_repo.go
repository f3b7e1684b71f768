package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"store-api/internal/domain"
	"store-api/internal/repository"
)

const selectProducts = "SELECT id, name, description, price, category, stock_quantity, created_at FROM products"

type productRepo struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) FindAll(ctx context.Context, f repository.ProductFilter) ([]domain.Product, error) {
	q := newQuery(selectProducts)
	if f.Category != nil {
		q.where("category = ?", *f.Category)
	}
	if f.MinPrice != nil {
		q.where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q.where("price <= ?", *f.MaxPrice)
	}
	if f.Search != nil {
		pattern := "%" + *f.Search + "%"
		q.where("(name LIKE ? OR description LIKE ?)", pattern, pattern)
	}
	query, args := q.orderBy("created_at DESC").build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.StockQuantity, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepo) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.QueryRowContext(ctx, selectProducts+" WHERE id = ?", id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.StockQuantity, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Insert(ctx context.Context, p *domain.Product) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO products (name, description, price, category, stock_quantity) VALUES (?, ?, ?, ?, ?)",
		p.Name, p.Description, p.Price, p.Category, p.StockQuantity)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *productRepo) Update(ctx context.Context, p *domain.Product) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE products SET name = ?, description = ?, price = ?, category = ?, stock_quantity = ? WHERE id = ?",
		p.Name, p.Description, p.Price, p.Category, p.StockQuantity, p.ID)
	return err
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	return err
}

func (r *productRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT category FROM products WHERE category IS NOT NULL")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
