package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"store-api/internal/domain"
	"store-api/internal/repository"
)

const (
	selectOrders       = "SELECT id, user_id, total_amount, status, created_at FROM orders"
	selectOrdersJoined = "SELECT o.id, o.user_id, o.total_amount, o.status, o.created_at, u.name, u.email FROM orders o LEFT JOIN users u ON o.user_id = u.id"
)

type orderRepo struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) FindAll(ctx context.Context, f repository.OrderFilter) ([]domain.OrderWithUser, error) {
	q := newQuery(selectOrdersJoined)
	if f.Status != nil {
		q.where("o.status = ?", *f.Status)
	}
	if f.UserID != nil {
		q.where("o.user_id = ?", *f.UserID)
	}
	query, args := q.orderBy("o.created_at DESC").build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.OrderWithUser{}
	for rows.Next() {
		var o domain.OrderWithUser
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UserName, &o.UserEmail); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *orderRepo) FindByID(ctx context.Context, id int64) (*domain.OrderWithUser, error) {
	var o domain.OrderWithUser
	err := r.db.QueryRowContext(ctx, selectOrdersJoined+" WHERE o.id = ?", id).
		Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UserName, &o.UserEmail)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindPlainByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRowContext(ctx, selectOrders+" WHERE id = ?", id).
		Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	query, args := newQuery(selectOrders).where("user_id = ?", userID).orderBy("created_at DESC").build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *orderRepo) Insert(ctx context.Context, o *domain.Order) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO orders (user_id, total_amount, status) VALUES (?, ?, ?)",
		o.UserID, o.TotalAmount, o.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *orderRepo) Update(ctx context.Context, o *domain.Order) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE orders SET user_id = ?, total_amount = ?, status = ? WHERE id = ?",
		o.UserID, o.TotalAmount, o.Status, o.ID)
	return err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	_, err := r.db.ExecContext(ctx, "UPDATE orders SET status = ? WHERE id = ?", status, id)
	return err
}

func (r *orderRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id)
	return err
}
