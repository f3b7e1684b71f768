package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"

	"store-api/internal/domain"
	"store-api/internal/repository"
)

const selectUsers = "SELECT id, name, email, age, created_at FROM users"

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	query, args := newQuery(selectUsers).orderBy("created_at DESC").build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Age, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, selectUsers+" WHERE id = ?", id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Age, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Insert(ctx context.Context, u *domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (name, email, age) VALUES (?, ?, ?)",
		u.Name, u.Email, u.Age)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, &domain.ConflictError{Reason: "Email already exists"}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r *userRepo) Update(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET name = ?, email = ?, age = ? WHERE id = ?",
		u.Name, u.Email, u.Age, u.ID)
	if err != nil && isUniqueViolation(err) {
		return &domain.ConflictError{Reason: "Email already exists"}
	}
	return err
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	return err
}

func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique
}
