package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-api/internal/domain"
)

func userColumns() []string {
	return []string{"id", "name", "email", "age", "created_at"}
}

func TestUserRepoFindByID(t *testing.T) {
	t.Run("missing row yields nil without error", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(selectUsers + " WHERE id = ?").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(userColumns()))

		u, err := repo.FindByID(context.Background(), 99)
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("null age scans to nil", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(selectUsers + " WHERE id = ?").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(1, "John Doe", "john@example.com", nil, time.Now()))

		u, err := repo.FindByID(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Nil(t, u.Age)
	})
}

func TestUserRepoInsert(t *testing.T) {
	t.Run("returns the generated id", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewUserRepository(db)

		mock.ExpectExec("INSERT INTO users (name, email, age) VALUES (?, ?, ?)").
			WithArgs("Jane Smith", "jane@example.com", 25).
			WillReturnResult(sqlmock.NewResult(6, 1))

		age := 25
		id, err := repo.Insert(context.Background(), &domain.User{Name: "Jane Smith", Email: "jane@example.com", Age: &age})
		require.NoError(t, err)
		assert.Equal(t, int64(6), id)
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewUserRepository(db)

		mock.ExpectExec("INSERT INTO users (name, email, age) VALUES (?, ?, ?)").
			WithArgs("Jane Smith", "jane@example.com", nil).
			WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

		_, err := repo.Insert(context.Background(), &domain.User{Name: "Jane Smith", Email: "jane@example.com"})
		var ce *domain.ConflictError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "Email already exists", ce.Reason)
	})

	t.Run("other errors pass through untouched", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewUserRepository(db)

		dbErr := errors.New("disk I/O error")
		mock.ExpectExec("INSERT INTO users (name, email, age) VALUES (?, ?, ?)").
			WillReturnError(dbErr)

		_, err := repo.Insert(context.Background(), &domain.User{Name: "x", Email: "y"})
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestUserRepoUpdateConflict(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("UPDATE users SET name = ?, email = ?, age = ? WHERE id = ?").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	err := repo.Update(context.Background(), &domain.User{ID: 1, Name: "x", Email: "taken@example.com"})
	var ce *domain.ConflictError
	assert.ErrorAs(t, err, &ce)
}

func TestUserRepoDelete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("DELETE FROM users WHERE id = ?").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}
