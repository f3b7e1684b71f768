package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCreatesSchemaAndSeedsOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range schema {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// 5 users, 8 products, 5 orders
	for i := 0; i < 18; i++ {
		mock.ExpectExec("INSERT OR IGNORE").WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}

	require.NoError(t, Init(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserNullsOrderReference(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "data", "app.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Init(ctx, db))

	_, err = db.ExecContext(ctx, "DELETE FROM users WHERE id = 1")
	require.NoError(t, err)

	var userID *int64
	require.NoError(t, db.QueryRowContext(ctx, "SELECT user_id FROM orders WHERE id = 1").Scan(&userID))
	assert.Nil(t, userID, "deleting a user should detach their orders, not remove them")

	var orders int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders").Scan(&orders))
	assert.Equal(t, 5, orders)
}

func TestUserIDsGrowMonotonically(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Init(ctx, db))

	first, err := db.ExecContext(ctx, "INSERT INTO users (name, email) VALUES (?, ?)", "Frank Castle", "frank@example.com")
	require.NoError(t, err)
	firstID, err := first.LastInsertId()
	require.NoError(t, err)

	second, err := db.ExecContext(ctx, "INSERT INTO users (name, email) VALUES (?, ?)", "Grace Hopper", "grace@example.com")
	require.NoError(t, err)
	secondID, err := second.LastInsertId()
	require.NoError(t, err)

	assert.Greater(t, firstID, int64(5), "seed occupies the first five ids")
	assert.Greater(t, secondID, firstID)
}

func TestInitSkipsSeedWhenUsersExist(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range schema {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	require.NoError(t, Init(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
