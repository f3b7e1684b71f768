package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryBuilder(t *testing.T) {
	t.Run("no conditions", func(t *testing.T) {
		query, args := newQuery("SELECT * FROM products").build()
		assert.Equal(t, "SELECT * FROM products", query)
		assert.Empty(t, args)
	})

	t.Run("single condition with ordering", func(t *testing.T) {
		query, args := newQuery("SELECT * FROM products").
			where("category = ?", "Electronics").
			orderBy("created_at DESC").
			build()
		assert.Equal(t, "SELECT * FROM products WHERE category = ? ORDER BY created_at DESC", query)
		assert.Equal(t, []any{"Electronics"}, args)
	})

	t.Run("conditions joined with AND in call order", func(t *testing.T) {
		query, args := newQuery("SELECT * FROM products").
			where("category = ?", "Sports").
			where("price >= ?", 50.0).
			where("price <= ?", 100.0).
			build()
		assert.Equal(t, "SELECT * FROM products WHERE category = ? AND price >= ? AND price <= ?", query)
		assert.Equal(t, []any{"Sports", 50.0, 100.0}, args)
	})

	t.Run("multi-parameter condition keeps argument order", func(t *testing.T) {
		query, args := newQuery("SELECT * FROM products").
			where("(name LIKE ? OR description LIKE ?)", "%lamp%", "%lamp%").
			where("price >= ?", 10.0).
			build()
		assert.Equal(t, "SELECT * FROM products WHERE (name LIKE ? OR description LIKE ?) AND price >= ?", query)
		assert.Equal(t, []any{"%lamp%", "%lamp%", 10.0}, args)
	})
}
