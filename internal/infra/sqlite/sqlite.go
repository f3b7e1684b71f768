// Package sqlite opens the application database and prepares its schema.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (creating if needed) the SQLite database at path with foreign
// keys enforced, so orders.user_id follows ON DELETE SET NULL.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		age INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		price REAL NOT NULL,
		category TEXT,
		stock_quantity INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		total_amount REAL NOT NULL,
		status TEXT DEFAULT 'pending' CHECK (status IN ('pending', 'processing', 'shipped', 'delivered', 'cancelled')),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE SET NULL
	)`,
}

// Init creates the schema idempotently and seeds sample rows on first run.
func Init(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return seed(ctx, db)
}

// seed inserts fixed sample data. Guarded on the users table being empty so
// restarts do not multiply rows.
func seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	users := [][]any{
		{"John Doe", "john@example.com", 30},
		{"Jane Smith", "jane@example.com", 25},
		{"Bob Johnson", "bob@example.com", 35},
		{"Alice Brown", "alice@example.com", 28},
		{"Charlie Wilson", "charlie@example.com", 32},
	}
	for _, u := range users {
		if _, err := db.ExecContext(ctx, "INSERT OR IGNORE INTO users (name, email, age) VALUES (?, ?, ?)", u...); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	products := [][]any{
		{"Laptop", "High-performance laptop for work and gaming", 999.99, "Electronics", 50},
		{"Smartphone", "Latest smartphone with advanced features", 699.99, "Electronics", 100},
		{"Coffee Maker", "Automatic coffee maker for home use", 89.99, "Home & Kitchen", 25},
		{"Running Shoes", "Comfortable running shoes for athletes", 129.99, "Sports", 75},
		{"Backpack", "Durable backpack for daily use", 49.99, "Fashion", 60},
		{"Wireless Headphones", "Noise-cancelling wireless headphones", 199.99, "Electronics", 40},
		{"Yoga Mat", "Non-slip yoga mat for fitness", 29.99, "Sports", 100},
		{"Desk Lamp", "LED desk lamp with adjustable brightness", 39.99, "Home & Kitchen", 30},
	}
	for _, p := range products {
		if _, err := db.ExecContext(ctx, "INSERT OR IGNORE INTO products (name, description, price, category, stock_quantity) VALUES (?, ?, ?, ?, ?)", p...); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}

	orders := [][]any{
		{1, 999.99, "delivered"},
		{2, 89.99, "shipped"},
		{3, 129.99, "processing"},
		{1, 199.99, "pending"},
		{4, 49.99, "delivered"},
	}
	for _, o := range orders {
		if _, err := db.ExecContext(ctx, "INSERT OR IGNORE INTO orders (user_id, total_amount, status) VALUES (?, ?, ?)", o...); err != nil {
			return fmt.Errorf("seed orders: %w", err)
		}
	}
	return nil
}
