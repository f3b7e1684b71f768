package domain

import "time"

type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Price         float64   `json:"price"`
	Category      *string   `json:"category"`
	StockQuantity *int      `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProductPatch carries a partial update. Name, Price and Category keep the
// stored value when zero; Description and StockQuantity honor an explicit
// null / zero when the field was present in the request.
type ProductPatch struct {
	Name          string
	Description   Optional[string]
	Price         float64
	Category      string
	StockQuantity Optional[int]
}
