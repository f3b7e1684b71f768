package http

import "store-api/internal/domain"

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   *int   `json:"age"`
}

// Update requests deliberately carry no binding tags: empty fields mean
// "keep the stored value", and Optional fields distinguish an absent field
// from an explicit null.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

type CreateProductRequest struct {
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Price         float64 `json:"price"`
	Category      *string `json:"category"`
	StockQuantity *int    `json:"stock_quantity"`
}

type UpdateProductRequest struct {
	Name          string                  `json:"name"`
	Description   domain.Optional[string] `json:"description"`
	Price         float64                 `json:"price"`
	Category      string                  `json:"category"`
	StockQuantity domain.Optional[int]    `json:"stock_quantity"`
}

type CreateOrderRequest struct {
	UserID      *int64             `json:"user_id"`
	TotalAmount float64            `json:"total_amount"`
	Status      domain.OrderStatus `json:"status"`
}

type UpdateOrderRequest struct {
	UserID      domain.Optional[int64] `json:"user_id"`
	TotalAmount float64                `json:"total_amount"`
	Status      domain.OrderStatus     `json:"status"`
}

type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}
