package domain

import "time"

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

type OrderCreatedEvent struct {
	OrderID     int64       `json:"orderId"`
	UserID      *int64      `json:"userId"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type OrderStatusChangedEvent struct {
	OrderID int64       `json:"orderId"`
	Status  OrderStatus `json:"status"`
}
