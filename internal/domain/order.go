package domain

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the five order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderStatuses lists the accepted values, in the order they appear in
// user-facing messages.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
}

type Order struct {
	ID          int64       `json:"id"`
	UserID      *int64      `json:"user_id"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderWithUser is an order row joined with the owning user's name and
// email. Both are nil when the order has no user.
type OrderWithUser struct {
	Order
	UserName  *string `json:"user_name"`
	UserEmail *string `json:"user_email"`
}

// OrderPatch carries a partial update. TotalAmount and Status keep the
// stored value when zero; UserID honors an explicit null when present.
type OrderPatch struct {
	UserID      Optional[int64]
	TotalAmount float64
	Status      OrderStatus
}
