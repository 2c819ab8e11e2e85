package models

import "time"

// Order status values. The only transition ever performed is
// StatusOrdered -> StatusReturned; StatusDelivered exists for data written
// by back-office tooling but no endpoint sets it.
const (
	StatusOrdered   = "Ordered"
	StatusDelivered = "Delivered"
	StatusReturned  = "Returned"
)

// OrderItem is one line of the cart snapshot frozen into an order.
type OrderItem struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"` // price at time of purchase
	Quantity  int     `json:"quantity"`
}

// Order is an immutable snapshot of a cart plus purchase metadata.
// Customer fields are denormalized from the user at checkout time.
type Order struct {
	ID           string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string      `json:"userId" gorm:"index;type:varchar(36)"`
	CustomerName string      `json:"customerName"`
	Email        string      `json:"email"`
	Address      string      `json:"address"`
	Items        []OrderItem `json:"cartItems" gorm:"serializer:json"`
	TotalAmount  float64     `json:"totalAmount"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"orderDate"`
	UpdatedAt    time.Time   `json:"-"`
}
