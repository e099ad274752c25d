package domain

import "time"

// OrderStatus enumerates order lifecycle states.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// ValidOrderStatus reports whether s is an accepted status value.
func ValidOrderStatus(s OrderStatus) bool {
	return s == OrderStatusPending || s == OrderStatusCompleted
}

// Order is the purchase aggregate root.
type Order struct {
	ID         int64
	CustomerID int64
	TotalPrice int64
	IsDelivery bool
	Status     OrderStatus
	CreatedAt  time.Time
}

// OrderItem is a single product line within an order. Price is the unit
// price captured at order time, not a live catalog lookup.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
	Price     int64
}

// OrderSummary is the listing projection joining customer details.
type OrderSummary struct {
	ID            int64
	CustomerID    int64
	CustomerName  *string
	CustomerPhone *string
	TotalPrice    int64
	IsDelivery    bool
	Status        OrderStatus
	CreatedAt     time.Time
}

// OrderItemDetail is the order-view projection joining the product name.
type OrderItemDetail struct {
	ID          int64
	ProductID   int64
	ProductName *string
	Quantity    int64
	Price       int64
}

// OrderDetail is a full order view: summary plus customer address and items.
type OrderDetail struct {
	OrderSummary
	CustomerAddress *string
	Items           []OrderItemDetail
}
