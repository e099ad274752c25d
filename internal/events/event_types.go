package events

import (
	"time"

	"github.com/spec-kit/pos-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCreated       EventType = "order_created"
	EventOrderStatusChanged EventType = "order_status_changed"
	EventAccountSignedUp    EventType = "account_signed_up"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	OrderID    int64       `json:"order_id,omitempty"`
	CustomerID int64       `json:"customer_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	TotalPrice int64 `json:"total_price"`
	ItemCount  int   `json:"item_count"`
	IsDelivery bool  `json:"is_delivery"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OldStatus domain.OrderStatus `json:"old_status"`
	NewStatus domain.OrderStatus `json:"new_status"`
}

// AccountSignedUpPayload payload.
type AccountSignedUpPayload struct {
	AccountID int64  `json:"account_id"`
	UserName  string `json:"user_name"`
}
