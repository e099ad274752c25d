package dto

import (
	"time"

	"github.com/spec-kit/pos-service/internal/domain"
)

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// OrderCreateRequest payload for placing an order.
type OrderCreateRequest struct {
	Items      []OrderItemRequest `json:"items"`
	IsDelivery bool               `json:"isDelivery"`
}

// OrderUpdateRequest payload for admin order patches; nil fields are left
// unchanged.
type OrderUpdateRequest struct {
	Status     *string `json:"status,omitempty"`
	IsDelivery *bool   `json:"isDelivery,omitempty"`
}

// OrderResponse mirrors an order row.
type OrderResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	TotalPrice int64     `json:"totalPrice"`
	IsDelivery bool      `json:"isDelivery"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewOrderResponse maps a domain order.
func NewOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		TotalPrice: order.TotalPrice,
		IsDelivery: order.IsDelivery,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
	}
}

// OrderItemResponse mirrors an order line.
type OrderItemResponse struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"productId"`
	ProductName *string `json:"productName,omitempty"`
	Quantity    int64   `json:"quantity"`
	Price       int64   `json:"price"`
}

// NewOrderItemResponses maps created order lines (no product name join).
func NewOrderItemResponses(items []domain.OrderItem) []OrderItemResponse {
	out := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return out
}

// OrderSummaryResponse is a listing row joined with customer contact info.
type OrderSummaryResponse struct {
	ID            int64     `json:"id"`
	CustomerID    int64     `json:"customerId"`
	CustomerName  *string   `json:"customerName"`
	CustomerPhone *string   `json:"customerPhone"`
	TotalPrice    int64     `json:"totalPrice"`
	IsDelivery    bool      `json:"isDelivery"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewOrderSummaryResponses maps an order listing.
func NewOrderSummaryResponses(orders []domain.OrderSummary) []OrderSummaryResponse {
	out := make([]OrderSummaryResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, OrderSummaryResponse{
			ID:            order.ID,
			CustomerID:    order.CustomerID,
			CustomerName:  order.CustomerName,
			CustomerPhone: order.CustomerPhone,
			TotalPrice:    order.TotalPrice,
			IsDelivery:    order.IsDelivery,
			Status:        string(order.Status),
			CreatedAt:     order.CreatedAt,
		})
	}
	return out
}

// OrderDetailResponse is a full order view including customer address and
// item lines.
type OrderDetailResponse struct {
	OrderSummaryResponse
	CustomerAddress *string             `json:"customerAddress"`
	Items           []OrderItemResponse `json:"items"`
}

// NewOrderDetailResponse maps a full order view.
func NewOrderDetailResponse(detail *domain.OrderDetail) OrderDetailResponse {
	items := make([]OrderItemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return OrderDetailResponse{
		OrderSummaryResponse: OrderSummaryResponse{
			ID:            detail.ID,
			CustomerID:    detail.CustomerID,
			CustomerName:  detail.CustomerName,
			CustomerPhone: detail.CustomerPhone,
			TotalPrice:    detail.TotalPrice,
			IsDelivery:    detail.IsDelivery,
			Status:        string(detail.Status),
			CreatedAt:     detail.CreatedAt,
		},
		CustomerAddress: detail.CustomerAddress,
		Items:           items,
	}
}
