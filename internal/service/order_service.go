package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/events"
	"github.com/spec-kit/pos-service/internal/repository"
	apperrors "github.com/spec-kit/pos-service/pkg/util"
)

// OrderItemInput is a requested order line. The unit price is always
// resolved server-side from the catalog, never taken from the client.
type OrderItemInput struct {
	ProductID int64
	Quantity  int64
}

// OrderService coordinates order placement and administration.
type OrderService struct {
	orders     repository.OrderRepository
	products   repository.ProductRepository
	dispatcher events.Dispatcher
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, products: products, dispatcher: dispatcher}
}

// Create prices the requested items, computes the total and stores the
// order with its lines in one transaction.
func (s *OrderService) Create(ctx context.Context, customerID int64, inputs []OrderItemInput, isDelivery bool) (*domain.Order, []domain.OrderItem, error) {
	if len(inputs) == 0 {
		return nil, nil, apperrors.NewValidationError("order must contain at least one item", nil)
	}

	ids := make([]int64, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.ProductID)
	}
	prices, err := s.products.PricesByID(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	var totalPrice int64
	items := make([]domain.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		price, ok := prices[in.ProductID]
		if !ok {
			return nil, nil, apperrors.NewValidationError(
				fmt.Sprintf("product %d not found", in.ProductID), nil)
		}
		totalPrice += price * in.Quantity
		items = append(items, domain.OrderItem{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Price:     price,
		})
	}

	order := &domain.Order{
		CustomerID: customerID,
		TotalPrice: totalPrice,
		IsDelivery: isDelivery,
		Status:     domain.OrderStatusPending,
	}
	if err := s.orders.CreateWithItems(ctx, order, items); err != nil {
		return nil, nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventOrderCreated,
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			Timestamp:  time.Now(),
			Payload: events.OrderCreatedPayload{
				TotalPrice: order.TotalPrice,
				ItemCount:  len(items),
				IsDelivery: order.IsDelivery,
			},
		})
	}

	return order, items, nil
}

// List returns order summaries, optionally restricted to one customer.
func (s *OrderService) List(ctx context.Context, customerID *int64, limit, offset int) ([]domain.OrderSummary, error) {
	return s.orders.List(ctx, customerID, limit, offset)
}

// Get returns one order with its item lines.
func (s *OrderService) Get(ctx context.Context, id int64) (*domain.OrderDetail, error) {
	return s.orders.GetDetail(ctx, id)
}

// Update applies an admin patch to an order, emitting a status-change event
// when the status actually moves.
func (s *OrderService) Update(ctx context.Context, id int64, patch repository.OrderPatch) (*domain.Order, error) {
	if patch.Status != nil && !domain.ValidOrderStatus(*patch.Status) {
		return nil, apperrors.NewValidationError("invalid status: must be 'pending' or 'completed'", nil)
	}

	before, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil && patch.Status != nil && before.Status != order.Status {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventOrderStatusChanged,
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			Timestamp:  time.Now(),
			Payload: events.OrderStatusChangedPayload{
				OldStatus: before.Status,
				NewStatus: order.Status,
			},
		})
	}

	return order, nil
}

// Delete removes an order and its cascading items.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}
