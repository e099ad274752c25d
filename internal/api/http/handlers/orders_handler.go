package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pos-service/internal/api/dto"
	"github.com/spec-kit/pos-service/internal/auth"
	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/repository"
	"github.com/spec-kit/pos-service/internal/service"
	apperrors "github.com/spec-kit/pos-service/pkg/util"
)

// OrdersHandler exposes order endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs the handler.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// List handles GET /orders. Admins see every order; other callers only
// their own.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	limit, offset, err := requiredPage(c)
	if err != nil {
		return err
	}

	var customerID *int64
	if !claims.IsAdmin {
		customerID = &claims.CustomerID
	}

	orders, err := h.orders.List(c.UserContext(), customerID, limit, offset)
	if err != nil {
		return err
	}
	return success(c, dto.NewOrderSummaryResponses(orders))
}

// Create handles POST /orders. The order is placed for the caller's own
// customer profile.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	inputs := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return apperrors.NewValidationError("items require positive productId and quantity", nil)
		}
		inputs = append(inputs, service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, items, err := h.orders.Create(c.UserContext(), claims.CustomerID, inputs, req.IsDelivery)
	if err != nil {
		return err
	}

	return created(c, fiber.Map{
		"order": dto.NewOrderResponse(order),
		"items": dto.NewOrderItemResponses(items),
	})
}

// Get handles GET /orders/:id. Non-admin callers may only read orders that
// belong to their customer profile.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	detail, err := h.orders.Get(c.UserContext(), id)
	if err != nil {
		return notFoundOr(err, "order")
	}
	if !claims.IsAdmin && detail.CustomerID != claims.CustomerID {
		return apperrors.NewForbidden("access denied")
	}
	return success(c, dto.NewOrderDetailResponse(detail))
}

// Update handles PUT /orders/:id (admin only).
func (h *OrdersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.OrderUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	patch := repository.OrderPatch{IsDelivery: req.IsDelivery}
	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		patch.Status = &status
	}

	order, err := h.orders.Update(c.UserContext(), id, patch)
	if err != nil {
		return notFoundOr(err, "order")
	}
	return success(c, dto.NewOrderResponse(order))
}

// Delete handles DELETE /orders/:id (admin only).
func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.orders.Delete(c.UserContext(), id); err != nil {
		return notFoundOr(err, "order")
	}
	return success(c, fiber.Map{"id": id})
}
