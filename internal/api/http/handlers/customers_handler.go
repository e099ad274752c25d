package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pos-service/internal/api/dto"
	"github.com/spec-kit/pos-service/internal/auth"
	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/service"
	apperrors "github.com/spec-kit/pos-service/pkg/util"
)

// CustomersHandler exposes customer profile endpoints.
type CustomersHandler struct {
	customers *service.CustomerService
}

// NewCustomersHandler constructs the handler.
func NewCustomersHandler(customers *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{customers: customers}
}

// List handles GET /customers (admin only).
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	limit, offset := optionalPage(c)
	customers, err := h.customers.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return success(c, dto.NewCustomerResponses(customers))
}

// Get handles GET /customers/:id. Non-admin callers may only read their
// own profile.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := requireSelfOrAdmin(c, id); err != nil {
		return err
	}

	customer, err := h.customers.Get(c.UserContext(), id)
	if err != nil {
		return notFoundOr(err, "customer")
	}
	return success(c, dto.NewCustomerResponse(customer))
}

// Update handles PUT /customers/:id. Non-admin callers may only update
// their own profile.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := requireSelfOrAdmin(c, id); err != nil {
		return err
	}

	var req dto.CustomerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Phone == "" {
		return apperrors.NewValidationError("name and phone are required", nil)
	}

	customer := &domain.Customer{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := h.customers.Update(c.UserContext(), customer); err != nil {
		return notFoundOr(err, "customer")
	}
	return success(c, dto.NewCustomerResponse(customer))
}

// requireSelfOrAdmin rejects authenticated callers targeting a customer id
// other than their own, unless they hold the admin flag.
func requireSelfOrAdmin(c *fiber.Ctx, customerID int64) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if !claims.IsAdmin && claims.CustomerID != customerID {
		return apperrors.NewForbidden("access denied")
	}
	return nil
}
