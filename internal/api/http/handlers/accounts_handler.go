package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pos-service/internal/api/dto"
	"github.com/spec-kit/pos-service/internal/service"
)

// AccountsHandler exposes admin account management endpoints.
type AccountsHandler struct {
	customers *service.CustomerService
}

// NewAccountsHandler constructs the handler.
func NewAccountsHandler(customers *service.CustomerService) *AccountsHandler {
	return &AccountsHandler{customers: customers}
}

// List handles GET /accounts (admin only).
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	limit, offset := optionalPage(c)
	accounts, err := h.customers.ListAccounts(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return success(c, dto.NewAccountResponses(accounts))
}

// Delete handles DELETE /accounts/:id (admin only). The customer profile
// survives; only the login is removed.
func (h *AccountsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.customers.DeleteAccount(c.UserContext(), id); err != nil {
		return notFoundOr(err, "account")
	}
	return success(c, fiber.Map{"id": id})
}
