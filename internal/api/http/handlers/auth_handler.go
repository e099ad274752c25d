package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pos-service/internal/api/dto"
	"github.com/spec-kit/pos-service/internal/auth"
	"github.com/spec-kit/pos-service/internal/service"
	apperrors "github.com/spec-kit/pos-service/pkg/util"
)

// AuthHandler exposes login, signup and profile endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserName == "" || req.Password == "" {
		return apperrors.NewValidationError("userName and password are required", nil)
	}

	result, err := h.auth.Login(c.UserContext(), req.UserName, req.Password)
	if err != nil {
		return err
	}

	return success(c, dto.AuthResponse{Token: result.Token, User: authUser(result)})
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserName == "" || req.Password == "" || req.Name == "" || req.Phone == "" {
		return apperrors.NewValidationError("userName, password, name and phone are required", nil)
	}

	result, customer, err := h.auth.Signup(c.UserContext(), service.SignupInput{
		UserName: req.UserName,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}

	user := authUser(result)
	user.Name = customer.Name
	user.Phone = customer.Phone
	return created(c, dto.AuthResponse{Token: result.Token, User: user})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if claims.IsAdmin {
		return success(c, fiber.Map{
			"userName": claims.UserName,
			"isAdmin":  true,
		})
	}

	profile, err := h.auth.Profile(c.UserContext(), claims.SubjectID)
	if err != nil {
		return err
	}

	return success(c, dto.ProfileResponse{
		ID:         profile.ID,
		UserName:   profile.UserName,
		CustomerID: profile.CustomerID,
		Name:       profile.CustomerName,
		Phone:      profile.CustomerPhone,
		Address:    profile.CustomerAddress,
		IsAdmin:    false,
	})
}

func authUser(result *service.LoginResult) dto.AuthUser {
	user := dto.AuthUser{UserName: result.UserName, IsAdmin: result.IsAdmin}
	if !result.IsAdmin {
		id := result.SubjectID
		customerID := result.CustomerID
		user.ID = &id
		user.CustomerID = &customerID
	}
	return user
}
