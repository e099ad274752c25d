package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/pos-service/pkg/util"
)

const claimsKey = "auth_claims"

// RequireAuth validates the bearer token and stores claims in the request
// context. Missing header, wrong scheme, bad signature and expiry all map
// to the same 401 so clients cannot probe why a token was refused.
func RequireAuth(tokens *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.NewUnauthorized("authentication required")
		}

		// Exact scheme prefix; "bearer" and friends are rejected.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return apperrors.NewUnauthorized("authentication required")
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			return apperrors.NewUnauthorized("invalid or expired token")
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// RequireAdmin rejects authenticated callers whose claims lack the admin
// flag. Must be registered after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !claims.IsAdmin {
			return apperrors.NewForbidden("admin access required")
		}
		return c.Next()
	}
}

// ClaimsFromContext retrieves the verified claims stored by RequireAuth.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
