package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	apperrors "github.com/spec-kit/pos-service/pkg/util"
)

// parseID extracts a positive integer :id route parameter.
func parseID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", nil)
	}
	return id, nil
}

// requiredPage reads limit/offset query params, rejecting absent,
// non-numeric or negative values.
func requiredPage(c *fiber.Ctx) (int, int, error) {
	rawLimit := c.Query("limit")
	rawOffset := c.Query("offset")
	if rawLimit == "" || rawOffset == "" {
		return 0, 0, apperrors.NewValidationError("limit and offset are required", nil)
	}
	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit < 0 {
		return 0, 0, apperrors.NewValidationError("invalid limit or offset", nil)
	}
	offset, err := strconv.Atoi(rawOffset)
	if err != nil || offset < 0 {
		return 0, 0, apperrors.NewValidationError("invalid limit or offset", nil)
	}
	return limit, offset, nil
}

// optionalPage reads limit/offset query params, returning -1 (unbounded)
// for absent or unparseable values.
func optionalPage(c *fiber.Ctx) (int, int) {
	limit, offset := -1, -1
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			offset = parsed
		}
	}
	return limit, offset
}

// notFoundOr maps missing rows to a named 404 and passes everything else
// through to the error middleware.
func notFoundOr(err error, resource string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource, nil)
	}
	return err
}

// success wraps data in the response envelope.
func success(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

// created wraps data in the response envelope with a 201 status.
func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}
