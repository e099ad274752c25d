package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pos-service/internal/api/dto"
	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/service"
	apperrors "github.com/spec-kit/pos-service/pkg/util"
)

// CategoriesHandler exposes category endpoints. Reads are public; writes
// require the admin flag (enforced by route middleware).
type CategoriesHandler struct {
	catalog *service.CatalogService
}

// NewCategoriesHandler constructs the handler.
func NewCategoriesHandler(catalog *service.CatalogService) *CategoriesHandler {
	return &CategoriesHandler{catalog: catalog}
}

// List handles GET /categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	limit, offset := optionalPage(c)
	categories, err := h.catalog.ListCategories(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return success(c, dto.NewCategoryResponses(categories))
}

// Get handles GET /categories/:id.
func (h *CategoriesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	category, err := h.catalog.GetCategory(c.UserContext(), id)
	if err != nil {
		return notFoundOr(err, "category")
	}
	return success(c, dto.NewCategoryResponse(category))
}

// Create handles POST /categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	req, err := parseCategoryRequest(c)
	if err != nil {
		return err
	}

	category := &domain.Category{Name: req.Name}
	if err := h.catalog.CreateCategory(c.UserContext(), category); err != nil {
		return err
	}
	return created(c, dto.NewCategoryResponse(category))
}

// Update handles PUT /categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	req, err := parseCategoryRequest(c)
	if err != nil {
		return err
	}

	category := &domain.Category{ID: id, Name: req.Name}
	if err := h.catalog.UpdateCategory(c.UserContext(), category); err != nil {
		return notFoundOr(err, "category")
	}
	return success(c, dto.NewCategoryResponse(category))
}

// Delete handles DELETE /categories/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteCategory(c.UserContext(), id); err != nil {
		return notFoundOr(err, "category")
	}
	return success(c, fiber.Map{"id": id})
}

func parseCategoryRequest(c *fiber.Ctx) (*dto.CategoryRequest, error) {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	return &req, nil
}
