package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pos-service/internal/api/dto"
	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/service"
	apperrors "github.com/spec-kit/pos-service/pkg/util"
)

// ProductsHandler exposes product endpoints. Reads are public; writes
// require the admin flag (enforced by route middleware).
type ProductsHandler struct {
	catalog *service.CatalogService
}

// NewProductsHandler constructs the handler.
func NewProductsHandler(catalog *service.CatalogService) *ProductsHandler {
	return &ProductsHandler{catalog: catalog}
}

// List handles GET /products. limit/offset are mandatory; categoryId is an
// optional filter.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	limit, offset, err := requiredPage(c)
	if err != nil {
		return err
	}

	var categoryID *int64
	if raw := c.Query("categoryId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			categoryID = &parsed
		}
	}

	products, err := h.catalog.ListProducts(c.UserContext(), categoryID, limit, offset)
	if err != nil {
		return err
	}
	return success(c, dto.NewProductResponses(products))
}

// Get handles GET /products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	product, err := h.catalog.GetProduct(c.UserContext(), id)
	if err != nil {
		return notFoundOr(err, "product")
	}
	return success(c, dto.NewProductResponse(product))
}

// Create handles POST /products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	req, err := parseProductRequest(c)
	if err != nil {
		return err
	}

	product := &domain.Product{
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	}
	if err := h.catalog.CreateProduct(c.UserContext(), product); err != nil {
		return err
	}
	return created(c, dto.NewProductResponse(&domain.ProductWithCategory{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		CategoryID: product.CategoryID,
	}))
}

// Update handles PUT /products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	req, err := parseProductRequest(c)
	if err != nil {
		return err
	}

	product := &domain.Product{
		ID:         id,
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	}
	if err := h.catalog.UpdateProduct(c.UserContext(), product); err != nil {
		return notFoundOr(err, "product")
	}
	return success(c, dto.NewProductResponse(&domain.ProductWithCategory{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		CategoryID: product.CategoryID,
	}))
}

// Delete handles DELETE /products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteProduct(c.UserContext(), id); err != nil {
		return notFoundOr(err, "product")
	}
	return success(c, fiber.Map{"id": id})
}

func parseProductRequest(c *fiber.Ctx) (*dto.ProductRequest, error) {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Price <= 0 || req.CategoryID <= 0 {
		return nil, apperrors.NewValidationError("name, price and categoryId are required", nil)
	}
	return &req, nil
}
