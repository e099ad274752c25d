package dto

import "github.com/spec-kit/pos-service/internal/domain"

// CategoryRequest payload for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse mirrors a category row.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewCategoryResponse maps a domain category.
func NewCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name}
}

// NewCategoryResponses maps a category slice.
func NewCategoryResponses(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, NewCategoryResponse(&categories[i]))
	}
	return out
}

// ProductRequest payload for creating or updating a product.
type ProductRequest struct {
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	CategoryID int64  `json:"categoryId"`
}

// ProductResponse mirrors a product row joined with its category name.
type ProductResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Price        int64   `json:"price"`
	CategoryID   int64   `json:"categoryId"`
	CategoryName *string `json:"categoryName,omitempty"`
}

// NewProductResponse maps a joined product projection.
func NewProductResponse(product *domain.ProductWithCategory) ProductResponse {
	return ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Price:        product.Price,
		CategoryID:   product.CategoryID,
		CategoryName: product.CategoryName,
	}
}

// NewProductResponses maps a product listing.
func NewProductResponses(products []domain.ProductWithCategory) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}
