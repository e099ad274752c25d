package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/persistence"
	"github.com/spec-kit/pos-service/internal/repository"
)

const productCacheVersionKey = "catalog:products:ver"

// CatalogService serves products and categories, caching product listings
// in Redis. Cache failures degrade to database reads, never to request
// failures.
type CatalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cache      *persistence.Redis
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewCatalogService builds the service.
func NewCatalogService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	cache *persistence.Redis,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// ListProducts returns a catalog page, reading through the Redis cache.
func (s *CatalogService) ListProducts(ctx context.Context, categoryID *int64, limit, offset int) ([]domain.ProductWithCategory, error) {
	key := s.productListKey(ctx, categoryID, limit, offset)
	if key != "" {
		var cached []domain.ProductWithCategory
		if s.cache.FetchJSON(ctx, key, &cached) {
			return cached, nil
		}
	}

	products, err := s.products.List(ctx, categoryID, limit, offset)
	if err != nil {
		return nil, err
	}

	if key != "" {
		if err := s.cache.StoreJSON(ctx, key, products, s.cacheTTL); err != nil {
			s.logger.Debug("product cache write failed", zap.Error(err))
		}
	}
	return products, nil
}

// GetProduct fetches one product joined with its category name.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.ProductWithCategory, error) {
	return s.products.GetByID(ctx, id)
}

// CreateProduct stores a new product and invalidates cached listings.
func (s *CatalogService) CreateProduct(ctx context.Context, product *domain.Product) error {
	if err := s.products.Create(ctx, product); err != nil {
		return err
	}
	s.bumpProductCache(ctx)
	return nil
}

// UpdateProduct updates a product and invalidates cached listings.
func (s *CatalogService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if err := s.products.Update(ctx, product); err != nil {
		return err
	}
	s.bumpProductCache(ctx)
	return nil
}

// DeleteProduct removes a product and invalidates cached listings.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.bumpProductCache(ctx)
	return nil
}

// ListCategories returns categories, optionally paged.
func (s *CatalogService) ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	return s.categories.List(ctx, limit, offset)
}

// GetCategory fetches one category.
func (s *CatalogService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// CreateCategory stores a new category.
func (s *CatalogService) CreateCategory(ctx context.Context, category *domain.Category) error {
	return s.categories.Create(ctx, category)
}

// UpdateCategory renames a category.
func (s *CatalogService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	return s.categories.Update(ctx, category)
}

// DeleteCategory removes a category; products under it cascade away, so the
// product cache is invalidated too.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.bumpProductCache(ctx)
	return nil
}

// productListKey embeds a version counter so mutations invalidate every
// cached page with a single INCR instead of key scans. An empty key
// disables caching for the request.
func (s *CatalogService) productListKey(ctx context.Context, categoryID *int64, limit, offset int) string {
	if !s.cache.Available() || s.cacheTTL <= 0 {
		return ""
	}
	ver := s.cache.Counter(ctx, productCacheVersionKey)
	category := int64(-1)
	if categoryID != nil {
		category = *categoryID
	}
	return fmt.Sprintf("catalog:products:%d:%d:%d:%d", ver, category, limit, offset)
}

func (s *CatalogService) bumpProductCache(ctx context.Context) {
	if err := s.cache.Bump(ctx, productCacheVersionKey); err != nil {
		s.logger.Debug("product cache invalidation failed", zap.Error(err))
	}
}
