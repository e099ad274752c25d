package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pos-service/internal/domain"
)

// ProductRepository defines persistence access for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.ProductWithCategory, error)
	List(ctx context.Context, categoryID *int64, limit, offset int) ([]domain.ProductWithCategory, error)
	Delete(ctx context.Context, id int64) error
	PricesByID(ctx context.Context, ids []int64) (map[int64]int64, error)
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a Postgres-backed implementation.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (name, price, category_id)
        VALUES ($1, $2, $3)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		product.Name,
		product.Price,
		product.CategoryID,
	).Scan(&product.ID)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
        UPDATE products SET name=$1, price=$2, category_id=$3
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		product.Name,
		product.Price,
		product.CategoryID,
		product.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.ProductWithCategory, error) {
	const query = `
        SELECT p.id, p.name, p.price, p.category_id, c.name
        FROM products p
        LEFT JOIN categories c ON p.category_id = c.id
        WHERE p.id=$1`

	var product domain.ProductWithCategory
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.CategoryID,
		&product.CategoryName,
	); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, categoryID *int64, limit, offset int) ([]domain.ProductWithCategory, error) {
	query := `
        SELECT p.id, p.name, p.price, p.category_id, c.name
        FROM products p
        LEFT JOIN categories c ON p.category_id = c.id`
	args := []any{}
	if categoryID != nil {
		query += ` WHERE p.category_id=$1`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY p.id` + pageClause(limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]domain.ProductWithCategory, 0)
	for rows.Next() {
		var product domain.ProductWithCategory
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.CategoryID,
			&product.CategoryName,
		); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) PricesByID(ctx context.Context, ids []int64) (map[int64]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, price FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make(map[int64]int64, len(ids))
	for rows.Next() {
		var id, price int64
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		prices[id] = price
	}
	return prices, rows.Err()
}
