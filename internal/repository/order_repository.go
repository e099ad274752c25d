package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pos-service/internal/domain"
)

// OrderPatch carries the admin-editable order fields; nil means unchanged.
type OrderPatch struct {
	Status     *domain.OrderStatus
	IsDelivery *bool
}

// OrderRepository defines persistence access for orders and their items.
type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *domain.Order, items []domain.OrderItem) error
	List(ctx context.Context, customerID *int64, limit, offset int) ([]domain.OrderSummary, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetDetail(ctx context.Context, id int64) (*domain.OrderDetail, error)
	Update(ctx context.Context, id int64, patch OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) CreateWithItems(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const orderQuery = `
        INSERT INTO orders (customer_id, total_price, is_delivery, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`
	if err := tx.QueryRow(ctx, orderQuery,
		order.CustomerID,
		order.TotalPrice,
		order.IsDelivery,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	const itemQuery = `
        INSERT INTO order_items (order_id, product_id, quantity, price)
        VALUES ($1, $2, $3, $4)
        RETURNING id`
	for i := range items {
		items[i].OrderID = order.ID
		if err := tx.QueryRow(ctx, itemQuery,
			items[i].OrderID,
			items[i].ProductID,
			items[i].Quantity,
			items[i].Price,
		).Scan(&items[i].ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) List(ctx context.Context, customerID *int64, limit, offset int) ([]domain.OrderSummary, error) {
	query := `
        SELECT o.id, o.customer_id, c.name, c.phone, o.total_price, o.is_delivery, o.status, o.created_at
        FROM orders o
        LEFT JOIN customers c ON o.customer_id = c.id`
	args := []any{}
	if customerID != nil {
		query += ` WHERE o.customer_id=$1`
		args = append(args, *customerID)
	}
	query += ` ORDER BY o.created_at DESC` + pageClause(limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.OrderSummary, 0)
	for rows.Next() {
		var order domain.OrderSummary
		if err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.CustomerName,
			&order.CustomerPhone,
			&order.TotalPrice,
			&order.IsDelivery,
			&order.Status,
			&order.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *orderRepository) GetDetail(ctx context.Context, id int64) (*domain.OrderDetail, error) {
	const orderQuery = `
        SELECT o.id, o.customer_id, c.name, c.phone, c.address, o.total_price, o.is_delivery, o.status, o.created_at
        FROM orders o
        LEFT JOIN customers c ON o.customer_id = c.id
        WHERE o.id=$1`

	var detail domain.OrderDetail
	if err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&detail.ID,
		&detail.CustomerID,
		&detail.CustomerName,
		&detail.CustomerPhone,
		&detail.CustomerAddress,
		&detail.TotalPrice,
		&detail.IsDelivery,
		&detail.Status,
		&detail.CreatedAt,
	); err != nil {
		return nil, err
	}

	const itemsQuery = `
        SELECT i.id, i.product_id, p.name, i.quantity, i.price
        FROM order_items i
        LEFT JOIN products p ON i.product_id = p.id
        WHERE i.order_id=$1
        ORDER BY i.id`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	detail.Items = make([]domain.OrderItemDetail, 0)
	for rows.Next() {
		var item domain.OrderItemDetail
		if err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.Price,
		); err != nil {
			return nil, err
		}
		detail.Items = append(detail.Items, item)
	}
	return &detail, rows.Err()
}

func (r *orderRepository) Update(ctx context.Context, id int64, patch OrderPatch) (*domain.Order, error) {
	sets := []string{}
	args := []any{}
	if patch.Status != nil {
		args = append(args, *patch.Status)
		sets = append(sets, fmt.Sprintf("status=$%d", len(args)))
	}
	if patch.IsDelivery != nil {
		args = append(args, *patch.IsDelivery)
		sets = append(sets, fmt.Sprintf("is_delivery=$%d", len(args)))
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
        UPDATE orders SET %s WHERE id=$%d
        RETURNING id, customer_id, total_price, is_delivery, status, created_at`,
		strings.Join(sets, ", "), len(args))

	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&order.ID,
		&order.CustomerID,
		&order.TotalPrice,
		&order.IsDelivery,
		&order.Status,
		&order.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const query = `
        SELECT id, customer_id, total_price, is_delivery, status, created_at
        FROM orders WHERE id=$1`

	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.CustomerID,
		&order.TotalPrice,
		&order.IsDelivery,
		&order.Status,
		&order.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
