package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shop-admin/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderReferenceMissing means the referenced customer or product row
	// was gone by the time the write hit the store. The foreign-key
	// constraint closes the window left open by the existence pre-checks.
	ErrOrderReferenceMissing = errors.New("referenced customer or product does not exist")
)

const pgForeignKeyViolation = "23503"

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	Create(ctx context.Context, in *domain.CreateOrder) error
	Update(ctx context.Context, id int64, in *domain.CreateOrder) error
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) error
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// List returns all orders. An empty table yields an empty, non-nil slice.
func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, customer_id, product_id, quantity, order_date
		FROM orders
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity, &o.OrderDate); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

// FindByID retrieves an order by ID
func (r *orderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT id, customer_id, product_id, quantity, order_date
		FROM orders
		WHERE id = $1
	`

	o := &domain.Order{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity, &o.OrderDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}

	return o, nil
}

// Create inserts a new order
func (r *orderRepository) Create(ctx context.Context, in *domain.CreateOrder) error {
	query := `
		INSERT INTO orders (customer_id, product_id, quantity, order_date)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, in.CustomerID, in.ProductID, in.Quantity, in.OrderDate)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrOrderReferenceMissing
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// Update replaces the mutable fields of an order by ID
func (r *orderRepository) Update(ctx context.Context, id int64, in *domain.CreateOrder) error {
	query := `
		UPDATE orders
		SET customer_id = $1, product_id = $2, quantity = $3, order_date = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query, in.CustomerID, in.ProductID, in.Quantity, in.OrderDate, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrOrderReferenceMissing
		}
		return fmt.Errorf("failed to update order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// Delete removes an order by ID
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// DeleteMany removes all orders whose ids appear in the set, in one
// statement. Zero rows affected means none of the ids existed.
func (r *orderRepository) DeleteMany(ctx context.Context, ids []int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("failed to bulk delete orders: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
