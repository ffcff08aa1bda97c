package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shop-admin/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in *domain.CreateProduct) error
	Update(ctx context.Context, id int64, in *domain.CreateProduct) error
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// List returns all products. An empty table yields an empty, non-nil slice.
func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, description, price, in_stock
		FROM products
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.InStock); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// FindByID retrieves a product by ID
func (r *productRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, description, price, in_stock
		FROM products
		WHERE id = $1
	`

	p := &domain.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.InStock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return p, nil
}

// Create inserts a new product. A nil description stores NULL.
func (r *productRepository) Create(ctx context.Context, in *domain.CreateProduct) error {
	query := `
		INSERT INTO products (name, description, price, in_stock)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := r.db.ExecContext(ctx, query, in.Name, in.Description, in.Price, in.InStock); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// Update replaces the mutable fields of a product by ID
func (r *productRepository) Update(ctx context.Context, id int64, in *domain.CreateProduct) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, in_stock = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query, in.Name, in.Description, in.Price, in.InStock, id)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete removes a product by ID
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// DeleteMany removes all products whose ids appear in the set, in one
// statement. Zero rows affected means none of the ids existed.
func (r *productRepository) DeleteMany(ctx context.Context, ids []int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("failed to bulk delete products: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Exists probes whether a product row is live
func (r *productRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}

	return exists, nil
}
