package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shop-admin/internal/domain"
)

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, in *domain.CreateCustomer) error
	Update(ctx context.Context, id int64, in *domain.CreateCustomer) error
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new instance of CustomerRepository
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// List returns all customers. An empty table yields an empty, non-nil slice.
func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT id, name, email, address
		FROM customers
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Address); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, nil
}

// FindByID retrieves a customer by ID
func (r *customerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `
		SELECT id, name, email, address
		FROM customers
		WHERE id = $1
	`

	c := &domain.Customer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID: %w", err)
	}

	return c, nil
}

// Create inserts a new customer
func (r *customerRepository) Create(ctx context.Context, in *domain.CreateCustomer) error {
	query := `
		INSERT INTO customers (name, email, address)
		VALUES ($1, $2, $3)
	`

	if _, err := r.db.ExecContext(ctx, query, in.Name, in.Email, in.Address); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// Update replaces the mutable fields of a customer by ID
func (r *customerRepository) Update(ctx context.Context, id int64, in *domain.CreateCustomer) error {
	query := `
		UPDATE customers
		SET name = $1, email = $2, address = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, in.Name, in.Email, in.Address, id)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer by ID
func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// DeleteMany removes all customers whose ids appear in the set, in one
// statement. Zero rows affected means none of the ids existed.
func (r *customerRepository) DeleteMany(ctx context.Context, ids []int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("failed to bulk delete customers: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Exists probes whether a customer row is live
func (r *customerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}

	return exists, nil
}
