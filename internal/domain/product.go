package domain

import "github.com/shopspring/decimal"

// Product represents a product in the catalog
type Product struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description *string         `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	InStock     bool            `json:"in_stock" db:"in_stock"`
}

// CreateProduct is the payload for creating or replacing a product.
// Description is the only nullable field across all entities.
type CreateProduct struct {
	Name        string          `json:"name" validate:"min=1"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	InStock     bool            `json:"in_stock"`
}
