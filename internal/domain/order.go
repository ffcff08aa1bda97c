package domain

// Order represents an order placed by a customer for a product
type Order struct {
	ID         int64 `json:"id" db:"id"`
	CustomerID int64 `json:"customer_id" db:"customer_id"`
	ProductID  int64 `json:"product_id" db:"product_id"`
	Quantity   int32 `json:"quantity" db:"quantity"`
	OrderDate  Date  `json:"order_date" db:"order_date"`
}

// CreateOrder is the payload for creating or replacing an order.
// CustomerID and ProductID must reference live rows; that check happens
// against the store, not here.
type CreateOrder struct {
	CustomerID int64 `json:"customer_id" validate:"gte=1"`
	ProductID  int64 `json:"product_id" validate:"gte=1"`
	Quantity   int32 `json:"quantity" validate:"gte=1"`
	OrderDate  Date  `json:"order_date" validate:"orderdate"`
}
