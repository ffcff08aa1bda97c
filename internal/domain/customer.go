package domain

// Customer represents a customer record
type Customer struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	Address string `json:"address" db:"address"`
}

// CreateCustomer is the payload for creating or replacing a customer
type CreateCustomer struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Address string `json:"address"`
}
