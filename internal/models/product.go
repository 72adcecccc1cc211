package models

// Product represents a row in the products table.
type Product struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Price    float64 `json:"price" db:"price"`
	Quantity int     `json:"quantity" db:"quantity"`
}

// ProductInput is the request body for creating or updating a product.
// Quantity is a pointer so that an absent field fails "required" while an
// explicit zero passes.
type ProductInput struct {
	Name     string  `json:"name" validate:"required,notblank,min=3,max=255"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Quantity *int    `json:"quantity" validate:"required,gte=0"`
}
