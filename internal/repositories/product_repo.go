package repositories

import (
	"context"
	"errors"

	"estoque/internal/models"
)

// ErrProductNotFound signals that an operation targeted an id with no row.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// Create inserts the product and fills in the engine-assigned ID.
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	// Update replaces name, price and quantity for product.ID in one
	// statement; ErrProductNotFound when no row matched.
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) error
	// Clear removes every row and resets the id sequence.
	Clear(ctx context.Context) error
}
