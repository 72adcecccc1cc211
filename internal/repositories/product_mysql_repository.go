package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"estoque/internal/models"
)

const (
	insertProduct = "INSERT INTO products (name, price, quantity) VALUES (?, ?, ?)"
	selectProduct = "SELECT id, name, price, quantity FROM products WHERE id = ?"
	updateProduct = "UPDATE products SET name = ?, price = ?, quantity = ? WHERE id = ?"
	deleteProduct = "DELETE FROM products WHERE id = ?"
	clearProducts = "TRUNCATE TABLE products"
)

// MySQLProductRepository is a sqlx/MySQL implementation of ProductRepository.
// Every statement is parameterized; values are never interpolated into SQL.
type MySQLProductRepository struct {
	db *sqlx.DB
}

// NewMySQLProductRepository creates a new instance of MySQLProductRepository.
func NewMySQLProductRepository(db *sqlx.DB) *MySQLProductRepository {
	return &MySQLProductRepository{
		db: db,
	}
}

// Create inserts one row and fills in the auto-increment id.
func (r *MySQLProductRepository) Create(ctx context.Context, product *models.Product) error {
	res, err := r.db.ExecContext(ctx, insertProduct, product.Name, product.Price, product.Quantity)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted product id: %w", err)
	}
	product.ID = id
	return nil
}

// GetByID retrieves a single product by its id.
func (r *MySQLProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.GetContext(ctx, &product, selectProduct, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// Update overwrites all mutable fields of the row matching product.ID.
func (r *MySQLProductRepository) Update(ctx context.Context, product *models.Product) error {
	res, err := r.db.ExecContext(ctx, updateProduct, product.Name, product.Price, product.Quantity, product.ID)
	if err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete removes the row matching id.
func (r *MySQLProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteProduct, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Clear truncates the table. TRUNCATE also resets AUTO_INCREMENT.
func (r *MySQLProductRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearProducts); err != nil {
		return fmt.Errorf("failed to clear products table: %w", err)
	}
	return nil
}
