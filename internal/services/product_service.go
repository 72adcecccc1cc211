package services

import (
	"context"
	"time"

	"estoque/internal/models"
	"estoque/internal/repositories"
)

// ProductService handles business logic related to products. Every call is
// bounded by the configured query timeout so a request cannot queue
// unboundedly while waiting for a pooled connection.
type ProductService struct {
	repo         repositories.ProductRepository
	queryTimeout time.Duration
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, queryTimeout time.Duration) *ProductService {
	return &ProductService{
		repo:         repo,
		queryTimeout: queryTimeout,
	}
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.Create(ctx, product)
}

// GetProductByID retrieves a single product by its id.
func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.Update(ctx, product)
}

// DeleteProduct deletes a product by its id.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.Delete(ctx, id)
}

// ClearProducts removes every product.
func (s *ProductService) ClearProducts(ctx context.Context) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.Clear(ctx)
}

func (s *ProductService) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
