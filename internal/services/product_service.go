package services

import (
	"greenbasket/internal/models"
	"greenbasket/internal/repositories"
)

// ProductService exposes the read-only storefront catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts retrieves the active catalog entries.
func (s *ProductService) ListProducts() ([]models.Product, error) {
	return s.repo.GetActive()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}
