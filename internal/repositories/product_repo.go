package repositories

import (
	"greenbasket/internal/models"
)

// ProductRepository defines the interface for catalog data access. The
// catalog has no mutating endpoints; Create exists for seeding.
type ProductRepository interface {
	GetActive() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
}
