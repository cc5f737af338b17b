package repositories

import (
	"troli/internal/models"
)

// ProductRepository defines the interface for product data access. The
// catalog is read-plus-seed only: nothing in the API mutates products.
type ProductRepository interface {
	// GetAll lists products newest first, optionally filtered by category.
	// An empty category means no filter.
	GetAll(category string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
}
