package services

import (
	"troli/internal/models"
	"troli/internal/repositories"
)

// CatalogService handles business logic for browsing products.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListProducts retrieves products newest first. An empty category lists
// everything.
func (s *CatalogService) ListProducts(category string) ([]models.Product, error) {
	return s.repo.GetAll(category)
}

// GetProduct retrieves a single product by its ID.
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return product, nil
}
